// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fixture runs behavior tables against pathregex.
//
// A suite is a list of cases, each naming a pattern, a path and the expected
// outcome. Suites are stored as JSON, YAML or TOML and decoded through the
// codec registry:
//
//	name: basics
//	cases:
//	  - pattern: /:foo/:bar
//	    path: /x/y
//	    matched: true
//	    params: {foo: x, bar: y}
//	  - pattern: /foo
//	    path: /FOO
//	    case_insensitive: true
//	    matched: true
//	  - pattern: /:id(\d{2,1})
//	    invalid: true
//
// Documents are validated against the JSON Schema returned by [Schema] before
// they are bound, so a misspelled key fails the load instead of being ignored.
// A suite may set defaults for the pattern and case_insensitive fields:
//
//	defaults:
//	  pattern: /users/:id
//	cases:
//	  - path: /users/1
//	    matched: true
//	    params: {id: 1}
//
// Running a suite compiles and matches every case and returns a Report:
//
//	suite, err := fixture.Load("testdata/cases.yaml")
//	if err != nil {
//	    return err
//	}
//	report := suite.Run()
//	for _, o := range report.Failed() {
//	    fmt.Println(o.Case.Pattern, o.Case.Path, o.Diff)
//	}
package fixture
