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

// Package pathregex compiles path patterns into matchers that test concrete
// paths and extract named parameters.
//
// # Basic Usage
//
//	m := pathregex.MustCompile("/api/v1/download/:file{.:ext}")
//
//	res := m.Match("/api/v1/download/archive.zip")
//	if res.Matched {
//	    fmt.Println(res.Params["file"], res.Params["ext"]) // archive zip
//	}
//
// # Pattern Syntax
//
//	:name          required parameter, one or more bytes up to the next separator
//	:name(regexp)  required parameter with a custom sub-pattern
//	*name          wildcard parameter, may span several segments
//	{...}          optional group, may contain parameters
//
// The characters . ^ $ * + ? ( ) | [ ] { } \ are matched literally unless
// they are part of one of the forms above. A trailing separator is always
// optional: "/users/:id" matches both "/users/42" and "/users/42/".
//
// The separator is '/' unless '\' occurs in the pattern before any '/', which
// makes Windows style patterns such as `C:\Users\:name` work.
//
// # Encoding
//
// Patterns and paths are percent-encoded before matching and parameter
// values are decoded afterwards, so the following are all equivalent:
//
//	pathregex.MustCompile("/café").MatchString("/café")        // true
//	pathregex.MustCompile("/café").MatchString("/caf%C3%A9")   // true
//	pathregex.MustCompile("/caf%C3%A9").MatchString("/café")   // true
//
// # Case Sensitivity
//
// Matching is case sensitive by default:
//
//	m := pathregex.MustCompile("/foo", pathregex.WithCaseInsensitive())
//	m.MatchString("/FOO") // true
//
// # Custom Sub-patterns
//
// Custom sub-patterns use the syntax of Go's regexp package. Compile returns
// an error wrapping ErrInvalidPattern when a sub-pattern does not compile:
//
//	_, err := pathregex.Compile(`/:id(\d{2,1})`)
//	errors.Is(err, pathregex.ErrInvalidPattern) // true
//
// # Concurrency
//
// A Matcher is immutable after Compile returns and may be shared freely
// between goroutines.
package pathregex
