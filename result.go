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

package pathregex

// Params maps parameter names to their decoded values.
type Params map[string]string

// Get returns the value of the named parameter and whether it was set.
func (p Params) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Result is the outcome of matching one path.
type Result struct {
	// Matched reports whether the path matched the pattern.
	Matched bool

	// Params holds the parameter values. It is nil when Matched is false and
	// non-nil, possibly empty, when Matched is true.
	Params Params
}

// Param returns the value of the named parameter, or "" if the path did not
// match or the pattern has no such parameter.
func (r Result) Param(name string) string {
	return r.Params[name]
}
