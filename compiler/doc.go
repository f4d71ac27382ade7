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

// Package compiler turns a path pattern into the source of an anchored
// regular expression plus the ordered list of parameter names bound to its
// capture groups.
//
// # Pattern Syntax
//
//	/users/:id               required parameter, one or more non-separator bytes
//	/users/:id(\d+)          required parameter with a custom sub-pattern
//	/files/*path             wildcard parameter, may span separators
//	/download/:file{.:ext}   optional group, matched zero or one time
//
// Any of the bytes . ^ $ * + ? ( ) | [ ] { } \ that is not part of one of
// the forms above is escaped and matched literally. All other text is copied
// into the generated source as is.
//
// # Compilation
//
// The pattern is percent-encoded first (see package percent) and scanned
// once from left to right. At every position the scanner tries, in order:
//
//  1. an optional group, '{' up to the first '}'
//  2. a required parameter, ':' followed by a name
//  3. a wildcard parameter, '*' followed by a name
//  4. a special byte that needs escaping
//
// Optional groups are compiled recursively and share the parameter list of
// the enclosing pattern, so key i always binds to capture group i+1.
//
// The generated source is anchored at both ends and always accepts a single
// trailing separator:
//
//	Compile("/users/:id").Source == `^/users/([^\/]+?)\/?$`
//
// # Separators
//
// A pattern uses exactly one separator, '/' or '\', picked by
// DetectSeparator from the raw pattern text. The separator decides what a
// required parameter without a custom sub-pattern may contain and which
// trailing byte is optional.
//
// # Custom Sub-patterns
//
// Custom sub-patterns are spliced into the generated source verbatim, so they
// must be written in the dialect of the engine that compiles the result. In
// this module that is Go's regexp package (RE2 syntax); lookaround and
// backreferences are not available. A custom sub-pattern cannot contain ')'.
package compiler
