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

//go:build !integration

package compiler_test

import (
	"fmt"

	"rivaas.dev/pathregex/compiler"
)

// ExampleCompile demonstrates compiling a pattern with a required parameter.
func ExampleCompile() {
	p := compiler.Compile("/users/:id")

	fmt.Println("Source:", p.Source)
	fmt.Println("Keys:", p.Keys)
	// Output:
	// Source: ^/users/([^\/]+?)\/?$
	// Keys: [id]
}

// ExampleCompile_optionalGroup demonstrates an optional file extension.
func ExampleCompile_optionalGroup() {
	p := compiler.Compile("/download/:file{.:ext}")

	fmt.Println("Source:", p.Source)
	fmt.Println("Keys:", p.Keys)
	// Output:
	// Source: ^/download/([^\/]+?)(?:\.([^\/]+?))?\/?$
	// Keys: [file ext]
}

// ExampleDetectSeparator demonstrates separator detection for Windows paths.
func ExampleDetectSeparator() {
	fmt.Printf("%c\n", compiler.DetectSeparator(`C:\Users\:name`))
	fmt.Printf("%c\n", compiler.DetectSeparator("/users/:name"))
	// Output:
	// \
	// /
}
