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

import "errors"

var (
	// ErrInvalidPattern indicates that the regular expression generated from a
	// pattern was rejected by the regexp package, usually because of a custom
	// parameter sub-pattern.
	ErrInvalidPattern = errors.New("invalid path pattern")

	// ErrCaptureMismatch indicates that the compiled expression has a different
	// number of capture groups than the pattern has parameters.
	ErrCaptureMismatch = errors.New("capture groups do not match parameters")

	// ErrInvalidSensitivity indicates that an unknown case sensitivity was configured.
	ErrInvalidSensitivity = errors.New("invalid case sensitivity")
)
