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

package compiler

import "strings"

const (
	// DefaultSeparator is used when a pattern contains neither '/' nor '\'.
	DefaultSeparator byte = '/'

	// BackslashSeparator is used when '\' appears in a pattern before any '/'.
	BackslashSeparator byte = '\\'
)

// DetectSeparator returns the separator governing pattern: '/' when the first
// '/' appears at or before the first '\', '\' otherwise. A missing byte
// counts as appearing after the end of the pattern, so a pattern with neither
// yields DefaultSeparator.
func DetectSeparator(pattern string) byte {
	slash := strings.IndexByte(pattern, '/')
	backslash := strings.IndexByte(pattern, '\\')

	switch {
	case backslash < 0:
		return DefaultSeparator
	case slash < 0:
		return BackslashSeparator
	case slash <= backslash:
		return DefaultSeparator
	default:
		return BackslashSeparator
	}
}
