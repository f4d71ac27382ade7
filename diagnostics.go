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

// DiagnosticEvent describes something noteworthy found while compiling a
// pattern. Events never change the outcome of Compile.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// Pattern diagnostics
	DiagDuplicateParam DiagnosticKind = "duplicate_param"
	DiagStrayBrace     DiagnosticKind = "stray_brace"
	DiagEmptyGroup     DiagnosticKind = "empty_group"

	// Informational
	DiagCompiled DiagnosticKind = "pattern_compiled"
)

// IsWarning reports whether the event points at a likely mistake in the
// pattern rather than plain information.
func (k DiagnosticKind) IsWarning() bool {
	return k != DiagCompiled
}

// DiagnosticHandler receives diagnostic events from Compile.
// If no handler is configured, events are dropped.
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
