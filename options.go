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

import (
	"fmt"
	"strings"
)

// Sensitivity controls whether matching distinguishes letter case.
type Sensitivity uint8

const (
	// CaseSensitive matches letters exactly. This is the default.
	CaseSensitive Sensitivity = iota
	// CaseInsensitive ignores letter case when matching.
	CaseInsensitive
)

// String returns "case_sensitive" or "case_insensitive".
func (s Sensitivity) String() string {
	switch s {
	case CaseSensitive:
		return "case_sensitive"
	case CaseInsensitive:
		return "case_insensitive"
	default:
		return fmt.Sprintf("Sensitivity(%d)", uint8(s))
	}
}

// ParseSensitivity parses the names returned by [Sensitivity.String].
// "sensitive" and "insensitive" are accepted as short forms.
func ParseSensitivity(s string) (Sensitivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "case_sensitive", "sensitive":
		return CaseSensitive, nil
	case "case_insensitive", "insensitive":
		return CaseInsensitive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSensitivity, s)
}

// config holds the settings applied by Option values.
type config struct {
	sensitivity Sensitivity
	diagnostics DiagnosticHandler
}

// Option configures Compile.
type Option func(*config)

func defaultConfig() *config {
	return &config{sensitivity: CaseSensitive}
}

func (c *config) validate() error {
	if c.sensitivity != CaseSensitive && c.sensitivity != CaseInsensitive {
		return fmt.Errorf("%w: %d", ErrInvalidSensitivity, c.sensitivity)
	}
	return nil
}

// WithSensitivity sets the case sensitivity of the matcher.
func WithSensitivity(s Sensitivity) Option {
	return func(c *config) { c.sensitivity = s }
}

// WithCaseInsensitive makes the matcher ignore letter case.
func WithCaseInsensitive() Option {
	return WithSensitivity(CaseInsensitive)
}

// WithDiagnostics sets a handler for events emitted while compiling.
//
// Diagnostic events point at patterns that compile but may not behave as
// intended, such as a parameter name used twice. Compile behaves the same
// whether or not a handler is set.
//
// Example with logging:
//
//	handler := pathregex.DiagnosticHandlerFunc(func(e pathregex.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	m, err := pathregex.Compile("/users/:id/:id", pathregex.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(c *config) { c.diagnostics = handler }
}
