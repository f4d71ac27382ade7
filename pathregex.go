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
	"regexp"
	"slices"

	"rivaas.dev/pathregex/compiler"
	"rivaas.dev/pathregex/percent"
)

// Matcher matches paths against one compiled pattern.
//
// A Matcher is immutable and safe for concurrent use by multiple goroutines.
// The only way to obtain one is Compile or MustCompile.
type Matcher struct {
	pattern     string         // Original pattern (/users/:id)
	source      string         // Generated expression (^/users/([^\/]+?)\/?$)
	keys        []string       // Parameter names, keys[i] binds to group i+1
	separator   byte           // '/' or '\'
	sensitivity Sensitivity    // Case handling used to compile re
	re          *regexp.Regexp // Compiled source
}

// Compile compiles pattern into a Matcher.
//
// The returned error wraps ErrInvalidPattern when the generated expression,
// which includes any custom parameter sub-pattern verbatim, is not valid
// regexp syntax. The underlying *syntax.Error is available through
// errors.As.
//
// Every parameter must own exactly one capture group. A custom sub-pattern
// that adds none, such as /:foo(?:abc) or /:foo(?i), is rejected with
// ErrCaptureMismatch rather than compiled with foo bound to "".
func Compile(pattern string, opts ...Option) (*Matcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := compiler.Compile(pattern)

	expr := p.Source
	if cfg.sensitivity == CaseInsensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	if re.NumSubexp() != len(p.Keys) {
		return nil, fmt.Errorf("%w: pattern %q has %d parameters and %d groups",
			ErrCaptureMismatch, pattern, len(p.Keys), re.NumSubexp())
	}

	m := &Matcher{
		pattern:     pattern,
		source:      p.Source,
		keys:        p.Keys,
		separator:   p.Separator,
		sensitivity: cfg.sensitivity,
		re:          re,
	}

	if cfg.diagnostics != nil {
		emitDiagnostics(cfg.diagnostics, m, p.Warnings)
	}

	return m, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies initialization of global matchers.
func MustCompile(pattern string, opts ...Option) *Matcher {
	m, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether path matches the whole pattern and returns the
// decoded parameter values if it does.
//
// Parameters inside an optional group that did not take part in the match
// are set to "". When a name occurs more than once in the pattern, the value
// of the last occurrence wins.
func (m *Matcher) Match(path string) Result {
	groups := m.re.FindStringSubmatch(percent.Encode(path))
	if groups == nil {
		return Result{}
	}

	params := make(Params, len(m.keys))
	for i, key := range m.keys {
		params[key] = percent.Decode(groups[i+1])
	}

	return Result{Matched: true, Params: params}
}

// MatchString reports whether path matches the pattern without extracting
// parameters.
func (m *Matcher) MatchString(path string) bool {
	return m.re.MatchString(percent.Encode(path))
}

// Pattern returns the pattern the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Source returns the generated regular expression, without the case
// insensitivity flag.
func (m *Matcher) Source() string {
	return m.source
}

// Keys returns the parameter names in capture group order.
func (m *Matcher) Keys() []string {
	return slices.Clone(m.keys)
}

// Separator returns the path separator of the pattern, '/' or '\'.
func (m *Matcher) Separator() byte {
	return m.separator
}

// Sensitivity returns the case sensitivity the matcher was compiled with.
func (m *Matcher) Sensitivity() Sensitivity {
	return m.sensitivity
}

// String returns the pattern the matcher was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}

func emitDiagnostics(h DiagnosticHandler, m *Matcher, warnings []compiler.Warning) {
	seen := make(map[string]int, len(m.keys))
	for i, key := range m.keys {
		if first, ok := seen[key]; ok {
			h.OnDiagnostic(DiagnosticEvent{
				Kind:    DiagDuplicateParam,
				Message: "parameter name used more than once, the last value wins",
				Fields: map[string]any{
					"pattern": m.pattern,
					"param":   key,
					"first":   first,
					"index":   i,
				},
			})
			continue
		}
		seen[key] = i
	}

	for _, w := range warnings {
		e := DiagnosticEvent{
			Fields: map[string]any{
				"pattern": m.pattern,
				"offset":  w.Offset,
			},
		}
		switch w.Kind {
		case compiler.WarnStrayBrace:
			e.Kind = DiagStrayBrace
			e.Message = "unbalanced brace matched literally"
		case compiler.WarnEmptyGroup:
			e.Kind = DiagEmptyGroup
			e.Message = "optional group is empty"
		default:
			continue
		}
		h.OnDiagnostic(e)
	}

	h.OnDiagnostic(DiagnosticEvent{
		Kind:    DiagCompiled,
		Message: "pattern compiled",
		Fields: map[string]any{
			"pattern":     m.pattern,
			"source":      m.source,
			"keys":        m.Keys(),
			"sensitivity": m.sensitivity.String(),
		},
	})
}
