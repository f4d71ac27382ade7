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

package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"rivaas.dev/pathregex"
	"rivaas.dev/pathregex/fixture/codec"
)

var (
	// ErrEmptySuite indicates that a suite contains no cases.
	ErrEmptySuite = errors.New("fixture suite has no cases")

	// ErrInvalidSuite indicates that a suite does not conform to the
	// fixture schema, for example because of an unknown key or a value of
	// the wrong type.
	ErrInvalidSuite = errors.New("invalid fixture suite")
)

// Case is one row of a behavior table.
type Case struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Pattern         string            `json:"pattern" yaml:"pattern" toml:"pattern"`
	Path            string            `json:"path" yaml:"path" toml:"path"`
	CaseInsensitive bool              `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty" toml:"case_insensitive,omitempty"`
	Invalid         bool              `json:"invalid,omitempty" yaml:"invalid,omitempty" toml:"invalid,omitempty"`
	Matched         bool              `json:"matched" yaml:"matched" toml:"matched"`
	Params          map[string]string `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

// String returns the case name, or a description built from pattern and path.
func (c Case) String() string {
	if c.Name != "" {
		return c.Name
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%q on %q", c.Pattern, c.Path)
	if c.CaseInsensitive {
		b.WriteString(" (case insensitive)")
	}
	return b.String()
}

// Defaults holds values applied to every case that leaves them unset.
type Defaults struct {
	Pattern         string `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty" toml:"case_insensitive,omitempty"`
}

// Suite is a named list of cases.
type Suite struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Defaults Defaults `json:"defaults,omitzero" yaml:"defaults,omitempty" toml:"defaults,omitempty"`
	Cases    []Case   `json:"cases" yaml:"cases" toml:"cases"`
}

// Load reads the suite stored at path. The codec is chosen from the file
// extension. When the file does not name the suite, the file name is used.
func Load(path string) (*Suite, error) {
	typ, err := codec.TypeFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s, err := Decode(data, typ)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

// Decode decodes a suite encoded as typ.
//
// The document is checked against the fixture schema before it is bound to a
// Suite, so unknown keys are rejected. Scalar parameter values are converted
// to strings, which lets YAML and TOML files write `id: 42` unquoted. Suite
// defaults fill the keys a case does not set; a key that is present keeps its
// value even when it is false or empty.
func Decode(data []byte, typ codec.Type) (*Suite, error) {
	dec, err := codec.GetDecoder(typ)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := dec.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s suite: %w", typ, err)
	}

	doc, err := validate(raw)
	if err != nil {
		return nil, err
	}

	if err := applyDefaults(doc); err != nil {
		return nil, err
	}

	var s Suite
	if err := bind(doc, &s); err != nil {
		return nil, fmt.Errorf("bind %s suite: %w", typ, err)
	}
	if len(s.Cases) == 0 {
		return nil, ErrEmptySuite
	}

	return &s, nil
}

func bind(doc any, s *Suite) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           s,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.Decode(doc)
}

// applyDefaults copies the suite defaults into every case document that does
// not contain the key. It works on the validated document rather than on the
// bound structs so that an explicit `false` or empty pattern is kept.
func applyDefaults(doc any) error {
	root, _ := doc.(map[string]any)
	defaults, _ := root["defaults"].(map[string]any)
	if len(defaults) == 0 {
		return nil
	}

	cases, _ := root["cases"].([]any)
	for i, c := range cases {
		m, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if err := mergo.Merge(&m, defaults, mergo.WithoutDereference); err != nil {
			return fmt.Errorf("apply defaults to case %d: %w", i, err)
		}
	}
	return nil
}

// Outcome is the result of running one case.
type Outcome struct {
	Case   Case
	Result pathregex.Result
	Source string // generated expression, empty if compilation failed
	Err    error  // compilation error
	Diff   string // expected vs. actual params, empty when equal
}

// Passed reports whether the case behaved as expected.
func (o Outcome) Passed() bool {
	if o.Case.Invalid {
		return o.Err != nil
	}
	return o.Err == nil && o.Result.Matched == o.Case.Matched && o.Diff == ""
}

// Run compiles and matches every case of the suite. opts apply to every case;
// cases marked case_insensitive additionally ignore letter case.
func (s *Suite) Run(opts ...pathregex.Option) Report {
	report := Report{
		Suite:    s.Name,
		Outcomes: make([]Outcome, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		report.Outcomes = append(report.Outcomes, runCase(c, opts))
	}

	return report
}

func runCase(c Case, opts []pathregex.Option) Outcome {
	o := Outcome{Case: c}

	caseOpts := opts
	if c.CaseInsensitive {
		caseOpts = append(caseOpts[:len(caseOpts):len(caseOpts)], pathregex.WithCaseInsensitive())
	}

	m, err := pathregex.Compile(c.Pattern, caseOpts...)
	if err != nil {
		o.Err = err
		return o
	}
	o.Source = m.Source()
	o.Result = m.Match(c.Path)

	want := c.Params
	if !c.Matched {
		want = nil
	}
	o.Diff = cmp.Diff(want, map[string]string(o.Result.Params), cmpopts.EquateEmpty())

	return o
}

// Report collects the outcomes of a suite run.
type Report struct {
	Suite    string
	Outcomes []Outcome
}

// Passed reports whether every case passed.
func (r Report) Passed() bool {
	for _, o := range r.Outcomes {
		if !o.Passed() {
			return false
		}
	}
	return true
}

// Failed returns the outcomes of the cases that did not pass.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Record is the encodable form of an Outcome.
type Record struct {
	Case    string            `json:"case" yaml:"case" toml:"case"`
	Pattern string            `json:"pattern" yaml:"pattern" toml:"pattern"`
	Path    string            `json:"path" yaml:"path" toml:"path"`
	Source  string            `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Matched bool              `json:"matched" yaml:"matched" toml:"matched"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	Error   string            `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Passed  bool              `json:"passed" yaml:"passed" toml:"passed"`
}

// Summary is the encodable form of a Report.
type Summary struct {
	Suite   string   `json:"suite" yaml:"suite" toml:"suite"`
	Total   int      `json:"total" yaml:"total" toml:"total"`
	Failed  int      `json:"failed" yaml:"failed" toml:"failed"`
	Records []Record `json:"records" yaml:"records" toml:"records"`
}

// Summary converts the report into a value the codec package can encode.
func (r Report) Summary() Summary {
	s := Summary{
		Suite:   r.Suite,
		Total:   len(r.Outcomes),
		Records: make([]Record, 0, len(r.Outcomes)),
	}

	for _, o := range r.Outcomes {
		rec := Record{
			Case:    o.Case.String(),
			Pattern: o.Case.Pattern,
			Path:    o.Case.Path,
			Source:  o.Source,
			Matched: o.Result.Matched,
			Params:  o.Result.Params,
			Passed:  o.Passed(),
		}
		if o.Err != nil {
			rec.Error = o.Err.Error()
		}
		if !rec.Passed {
			s.Failed++
		}
		s.Records = append(s.Records, rec)
	}

	return s
}
