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

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"rivaas.dev/pathregex"
	"rivaas.dev/pathregex/fixture"
	"rivaas.dev/pathregex/fixture/codec"
)

type pathResult struct {
	Path    string            `json:"path" yaml:"path" toml:"path"`
	Matched bool              `json:"matched" yaml:"matched" toml:"matched"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

type matchOutput struct {
	Pattern string       `json:"pattern" yaml:"pattern" toml:"pattern"`
	Source  string       `json:"source" yaml:"source" toml:"source"`
	Keys    []string     `json:"keys" yaml:"keys" toml:"keys"`
	Results []pathResult `json:"results" yaml:"results" toml:"results"`
}

func newMatchOutput(m *pathregex.Matcher, paths []string) *matchOutput {
	out := &matchOutput{
		Pattern: m.Pattern(),
		Source:  m.Source(),
		Keys:    m.Keys(),
		Results: make([]pathResult, 0, len(paths)),
	}
	for _, p := range paths {
		res := m.Match(p)
		out.Results = append(out.Results, pathResult{Path: p, Matched: res.Matched, Params: res.Params})
	}
	return out
}

func (o *matchOutput) allMatched() bool {
	for _, r := range o.Results {
		if !r.Matched {
			return false
		}
	}
	return true
}

// write prints one line per path, or the whole output through enc when it is
// not nil.
func (o *matchOutput) write(w io.Writer, enc codec.Encoder) error {
	if enc != nil {
		return encodeTo(w, enc, o)
	}

	var b strings.Builder
	for _, r := range o.Results {
		b.WriteString(r.Path)
		if !r.Matched {
			b.WriteString("\tno match\n")
			continue
		}
		b.WriteString("\tmatch")
		for _, k := range slices.Sorted(maps.Keys(r.Params)) {
			fmt.Fprintf(&b, " %s=%q", k, r.Params[k])
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(w io.Writer, enc codec.Encoder, s fixture.Summary) error {
	if enc != nil {
		return encodeTo(w, enc, s)
	}

	var b strings.Builder
	for _, r := range s.Records {
		status := "ok  "
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s %s\n", status, r.Case)
	}
	fmt.Fprintf(&b, "%s: %d/%d passed\n", s.Suite, s.Total-s.Failed, s.Total)

	_, err := io.WriteString(w, b.String())
	return err
}

func encodeTo(w io.Writer, enc codec.Encoder, v any) error {
	data, err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
