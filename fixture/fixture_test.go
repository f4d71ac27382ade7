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

package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/pathregex"
	"rivaas.dev/pathregex/fixture/codec"
)

// TestLoad_Testdata tests that every bundled suite loads and passes.
func TestLoad_Testdata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file      string
		wantName  string
		wantCases int
	}{
		{file: "behavior.yaml", wantName: "behavior", wantCases: 168},
		{file: "scenarios.json", wantName: "scenarios", wantCases: 9},
		{file: "download.toml", wantName: "download", wantCases: 5},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			suite, err := Load(filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, suite.Name)
			assert.Len(t, suite.Cases, tt.wantCases)

			report := suite.Run()
			for _, o := range report.Failed() {
				t.Errorf("case %s failed: matched=%v err=%v source=%s diff=%s",
					o.Case, o.Result.Matched, o.Err, o.Source, o.Diff)
			}
			assert.True(t, report.Passed())
		})
	}
}

// TestLoad_Errors tests the failure modes of Load.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(write("cases.txt", "pattern: /"))
		require.ErrorIs(t, err, codec.ErrUnknownExtension)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed content", func(t *testing.T) {
		_, err := Load(write("broken.json", `{"cases": [`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})

	t.Run("empty suite", func(t *testing.T) {
		_, err := Load(write("empty.yaml", "name: nothing\ncases: []\n"))
		require.ErrorIs(t, err, ErrEmptySuite)
	})

	t.Run("name from file", func(t *testing.T) {
		s, err := Load(write("unnamed.yaml", "cases:\n  - pattern: /\n    path: /\n    matched: true\n"))
		require.NoError(t, err)
		assert.Equal(t, "unnamed", s.Name)
	})
}

// TestRun_ReportsFailures tests that wrong expectations are reported.
func TestRun_ReportsFailures(t *testing.T) {
	t.Parallel()

	suite := &Suite{
		Name: "expectations",
		Cases: []Case{
			{Name: "right", Pattern: "/:id", Path: "/1", Matched: true, Params: map[string]string{"id": "1"}},
			{Name: "wrong param", Pattern: "/:id", Path: "/1", Matched: true, Params: map[string]string{"id": "2"}},
			{Name: "wrong match", Pattern: "/a", Path: "/b", Matched: true},
			{Name: "unexpected error", Pattern: `/:id(\d{2,1})`, Path: "/1"},
			{Name: "expected error", Pattern: `/:id(\d{2,1})`, Invalid: true},
			{Name: "missing error", Pattern: "/ok", Invalid: true},
		},
	}

	report := suite.Run()
	require.Len(t, report.Outcomes, 6)
	assert.False(t, report.Passed())

	var failed []string
	for _, o := range report.Failed() {
		failed = append(failed, o.Case.Name)
	}
	assert.Equal(t, []string{"wrong param", "wrong match", "unexpected error", "missing error"}, failed)

	assert.Empty(t, report.Outcomes[0].Diff)
	assert.NotEmpty(t, report.Outcomes[1].Diff)
	require.Error(t, report.Outcomes[3].Err)
	assert.ErrorIs(t, report.Outcomes[3].Err, pathregex.ErrInvalidPattern)

	summary := report.Summary()
	assert.Equal(t, "expectations", summary.Suite)
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 4, summary.Failed)
	assert.Equal(t, `^/([^\/]+?)\/?$`, summary.Records[0].Source)
	assert.NotEmpty(t, summary.Records[3].Error)
}

// TestRun_Options tests that suite-wide options combine with per-case settings.
func TestRun_Options(t *testing.T) {
	t.Parallel()

	suite := &Suite{Cases: []Case{
		{Pattern: "/foo", Path: "/FOO", Matched: true},
		{Pattern: "/foo", Path: "/FOO", CaseInsensitive: true, Matched: true},
	}}

	sensitive := suite.Run()
	assert.Len(t, sensitive.Failed(), 1)

	insensitive := suite.Run(pathregex.WithCaseInsensitive())
	assert.True(t, insensitive.Passed())
}

// TestSummary_Encodes tests that a summary encodes with every built-in codec.
func TestSummary_Encodes(t *testing.T) {
	t.Parallel()

	suite, err := Load(filepath.Join("testdata", "download.toml"))
	require.NoError(t, err)
	summary := suite.Run().Summary()

	for _, typ := range []codec.Type{codec.TypeJSON, codec.TypeYAML, codec.TypeTOML} {
		enc, err := codec.GetEncoder(typ)
		require.NoError(t, err)

		data, err := enc.Encode(summary)
		require.NoError(t, err, "codec %s", typ)
		assert.Contains(t, string(data), "archive", "codec %s", typ)
	}
}

// TestCase_String tests case descriptions.
func TestCase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "named", Case{Name: "named", Pattern: "/"}.String())
	assert.Equal(t, `"/:id" on "/1"`, Case{Pattern: "/:id", Path: "/1"}.String())
	assert.Equal(t, `"/a" on "/A" (case insensitive)`, Case{Pattern: "/a", Path: "/A", CaseInsensitive: true}.String())
}

// TestDecode_Schema tests that documents violating the fixture schema are
// rejected before binding.
func TestDecode_Schema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  codec.Type
		data string
	}{
		{name: "unknown suite key", typ: codec.TypeYAML, data: "cases: []\nextra: 1\n"},
		{name: "unknown case key", typ: codec.TypeJSON, data: `{"cases": [{"pattern": "/", "expect": true}]}`},
		{name: "pattern not a string", typ: codec.TypeJSON, data: `{"cases": [{"pattern": 5}]}`},
		{name: "cases missing", typ: codec.TypeTOML, data: `name = "x"`},
		{name: "param is a list", typ: codec.TypeYAML, data: "cases:\n  - pattern: /:id\n    params:\n      id: [1, 2]\n"},
		{name: "null document", typ: codec.TypeJSON, data: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.data), tt.typ)
			require.ErrorIs(t, err, ErrInvalidSuite)
		})
	}
}

func TestDecode_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{}"), codec.Type("ini"))
	require.ErrorIs(t, err, codec.ErrDecoderNotFound)
}

// TestDecode_ScalarParams tests that unquoted numeric parameter values are
// read as strings.
func TestDecode_ScalarParams(t *testing.T) {
	t.Parallel()

	data := "cases:\n  - pattern: /:id\n    path: /42\n    matched: true\n    params:\n      id: 42\n"
	suite, err := Decode([]byte(data), codec.TypeYAML)
	require.NoError(t, err)
	require.Len(t, suite.Cases, 1)
	assert.Equal(t, map[string]string{"id": "42"}, suite.Cases[0].Params)
	assert.True(t, suite.Run().Passed())
}

// TestDecode_Defaults tests that suite defaults fill unset case fields only.
func TestDecode_Defaults(t *testing.T) {
	t.Parallel()

	data := `{
		"defaults": {"pattern": "/users/:id", "case_insensitive": true},
		"cases": [
			{"path": "/USERS/1", "matched": true, "params": {"id": "1"}},
			{"pattern": "/posts/:id", "path": "/posts/2", "matched": true, "params": {"id": "2"}},
			{"path": "/USERS/3", "case_insensitive": false, "matched": false},
			{"pattern": "", "path": "", "matched": true}
		]
	}`

	suite, err := Decode([]byte(data), codec.TypeJSON)
	require.NoError(t, err)
	require.Len(t, suite.Cases, 4)

	assert.Equal(t, "/users/:id", suite.Cases[0].Pattern)
	assert.True(t, suite.Cases[0].CaseInsensitive)
	assert.Equal(t, "/posts/:id", suite.Cases[1].Pattern)
	assert.True(t, suite.Cases[1].CaseInsensitive)
	assert.Equal(t, "/users/:id", suite.Cases[2].Pattern)
	assert.False(t, suite.Cases[2].CaseInsensitive, "explicit false is kept")
	assert.Empty(t, suite.Cases[3].Pattern, "explicit empty pattern is kept")
	assert.Equal(t, Defaults{Pattern: "/users/:id", CaseInsensitive: true}, suite.Defaults)
	assert.True(t, suite.Run().Passed())
}

// TestDecode_DefaultsExplicitFalseYAML tests that a case turning off a
// case-insensitive default stays case sensitive.
func TestDecode_DefaultsExplicitFalseYAML(t *testing.T) {
	t.Parallel()

	data := "defaults:\n  pattern: /foo\n  case_insensitive: true\n" +
		"cases:\n  - path: /FOO\n    case_insensitive: false\n    matched: false\n"

	suite, err := Decode([]byte(data), codec.TypeYAML)
	require.NoError(t, err)
	require.Len(t, suite.Cases, 1)
	assert.Equal(t, "/foo", suite.Cases[0].Pattern)
	assert.False(t, suite.Cases[0].CaseInsensitive)
	assert.True(t, suite.Run().Passed())
}

func TestSchema(t *testing.T) {
	t.Parallel()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(Schema(), &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []any{"cases"}, doc["required"])
}
