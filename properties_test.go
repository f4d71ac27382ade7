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

package pathregex

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios tests the reference scenarios end to end.
func TestScenarios(t *testing.T) {
	t.Parallel()

	t.Run("two parameters", func(t *testing.T) {
		t.Parallel()
		m := MustCompile("/:foo/:bar")
		assert.Equal(t, Result{Matched: true, Params: Params{"foo": "x", "bar": "y"}}, m.Match("/x/y"))
		assert.Equal(t, Result{}, m.Match("/x/y/z"))
	})

	t.Run("wildcard spans segments", func(t *testing.T) {
		t.Parallel()
		m := MustCompile("/*foo")
		assert.Equal(t, Result{Matched: true, Params: Params{"foo": "x/y"}}, m.Match("/x/y"))
	})

	t.Run("optional parameter", func(t *testing.T) {
		t.Parallel()
		m := MustCompile("{/:foo}")
		assert.Equal(t, Result{Matched: true, Params: Params{"foo": ""}}, m.Match(""))
		assert.Equal(t, Result{Matched: true, Params: Params{"foo": "x"}}, m.Match("/x"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()
		m := MustCompile("/foo", WithCaseInsensitive())
		assert.True(t, m.Match("/FOO").Matched)
	})

	t.Run("custom sub-pattern", func(t *testing.T) {
		t.Parallel()
		m := MustCompile(`/:foo(\d{3})/`)
		assert.Equal(t, Result{Matched: true, Params: Params{"foo": "111"}}, m.Match("/111"))
		assert.False(t, m.Match("/11").Matched)
	})

	t.Run("percent-encoded path", func(t *testing.T) {
		t.Parallel()
		m := MustCompile("/café")
		assert.True(t, m.Match("/caf%C3%A9").Matched)
	})
}

// TestProperty_KeysBindCaptureGroups tests that every key has exactly one
// capture group and a match reports exactly the distinct keys.
func TestProperty_KeysBindCaptureGroups(t *testing.T) {
	t.Parallel()

	for _, tc := range matchCases {
		m, err := Compile(tc.pattern, WithSensitivity(tc.sensitivity))
		require.NoError(t, err)

		re := regexp.MustCompile(m.Source())
		assert.Equal(t, len(m.Keys()), re.NumSubexp(), "pattern %q", tc.pattern)

		res := m.Match(tc.path)
		if !res.Matched {
			continue
		}

		distinct := make(map[string]struct{})
		for _, k := range m.Keys() {
			distinct[k] = struct{}{}
		}
		assert.Len(t, res.Params, len(distinct), "pattern %q path %q", tc.pattern, tc.path)
		for k := range distinct {
			assert.Contains(t, res.Params, k)
		}
	}
}

// TestProperty_TrailingSeparatorOptional tests that appending one separator
// to a path never changes whether it matches.
func TestProperty_TrailingSeparatorOptional(t *testing.T) {
	t.Parallel()

	for _, tc := range matchCases {
		m, err := Compile(tc.pattern, WithSensitivity(tc.sensitivity))
		require.NoError(t, err)

		sep := string(m.Separator())
		if strings.HasSuffix(tc.path, sep) {
			continue
		}

		bare := m.Match(tc.path)
		slashed := m.Match(tc.path + sep)
		assert.Equal(t, bare.Matched, slashed.Matched,
			"pattern %q path %q source %s", tc.pattern, tc.path, m.Source())
		if bare.Matched {
			assert.Equal(t, bare.Params, slashed.Params, "pattern %q path %q", tc.pattern, tc.path)
		}
	}
}

// TestProperty_CaseInsensitive tests that case variants of a matching ASCII
// path also match when case is ignored.
func TestProperty_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, tc := range matchCases {
		if !tc.matched {
			continue
		}

		m, err := Compile(tc.pattern, WithCaseInsensitive())
		require.NoError(t, err)

		require.True(t, m.MatchString(tc.path), "pattern %q path %q", tc.pattern, tc.path)
		assert.True(t, m.MatchString(mapASCII(tc.path, toUpper)), "pattern %q path %q", tc.pattern, tc.path)
		assert.True(t, m.MatchString(mapASCII(tc.path, toLower)), "pattern %q path %q", tc.pattern, tc.path)
		assert.True(t, m.MatchString(mapASCII(tc.path, swapCase)), "pattern %q path %q", tc.pattern, tc.path)
	}
}

// mapASCII applies fn to every ASCII letter of s. Non-ASCII text is compared
// in percent-encoded form, where case folding does not apply.
func mapASCII(s string, fn func(byte) byte) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			b[i] = fn(c)
		}
	}
	return string(b)
}

func toUpper(c byte) byte { return c &^ 0x20 }

func toLower(c byte) byte { return c | 0x20 }

func swapCase(c byte) byte { return c ^ 0x20 }
