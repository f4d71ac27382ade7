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

import (
	"strings"

	"rivaas.dev/pathregex/percent"
)

// WarningKind categorizes constructs that compile but are probably not what
// the pattern author meant.
type WarningKind string

const (
	// WarnStrayBrace marks a '{' without a closing '}', or a lone '}'. The
	// brace is matched literally.
	WarnStrayBrace WarningKind = "stray_brace"

	// WarnEmptyGroup marks an optional group that compiles to nothing.
	WarnEmptyGroup WarningKind = "empty_group"
)

// Warning is a non-fatal finding produced during compilation.
type Warning struct {
	Kind   WarningKind
	Offset int // byte offset in the percent-encoded pattern
}

// Pattern is the result of compiling a path pattern.
type Pattern struct {
	// Source is the anchored regular expression, e.g. `^/users/([^\/]+?)\/?$`.
	Source string

	// Keys holds the decoded parameter names. Keys[i] binds to capture group
	// i+1 of Source. Names may repeat.
	Keys []string

	// Separator is the path separator of the pattern, '/' or '\'.
	Separator byte

	// Warnings lists suspicious but valid constructs in pattern order.
	Warnings []Warning
}

// specials are the bytes escaped with a backslash when they appear outside
// of a parameter or optional group.
const specials = `.^$*+?()|[]{}\`

// wildcardCapture matches one or more non-whitespace bytes, shortest first.
// Whitespace never reaches the regexp unencoded, so this spans any
// percent-encoded text including separators.
const wildcardCapture = `(\S+?)`

// Compile compiles pattern. It never fails: every input produces a source
// string, although a custom sub-pattern may still be rejected by the regexp
// package afterwards.
func Compile(pattern string) *Pattern {
	sep := DetectSeparator(pattern)
	c := &compiler{
		sep:  sep,
		keys: make([]string, 0, strings.Count(pattern, ":")+strings.Count(pattern, "*")),
	}

	body := c.compile(percent.Encode(pattern), 0)
	if body == "" || body[len(body)-1] != sep {
		body += `\` + string(sep)
	}

	return &Pattern{
		Source:    "^" + body + "?$",
		Keys:      c.keys,
		Separator: sep,
		Warnings:  c.warnings,
	}
}

// compiler holds the state shared between recursive calls.
type compiler struct {
	sep      byte
	keys     []string
	warnings []Warning
}

// compile scans s, the percent-encoded pattern or the inside of an optional
// group starting at offset base, and returns the regexp fragment for it.
func (c *compiler) compile(s string, base int) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	last := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			if end := strings.IndexByte(s[i+1:], '}'); end >= 0 {
				b.WriteString(s[last:i])
				inner := s[i+1 : i+1+end]
				if sub := c.compile(inner, base+i+1); sub != "" {
					b.WriteString("(?:")
					b.WriteString(sub)
					b.WriteString(")?")
				} else {
					c.warn(WarnEmptyGroup, base+i)
				}
				i += end + 2
				last = i
				continue
			}
			c.warn(WarnStrayBrace, base+i)
		case '}':
			c.warn(WarnStrayBrace, base+i)
		case ':':
			if n := nameLen(s[i+1:]); n > 0 {
				b.WriteString(s[last:i])
				nameEnd := i + 1 + n
				c.keys = append(c.keys, percent.Decode(s[i+1:nameEnd]))

				custom, end := customPattern(s, nameEnd)
				b.WriteByte('(')
				if custom != "" {
					b.WriteString(custom)
				} else {
					b.WriteString(`[^\`)
					b.WriteByte(c.sep)
					b.WriteString(`]+?`)
				}
				b.WriteByte(')')

				i = end
				last = i
				continue
			}
		case '*':
			if n := nameLen(s[i+1:]); n > 0 {
				b.WriteString(s[last:i])
				nameEnd := i + 1 + n
				c.keys = append(c.keys, percent.Decode(s[i+1:nameEnd]))
				b.WriteString(wildcardCapture)

				i = nameEnd
				last = i
				continue
			}
		}

		if strings.IndexByte(specials, s[i]) >= 0 {
			b.WriteString(s[last:i])
			b.WriteByte('\\')
			b.WriteByte(s[i])
			i++
			last = i
			continue
		}

		i++
	}

	b.WriteString(s[last:])

	return b.String()
}

func (c *compiler) warn(kind WarningKind, offset int) {
	c.warnings = append(c.warnings, Warning{Kind: kind, Offset: offset})
}

// customPattern returns the custom sub-pattern that starts at s[at] together
// with the index just past it. The sub-pattern is the non-empty text between
// '(' and the next ')'. When there is none, it returns "" and at.
func customPattern(s string, at int) (string, int) {
	if at >= len(s) || s[at] != '(' {
		return "", at
	}
	end := strings.IndexByte(s[at+1:], ')')
	if end <= 0 {
		return "", at
	}
	return s[at+1 : at+1+end], at + end + 2
}

// nameLen returns the length of the parameter name at the start of s. Names
// consist of ASCII letters, digits, '_' and '%', the last one carrying any
// percent-encoded non-ASCII text.
func nameLen(s string) int {
	n := 0
	for n < len(s) && isNameByte(s[n]) {
		n++
	}
	return n
}

func isNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '_' || c == '%'
}
