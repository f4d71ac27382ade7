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

package percent

import "strings"

const upperHex = "0123456789ABCDEF"

// passThrough lists the punctuation that Encode leaves untouched.
const passThrough = "!\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~`"

// unreserved is indexed by byte value; true means the byte is copied as is.
var unreserved [256]bool

func init() {
	for c := '0'; c <= '9'; c++ {
		unreserved[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		unreserved[c] = true
		unreserved[c-'a'+'A'] = true
	}
	for i := 0; i < len(passThrough); i++ {
		unreserved[passThrough[i]] = true
	}
}

// NeedsEncoding reports whether Encode would change s.
func NeedsEncoding(s string) bool {
	for i := 0; i < len(s); i++ {
		if !unreserved[s[i]] {
			return true
		}
	}
	return false
}

// Encode returns s with every byte outside the pass-through set replaced by
// '%' and two uppercase hex digits. The result is at most three times as long
// as s. When nothing needs encoding, s is returned as is.
func Encode(s string) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if !unreserved[s[i]] {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 3)
	b.WriteString(s[:first])

	for i := first; i < len(s); i++ {
		c := s[i]
		if unreserved[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

// Decode replaces every %XX escape, where both X are hex digits in either
// case, with the byte it encodes. Malformed or truncated escapes are copied
// through literally; Decode never fails.
func Decode(s string) string {
	first := strings.IndexByte(s, '%')
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])

	for i := first; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
