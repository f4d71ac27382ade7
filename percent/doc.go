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

// Package percent implements the percent-encoding used to move pattern and
// path text into a form that is safe to embed in a regular expression.
//
// Encode keeps ASCII letters and digits plus a fixed set of punctuation and
// rewrites every other byte as %XX with uppercase hex digits. Decode reverses
// any well-formed %XX escape and copies everything else through, so that
//
//	percent.Decode(percent.Encode(s)) == s
//
// holds for every string s, including invalid UTF-8.
//
// Note that '%' itself is in the pass-through set: text that is already
// percent-encoded stays as it is, which is what lets "/caf%C3%A9" and
// "/café" compare equal after encoding.
package percent
