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

// Package codec encodes and decodes fixture suites and match reports.
//
// The codec package defines [Encoder] and [Decoder] interfaces and a registry
// keyed by [Type]. The fixture loader and the pathregex command pick a codec
// by file extension or output flag.
//
// # Built-in Codecs
//
//   - JSON: encoding/json, indented output
//   - YAML: github.com/goccy/go-yaml
//   - TOML: github.com/BurntSushi/toml
//
// # Custom Codecs
//
//	codec.RegisterEncoder(codec.Type("myformat"), MyCodec{})
//	codec.RegisterDecoder(codec.Type("myformat"), MyCodec{})
package codec
