// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
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

package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrEncoderNotFound indicates that no encoder is registered for a type.
	ErrEncoderNotFound = errors.New("encoder not found")

	// ErrDecoderNotFound indicates that no decoder is registered for a type.
	ErrDecoderNotFound = errors.New("decoder not found")

	// ErrUnknownExtension indicates that a file extension maps to no codec type.
	ErrUnknownExtension = errors.New("unknown file extension")
)

// Registry holds the registered encoders and decoders.
type Registry struct {
	mu       sync.RWMutex
	encoders map[Type]Encoder
	decoders map[Type]Decoder
}

var registry = &Registry{
	encoders: make(map[Type]Encoder),
	decoders: make(map[Type]Decoder),
}

// extensions maps file extensions, without the dot, to codec types.
var extensions = map[string]Type{
	"json": TypeJSON,
	"yaml": TypeYAML,
	"yml":  TypeYAML,
	"toml": TypeTOML,
}

// RegisterEncoder registers an encoder for the given type, replacing any
// encoder registered before.
func RegisterEncoder(name Type, encoder Encoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.encoders[name] = encoder
}

// RegisterDecoder registers a decoder for the given type, replacing any
// decoder registered before.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.decoders[name] = decoder
}

// GetEncoder retrieves the registered encoder for the given type.
func GetEncoder(name Type) (Encoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	encoder, exists := registry.encoders[name]
	if !exists {
		return nil, fmt.Errorf("%w for type: %s", ErrEncoderNotFound, name)
	}

	return encoder, nil
}

// GetDecoder retrieves the registered decoder for the given type.
func GetDecoder(name Type) (Decoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	decoder, exists := registry.decoders[name]
	if !exists {
		return nil, fmt.Errorf("%w for type: %s", ErrDecoderNotFound, name)
	}

	return decoder, nil
}

// Encoders returns the registered encoder types in sorted order.
func Encoders() []Type {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	types := make([]Type, 0, len(registry.encoders))
	for t := range registry.encoders {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// TypeFromPath returns the codec type for the extension of path.
func TypeFromPath(path string) (Type, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if t, ok := extensions[ext]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(path))
}
