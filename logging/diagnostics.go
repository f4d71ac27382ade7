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

package logging

import (
	"log/slog"
	"maps"
	"slices"

	"rivaas.dev/pathregex"
)

// DiagnosticHandler returns a [pathregex.DiagnosticHandler] that writes
// compile diagnostics to l. Warnings are logged at warn level and everything
// else at debug level. Event fields are logged in key order.
func DiagnosticHandler(l *Logger) pathregex.DiagnosticHandler {
	return pathregex.DiagnosticHandlerFunc(func(e pathregex.DiagnosticEvent) {
		level := LevelDebug
		if e.Kind.IsWarning() {
			level = LevelWarn
		}

		attrs := make([]slog.Attr, 0, len(e.Fields)+1)
		attrs = append(attrs, slog.String("kind", string(e.Kind)))
		for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
			attrs = append(attrs, slog.Any(k, e.Fields[k]))
		}

		l.slogger.LogAttrs(bgCtx, level, e.Message, attrs...)
	})
}
