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

// Package logging configures the structured logger used by the pathregex
// command line tool.
//
// It wraps [log/slog] with functional options for the handler type (JSON,
// text or a colored console format), the output writer and the minimum level:
//
//	logger := logging.MustNew(
//	    logging.WithConsoleHandler(),
//	    logging.WithDebugLevel(),
//	)
//	logger.Info("suite loaded", "cases", 12)
//
// [DiagnosticHandler] forwards compile diagnostics from the pathregex package
// to a Logger: warnings are logged at warn level, informational events at
// debug level.
package logging
