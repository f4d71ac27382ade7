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

// Command pathregex compiles a path pattern and matches paths against it,
// or runs a fixture suite of recorded cases.
//
// Usage:
//
//	pathregex [flags] <pattern> <path>...
//	pathregex [flags] -fixtures <file>
//
// Exit status is 0 when every path matched or every fixture passed, 1 when a
// path did not match or a fixture failed, and 2 on usage or compile errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"rivaas.dev/pathregex"
	"rivaas.dev/pathregex/fixture"
	"rivaas.dev/pathregex/fixture/codec"
	"rivaas.dev/pathregex/logging"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

const usageText = `Usage:
  pathregex [flags] <pattern> <path>...
  pathregex [flags] -fixtures <file>

Flags:
`

var errMissingArgs = errors.New("a pattern and at least one path are required")

type options struct {
	caseInsensitive bool
	output          string
	fixtures        string
	logHandler      string
	verbose         bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	o := &options{}

	flags := flag.NewFlagSet("pathregex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usageText)
		flags.PrintDefaults()
	}

	flags.BoolVar(&o.caseInsensitive, "i", false, "match without regard to ASCII letter case")
	flags.StringVar(&o.output, "o", "text", "output format: text, json, yaml or toml")
	flags.StringVar(&o.fixtures, "fixtures", "", "run the fixture suite stored in `file` (.json, .yaml or .toml)")
	flags.StringVar(&o.logHandler, "log", "text", "log format: text, json or console")
	flags.BoolVar(&o.verbose, "v", false, "log debug information such as the generated expression")

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	rest := flags.Args()
	if o.fixtures == "" && len(rest) < 2 {
		flags.Usage()
		return nil, nil, errMissingArgs
	}

	return o, rest, nil
}

func (o *options) newLogger(stderr io.Writer) (*logging.Logger, error) {
	handler, err := logging.ParseHandlerType(o.logHandler)
	if err != nil {
		return nil, err
	}

	opts := []logging.Option{
		logging.WithHandlerType(handler),
		logging.WithOutput(stderr),
	}
	if o.verbose {
		opts = append(opts, logging.WithDebugLevel())
	}

	return logging.New(opts...)
}

func (o *options) encoder() (codec.Encoder, error) {
	if o.output == "text" {
		return nil, nil
	}
	return codec.GetEncoder(codec.Type(o.output))
}

func (o *options) compileOptions(logger *logging.Logger) []pathregex.Option {
	opts := []pathregex.Option{pathregex.WithDiagnostics(logging.DiagnosticHandler(logger))}
	if o.caseInsensitive {
		opts = append(opts, pathregex.WithCaseInsensitive())
	}
	return opts
}

// run executes the command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	o, rest, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "pathregex:", err)
		return exitUsage
	}

	logger, err := o.newLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "pathregex:", err)
		return exitUsage
	}

	enc, err := o.encoder()
	if err != nil {
		logger.Error("unsupported output format", "format", o.output, "error", err)
		return exitUsage
	}

	if o.fixtures != "" {
		return runFixtures(o, logger, enc, stdout)
	}
	return runMatch(o, logger, enc, rest[0], rest[1:], stdout)
}

func runMatch(o *options, logger *logging.Logger, enc codec.Encoder, pattern string, paths []string, stdout io.Writer) int {
	m, err := pathregex.Compile(pattern, o.compileOptions(logger)...)
	if err != nil {
		logger.Error("compile failed", "pattern", pattern, "error", err)
		return exitUsage
	}

	out := newMatchOutput(m, paths)
	if err := out.write(stdout, enc); err != nil {
		logger.Error("write output", "error", err)
		return exitUsage
	}

	if !out.allMatched() {
		return exitMismatch
	}
	return exitOK
}

func runFixtures(o *options, logger *logging.Logger, enc codec.Encoder, stdout io.Writer) int {
	suite, err := fixture.Load(o.fixtures)
	if err != nil {
		logger.Error("load fixtures", "file", o.fixtures, "error", err)
		return exitUsage
	}
	logger.Debug("fixtures loaded", "suite", suite.Name, "cases", len(suite.Cases))

	report := suite.Run(o.compileOptions(logger)...)
	for _, f := range report.Failed() {
		logger.Warn("case failed",
			"case", f.Case.String(),
			"source", f.Source,
			"error", f.Err,
			"diff", f.Diff,
		)
	}

	if err := writeSummary(stdout, enc, report.Summary()); err != nil {
		logger.Error("write output", "error", err)
		return exitUsage
	}

	if !report.Passed() {
		return exitMismatch
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
