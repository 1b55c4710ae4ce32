// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paramizer parses parameter strings and optionally validates them
// against a schema file.
//
//	paramizer [--schema FILE] [--format text|json] [--no-color] [--verbose] [--] INPUT...
//
// Everything after "--" is treated as input, so input may contain flags that
// paramizer itself understands. Without INPUT, each line of stdin is handled
// as a separate parameter string.
package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/paramizer/pkg/params"
	"github.com/yeetrun/paramizer/pkg/report"
	"github.com/yeetrun/paramizer/pkg/schema"
	"golang.org/x/term"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	schemaEnv = "PARAMIZER_SCHEMA"
	usage     = "usage: paramizer [--schema FILE] [--format text|json] [--no-color] [--verbose] [--print-schema] [--] INPUT..."

	// maxLine bounds a single stdin line.
	maxLine = 64 << 20
)

type globalFlagsParsed struct {
	Schema      string `flag:"schema" help:"Schema file, .toml or .yaml (PARAMIZER_SCHEMA)"`
	Format      string `flag:"format" default:"text" help:"Output format: text or json"`
	NoColor     bool   `flag:"no-color" help:"Disable colored output"`
	Verbose     bool   `flag:"verbose" help:"Log schema loading details"`
	PrintSchema bool   `flag:"print-schema" help:"Print the effective schema as TOML and exit"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, dropSeparator(result.RemainingArgs), nil
}

// dropSeparator removes the first "--" from args.
func dropSeparator(args []string) []string {
	i := slices.Index(args, "--")
	if i < 0 {
		return args
	}
	return slices.Delete(slices.Clone(args), i, i+1)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "paramizer: ", 0)

	flags, input, err := parseGlobalFlags(args)
	if err != nil {
		logger.Printf("%v\n%s", err, usage)
		return exitUsage
	}
	if flags.Format != "text" && flags.Format != "json" {
		logger.Printf("unknown format %q\n%s", flags.Format, usage)
		return exitUsage
	}

	schemaPath := flags.Schema
	if schemaPath == "" {
		schemaPath = os.Getenv(schemaEnv)
		if schemaPath != "" && flags.Verbose {
			logger.Printf("using schema from %s", schemaEnv)
		}
	}
	var validator *params.Validator
	if schemaPath != "" {
		f, err := schema.Load(schemaPath)
		if err != nil {
			logger.Printf("failed to load schema: %v", err)
			return exitUsage
		}
		validator = f.Validator()
		if flags.Verbose {
			logger.Printf("loaded schema %s: %d required flag(s), %d required value flag(s), minimum %d",
				schemaPath, len(f.RequiredFlags), len(f.RequiredValueFlags), validator.Minimum())
		}
	}

	if flags.PrintSchema {
		v := validator
		if v == nil {
			v = params.NewValidator()
		}
		if err := schema.FromValidator(v).WriteTOML(stdout); err != nil {
			logger.Printf("failed to write schema: %v", err)
			return exitUsage
		}
		return exitOK
	}

	printer := report.Printer{Color: !flags.NoColor && isTerminal(stdout)}
	emit := func(p *params.ParamString) (bool, error) {
		p.SetValidator(validator)
		err := p.Validate()
		s := report.NewSummary(p, err)
		if flags.Format == "json" {
			return err == nil, report.WriteJSON(stdout, s)
		}
		return err == nil, printer.WriteText(stdout, s)
	}

	allValid := true
	if len(input) > 0 {
		ok, err := emit(params.Of(input...))
		if err != nil {
			logger.Printf("failed to write output: %v", err)
			return exitUsage
		}
		allValid = ok
	} else {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), maxLine)
		for sc.Scan() {
			ok, err := emit(params.Parse(strings.TrimSuffix(sc.Text(), "\r")))
			if err != nil {
				logger.Printf("failed to write output: %v", err)
				return exitUsage
			}
			allValid = allValid && ok
		}
		if err := sc.Err(); err != nil {
			logger.Printf("failed to read input: %v", err)
			return exitUsage
		}
	}

	if !allValid {
		return exitInvalid
	}
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
