// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/intmat/internal/config"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK        = 0
	exitError     = 1
	exitUsage     = 2
	exitDifferent = 3
)

var (
	errUsage     = errors.New("usage")
	errDifferent = errors.New("matrices differ")
)

const usageText = `usage: intmat [flags] <command> args...

commands:
  sum A B | sub A B | product A B | hadamard A B | scale A k | transpose A
  identity n | random [-seed s] rows cols min max
  equal A B | show A | sample-config path

flags:
`

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("intmat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	var (
		configPath  = fs.String("config", "", "JSON configuration file")
		logLevel    = fs.String("log-level", "", "debug, info, warn or error")
		output      = fs.String("o", "", "write the result to this file instead of stdout")
		compression = fs.String("compression", "", "auto, none, gzip or zstd")
		strict      = fs.Bool("strict", false, "reject malformed numbers and ragged rows")
		checked     = fs.Bool("checked", false, "fail on integer overflow instead of wrapping")
		maxElements = fs.Int("max-elements", 0, "largest matrix accepted (rows*cols)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "intmat: %v\n", err)
			return exitError
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = config.LogLevel(*logLevel)
		case "o":
			cfg.Output = *output
		case "compression":
			cfg.Compression = *compression
		case "strict":
			cfg.Parse.StrictNumbers = *strict
			cfg.Parse.StrictShape = *strict
		case "checked":
			cfg.Matrix.CheckedOverflow = *checked
		case "max-elements":
			cfg.Matrix.MaxElements = *maxElements
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "intmat: %v\n", err)
		return exitUsage
	}

	logger := newLogger(cfg.LogLevel, stderr)
	defer func() { _ = logger.Sync() }()

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	a := &app{cfg: cfg, log: logger.Sugar(), stdin: stdin, stdout: stdout}
	name, rest := fs.Arg(0), fs.Args()[1:]
	err := a.dispatch(name, rest)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDifferent):
		return exitDifferent
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "intmat: %v\n", err)
		fs.Usage()
		return exitUsage
	default:
		logger.Error("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(stderr, "intmat: %s: %v\n", name, err)
		return exitError
	}
}
