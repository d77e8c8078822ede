package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/f4hrenh9it/go-tcmetrics/analyzer"
)

var version string

const (
	exitOK = iota
	exitFailure
	exitUsage
	exitIO
	exitParse
	exitFormat
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	l := analyzer.NewLogger(stderr, cfg.Verbosity)
	a := analyzer.New(stdout, l)
	defer a.Sync()

	_, table, err := a.ParseJSON(cfg.InputPath, cfg.OutputPath)
	if err != nil {
		l.Errorw("run failed", "input", cfg.InputPath, "output", cfg.OutputPath, "error", err)
		return exitCode(err)
	}
	a.PrintMetrics(analyzer.CalculateMetrics(table))
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, analyzer.ErrIO):
		return exitIO
	case errors.Is(err, analyzer.ErrParse):
		return exitParse
	case errors.Is(err, analyzer.ErrFormat):
		return exitFormat
	default:
		return exitFailure
	}
}
