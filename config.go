package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

var errUsage = errors.New("expected exactly two arguments: <json_file> <output_file>")

type Config struct {
	InputPath  string
	OutputPath string
	Verbosity  string
}

// ParseArgs reads the two positional paths. There are no flags besides -h,
// so anything else, including paths starting with "-", is positional.
func ParseArgs(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("tcmetrics", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "tcmetrics %s\n", version)
		fmt.Fprintln(fs.Output(), "Process test case results from a JSON file.")
		fmt.Fprintln(fs.Output(), "usage: tcmetrics <json_file> <output_file>")
		fmt.Fprintln(fs.Output(), "  json_file    path to the JSON file containing test case data")
		fmt.Fprintln(fs.Output(), "  output_file  path to the output CSV file")
	}
	if len(args) == 0 || !isHelp(args[0]) {
		args = append([]string{"--"}, args...)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return Config{}, errUsage
	}
	return Config{
		InputPath:  fs.Arg(0),
		OutputPath: fs.Arg(1),
		Verbosity:  "info",
	}, nil
}

func isHelp(arg string) bool {
	switch arg {
	case "-h", "-help", "--h", "--help":
		return true
	}
	return false
}
