package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command-line flags. All flags are optional;
// running with no arguments generates the report for the current directory.
type cliFlags struct {
	root        string
	html        bool
	verbose     bool
	showVersion bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVar(&f.root, "root", ".", "project root containing Cargo.toml and benchmark_results/")
	fs.BoolVar(&f.html, "html", false, "also render preview.html next to result.md")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print progress to stderr")
	fs.BoolVar(&f.showVersion, "version", false, "print the benchreport version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return f, nil
}
