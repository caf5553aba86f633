package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"benchreport"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.showVersion {
		fmt.Println("benchreport " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run builds options from flags and delegates to the report service.
func run(flags *cliFlags) error {
	opts := benchreport.Options{
		Root:        flags.root,
		HTMLPreview: flags.html,
	}
	if flags.verbose {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	dir, err := benchreport.New().Generate(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", dir)
	return nil
}
