package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// automaxprocs log output is noise for a CLI; discard it.
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
	// env, in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		return runConvertCmd(args[1:], stdout, stderr)
	case "login":
		return runLoginCmd(args[1:], stdout, stderr)
	case "doctor":
		return runDoctorCmd(args[1:], stdout)
	case "version", "--version":
		fmt.Fprintln(stdout, "web2pdf "+Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelpCmd(args[1:], stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
}
