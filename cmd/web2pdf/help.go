package main

import (
	"fmt"
	"io"
)

// runHelpCmd shows general or per-command help.
func runHelpCmd(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitSuccess
	}
	switch args[0] {
	case "convert":
		printConvertUsage(stdout)
	case "login":
		printLoginUsage(stdout)
	case "doctor":
		printDoctorUsage(stdout)
	default:
		printUsage(stdout)
	}
	return ExitSuccess
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Capture a webpage as PDF")
	fmt.Fprintln(w, "  login      Log in to a site and save the session cookie jar")
	fmt.Fprintln(w, "  doctor     Check that the external renderer is usable")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'web2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf convert <url> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture a webpage as PDF using the external renderer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output PDF path (default: derived from URL)")
	fmt.Fprintln(w, "      --cookie-jar <path> Cookie jar from a previous login")
	fmt.Fprintln(w, "  -t, --timeout <ms>      Watchdog timeout (<1000 = default 30000)")
	fmt.Fprintln(w, "  -r, --registry <ref>    Command registry file or name")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printLoginUsage prints usage for the login command.
func printLoginUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf login <url> --post-data <args> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Log in to a site and save the session cookie jar for later")
	fmt.Fprintln(w, "authenticated captures.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The post-data string is handed to the renderer verbatim, e.g.")
	fmt.Fprintln(w, `  --post-data "--post user-name alice --post user-pwd secret --post Submit doLogin"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --post-data <s>     Raw form-post arguments for the renderer")
	fmt.Fprintln(w, "      --jar-out <path>    Copy the cookie jar to this path")
	fmt.Fprintln(w, "  -t, --timeout <ms>      Watchdog timeout (<1000 = default 30000)")
	fmt.Fprintln(w, "  -r, --registry <ref>    Command registry file or name")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2pdf doctor [--json] [-r <registry>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the external renderer is installed and usable.")
}
