package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	registry string
	timeout  int
	quiet    bool
	verbose  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	cookieJar string
}

// loginFlags holds all flags for the login command.
type loginFlags struct {
	common   commonFlags
	postData string
	jarOut   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.registry, "registry", "r", "", "command registry file or name")
	fs.IntVarP(&f.timeout, "timeout", "t", 0, "watchdog timeout in ms (<1000 = default 30000)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseConvertFlags parses convert command flags and returns positional
// args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: derived from URL)")
	fs.StringVar(&f.cookieJar, "cookie-jar", "", "cookie jar file from a previous login")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseLoginFlags parses login command flags and returns positional args.
func parseLoginFlags(args []string) (*loginFlags, []string, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	f := &loginFlags{}

	fs.StringVar(&f.postData, "post-data", "", "raw form-post arguments passed to the renderer")
	fs.StringVar(&f.jarOut, "jar-out", "", "copy the cookie jar to this path")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printLoginUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
