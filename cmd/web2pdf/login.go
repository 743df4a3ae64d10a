package main

import (
	"context"
	"fmt"
	"io"

	web2pdf "github.com/webarc/go-web2pdf"
)

// runLoginCmd executes the login command and returns an exit code.
func runLoginCmd(args []string, stdout, stderr io.Writer) int {
	flags, positional, err := parseLoginFlags(args)
	if err != nil {
		return ExitUsage
	}
	if len(positional) == 0 {
		fmt.Fprintln(stderr, ErrNoURL)
		printLoginUsage(stderr)
		return ExitUsage
	}

	logger := newLogger(stderr, &flags.common)
	if err := login(flags, positional[0], stdout); err != nil {
		logger.Error("login failed", "url", positional[0], "error", err.Error())
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// login runs the authentication step and reports where the cookie jar
// landed. The jar stays where the workspace allocated it unless --jar-out
// asks for a copy.
func login(flags *loginFlags, pageURL string, stdout io.Writer) error {
	conv, err := newConverter(&flags.common)
	if err != nil {
		return err
	}
	if !conv.IsAvailable() {
		return fmt.Errorf("%w: install wkhtmltopdf or point the registry at it", web2pdf.ErrToolUnavailable)
	}

	jar, err := conv.Login(context.Background(), pageURL, flags.postData)
	if err != nil {
		return fmt.Errorf("logging in at %s: %w", pageURL, err)
	}

	jarPath := jar.Path()
	if flags.jarOut != "" {
		if err := writeArtifact(jar, flags.jarOut); err != nil {
			return err
		}
		jarPath = flags.jarOut
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Cookie jar: %s\n", jarPath)
	}
	return nil
}
