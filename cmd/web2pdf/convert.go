package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	web2pdf "github.com/webarc/go-web2pdf"
	"github.com/webarc/go-web2pdf/internal/logging"
)

// runConvertCmd executes the convert command and returns an exit code.
func runConvertCmd(args []string, stdout, stderr io.Writer) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return ExitUsage
	}
	if len(positional) == 0 {
		fmt.Fprintln(stderr, ErrNoURL)
		printConvertUsage(stderr)
		return ExitUsage
	}

	logger := newLogger(stderr, &flags.common)
	if err := convert(flags, positional[0], stdout, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// convert captures one URL and writes the PDF to the resolved output path.
func convert(flags *convertFlags, pageURL string, stdout io.Writer, logger *slog.Logger) error {
	conv, err := newConverter(&flags.common)
	if err != nil {
		return err
	}
	if !conv.IsAvailable() {
		return fmt.Errorf("%w: install wkhtmltopdf or point the registry at it", web2pdf.ErrToolUnavailable)
	}

	outPath := flags.output
	if outPath == "" {
		outPath = outputNameForURL(pageURL)
	}

	var jar *web2pdf.Artifact
	if flags.cookieJar != "" {
		jar = web2pdf.NewArtifact(flags.cookieJar)
	}

	logger.Debug("starting conversion",
		"url", pageURL, "output", outPath, "timeout_ms", conv.Timeout())
	start := time.Now()

	pdf, err := conv.ConvertWithCookies(context.Background(), pageURL, outPath, jar)
	if err != nil {
		return fmt.Errorf("converting %s: %w", pageURL, err)
	}

	if err := writeArtifact(pdf, outPath); err != nil {
		return err
	}

	logger.Debug("conversion finished",
		"output", outPath, "bytes", pdf.Size(), "elapsed", time.Since(start).String())
	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Wrote %s (%d bytes)\n", outPath, pdf.Size())
	}
	return nil
}

// newConverter builds a Converter from the common flags and environment.
func newConverter(flags *commonFlags) (*web2pdf.Converter, error) {
	reg, err := web2pdf.ResolveRegistry(registryRef(flags.registry))
	if err != nil {
		return nil, err
	}
	conv := web2pdf.New(web2pdf.WithRegistry(reg))
	if flags.timeout != 0 {
		conv.SetTimeout(flags.timeout)
	}
	return conv, nil
}

// newLogger configures slog for the selected verbosity.
func newLogger(w io.Writer, flags *commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case flags.verbose:
		level = slog.LevelDebug
	case flags.quiet:
		level = slog.LevelError
	}
	return logging.Init(w, level)
}

// writeArtifact copies an artifact's bytes to dest.
func writeArtifact(a *web2pdf.Artifact, dest string) error {
	data, err := a.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, dest, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil { // #nosec G306 -- generated document, not a secret
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, dest, err)
	}
	return nil
}

// outputNameForURL derives a default PDF file name from the page URL host,
// falling back to webpage.pdf.
func outputNameForURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return "webpage.pdf"
	}
	name := strings.ReplaceAll(u.Host, ":", "-")
	return name + ".pdf"
}
