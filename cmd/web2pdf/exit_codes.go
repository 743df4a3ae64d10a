package main

import (
	"errors"
	"os"

	web2pdf "github.com/webarc/go-web2pdf"
)

// Exit codes for the web2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom
// codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or registry config
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitConvert = 4 // Renderer unavailable or conversion failed
)

// Sentinel errors raised by the CLI layer.
var (
	ErrNoURL       = errors.New("url argument is required")
	ErrWriteOutput = errors.New("failed to write output file")
)

// exitCodeFor maps an error to an exit code. It uses errors.Is to check
// wrapped errors, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer/conversion errors (exit 4)
	if errors.Is(err, web2pdf.ErrNoValidPDF) ||
		errors.Is(err, web2pdf.ErrToolUnavailable) {
		return ExitConvert
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrNoURL) ||
		errors.Is(err, web2pdf.ErrEmptyURL) ||
		errors.Is(err, web2pdf.ErrRegistryParse) ||
		errors.Is(err, web2pdf.ErrCommandNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
