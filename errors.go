package web2pdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrEmptyURL        = errors.New("url cannot be empty")
	ErrToolUnavailable = errors.New("renderer command is not available")
	ErrNoValidPDF      = errors.New("no valid PDF generated")

	// Registry errors.
	ErrCommandNotFound = errors.New("command not declared in registry")
	ErrRegistryParse   = errors.New("failed to parse command registry")
)

// ConversionError reports a conversion whose output failed validation.
// The exit code is informational only: it never decided the outcome, the
// output inspection did. When the renderer was killed by the watchdog the
// exit code is the POSIX SIGTERM value (143) and TimedOut is set.
type ConversionError struct {
	CommandLine   string
	ExitCode      int
	TimedOut      bool
	TimeoutMillis int
	LaunchErr     error // non-nil when the process could not be started
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("failed to execute the command line [%s]. No valid PDF generated. exit code: %d",
		e.CommandLine, e.ExitCode)
	if e.TimedOut {
		msg += fmt.Sprintf(" (timeout reached, the timeout was %dms)", e.TimeoutMillis)
	}
	if e.LaunchErr != nil {
		msg += ": " + e.LaunchErr.Error()
	}
	return msg
}

// Unwrap exposes ErrNoValidPDF for errors.Is, and the launch error as the
// underlying cause when the process never started.
func (e *ConversionError) Unwrap() []error {
	if e.LaunchErr != nil {
		return []error{ErrNoValidPDF, e.LaunchErr}
	}
	return []error{ErrNoValidPDF}
}
