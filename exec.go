package web2pdf

import (
	"context"
	"errors"
	"os/exec"
	"time"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/webarc/go-web2pdf/internal/process"
)

// CommandRunner executes one composed renderer command to completion or
// watchdog termination. Implementations must never treat a non-zero exit
// code as an error by itself; whether the conversion succeeded is decided
// afterwards by inspecting the output file.
type CommandRunner interface {
	Run(ctx context.Context, commandLine string, timeout time.Duration) RunResult
}

// RunResult captures the observable outcome of one renderer invocation.
// A LaunchErr means the process never started; validation still runs on
// whatever output exists before the error is surfaced.
type RunResult struct {
	ExitCode  int
	TimedOut  bool
	LaunchErr error
}

// Compile-time interface check.
var _ CommandRunner = watchdogRunner{}

// killGrace is how long the watchdog waits after SIGTERM before escalating
// to SIGKILL. wkhtmltopdf usually honors SIGTERM, but it is known to wedge
// on broken pages.
const killGrace = 5 * time.Second

var errEmptyCommandLine = errors.New("empty command line")

// watchdogRunner runs the command in its own process group, supervised by
// a per-invocation timer that terminates the group on expiry.
type watchdogRunner struct{}

func (watchdogRunner) Run(ctx context.Context, commandLine string, timeout time.Duration) RunResult {
	argv, err := shellwords.Parse(commandLine)
	if err != nil {
		return RunResult{ExitCode: -1, LaunchErr: err}
	}
	if len(argv) == 0 {
		return RunResult{ExitCode: -1, LaunchErr: errEmptyCommandLine}
	}
	if err := ctx.Err(); err != nil {
		return RunResult{ExitCode: -1, LaunchErr: err}
	}

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 -- command line is built from the registry template
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		// Deferred: the caller decides after validation whether this
		// matters. A missing binary with a pre-existing valid output
		// is still a success.
		return RunResult{ExitCode: -1, LaunchErr: err}
	}

	pid := cmd.Process.Pid
	termTimer := time.AfterFunc(timeout, func() { process.TerminateGroup(pid) })
	killTimer := time.AfterFunc(timeout+killGrace, func() { process.KillGroup(pid) })

	waitErr := cmd.Wait()
	timedOut := !termTimer.Stop()
	killTimer.Stop()

	// Wait returns an *exec.ExitError for any non-zero exit or signal
	// death. That is expected here, not a launch failure.
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return RunResult{ExitCode: -1, TimedOut: timedOut, LaunchErr: waitErr}
	}

	return RunResult{
		ExitCode: exitStatus(cmd.ProcessState),
		TimedOut: timedOut,
	}
}
