package web2pdf

import (
	"context"
	"runtime"
	"testing"
	"time"
)

// These tests run real child processes and rely on standard POSIX tools;
// the Windows shape of signal delivery is covered by kill_windows.go only.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX shell tools")
	}
}

func TestWatchdogRunner_Success(t *testing.T) {
	skipOnWindows(t)

	res := watchdogRunner{}.Run(context.Background(), "true", 5*time.Second)
	if res.LaunchErr != nil {
		t.Fatalf("LaunchErr = %v, want nil", res.LaunchErr)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.TimedOut {
		t.Error("TimedOut = true, want false")
	}
}

func TestWatchdogRunner_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	res := watchdogRunner{}.Run(context.Background(), `sh -c "exit 7"`, 5*time.Second)
	if res.LaunchErr != nil {
		t.Fatalf("LaunchErr = %v, want nil for a plain non-zero exit", res.LaunchErr)
	}
	if res.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", res.ExitCode)
	}
}

func TestWatchdogRunner_TimeoutKillsProcess(t *testing.T) {
	skipOnWindows(t)

	start := time.Now()
	res := watchdogRunner{}.Run(context.Background(), "sleep 30", 200*time.Millisecond)
	elapsed := time.Since(start)

	if res.LaunchErr != nil {
		t.Fatalf("LaunchErr = %v, want nil", res.LaunchErr)
	}
	if !res.TimedOut {
		t.Error("TimedOut = false, want true")
	}
	// SIGTERM death surfaces as the POSIX 128+15 convention.
	if res.ExitCode != 143 {
		t.Errorf("ExitCode = %d, want 143", res.ExitCode)
	}
	if elapsed > 5*time.Second {
		t.Errorf("run took %v, watchdog should have fired at ~200ms", elapsed)
	}
}

func TestWatchdogRunner_LaunchFailure(t *testing.T) {
	res := watchdogRunner{}.Run(context.Background(),
		"definitely-not-a-real-binary-xyz --flag", time.Second)
	if res.LaunchErr == nil {
		t.Fatal("LaunchErr = nil, want an error for a missing binary")
	}
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", res.ExitCode)
	}
}

func TestWatchdogRunner_MalformedCommandLine(t *testing.T) {
	res := watchdogRunner{}.Run(context.Background(), `convert "unclosed`, time.Second)
	if res.LaunchErr == nil {
		t.Error("LaunchErr = nil, want a parse error for an unclosed quote")
	}
}

func TestWatchdogRunner_EmptyCommandLine(t *testing.T) {
	res := watchdogRunner{}.Run(context.Background(), "", time.Second)
	if res.LaunchErr == nil {
		t.Error("LaunchErr = nil, want an error for an empty command line")
	}
}

func TestWatchdogRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := watchdogRunner{}.Run(ctx, "true", time.Second)
	if res.LaunchErr == nil {
		t.Error("LaunchErr = nil, want the context error")
	}
}

func TestWatchdogRunner_QuotedArguments(t *testing.T) {
	skipOnWindows(t)

	// Quoted paths (cookie jars, output files) must survive argv parsing.
	res := watchdogRunner{}.Run(context.Background(),
		`sh -c "test a = a"`, 5*time.Second)
	if res.LaunchErr != nil {
		t.Fatalf("LaunchErr = %v, want nil", res.LaunchErr)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
}
