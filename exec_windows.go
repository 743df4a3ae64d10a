//go:build windows

package web2pdf

import (
	"os"
	"os/exec"
)

// setProcessGroup is a no-op on Windows; process.KillGroup uses a tree
// kill instead of process groups.
func setProcessGroup(cmd *exec.Cmd) {}

// exitStatus returns the process exit code as reported by the OS.
func exitStatus(ps *os.ProcessState) int {
	return ps.ExitCode()
}
