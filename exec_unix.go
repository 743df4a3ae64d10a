//go:build !windows

package web2pdf

import (
	"os"
	"os/exec"
	"syscall"
)

// setProcessGroup puts the child in its own process group so the watchdog
// can signal the renderer and any helpers it spawns in one shot.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// exitStatus derives a shell-style exit code. A process killed by a signal
// reports 128+signal, so a watchdog SIGTERM surfaces as 143, matching what
// wkhtmltopdf deployments log on timeouts.
func exitStatus(ps *os.ProcessState) int {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ps.ExitCode()
}
