//go:build windows

// Package process delivers termination signals to an external renderer
// and everything it spawned.
package process

import (
	"os/exec"
	"strconv"
)

// TerminateGroup terminates a process tree. Windows has no SIGTERM
// equivalent for console children, so this is the same tree kill as
// KillGroup.
func TerminateGroup(pid int) {
	KillGroup(pid)
}

// KillGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillGroup(pid int) {
	// Best-effort: the tree may already be gone.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
