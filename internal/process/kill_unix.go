//go:build !windows

// Package process delivers termination signals to an external renderer
// and everything it spawned.
package process

import "syscall"

// TerminateGroup asks a process and its children to exit by sending
// SIGTERM to the process group (negative PID). A process that dies from
// this reports exit status 143, which callers use as the timeout marker.
func TerminateGroup(pid int) {
	// Best-effort: the group may already be gone.
	_ = syscall.Kill(-pid, syscall.SIGTERM)
}

// KillGroup forcibly kills a process and all its children by sending
// SIGKILL to the process group. Used as the escalation when SIGTERM is
// ignored.
func KillGroup(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
