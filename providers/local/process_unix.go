//go:build !windows

package local

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// pathSeparators marks a name as a path rather than a PATH lookup.
const pathSeparators = "/"

// killProcessGroup kills the process group with the given PID.
func killProcessGroup(pid int) error {
	return unix.Kill(-pid, unix.SIGKILL)
}

// setProcessGroup sets the process group for the given command.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// exitCode returns the exit status, or -N for a child terminated by signal N.
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}

	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return -int(status.Signal())
	}

	return state.ExitCode()
}

// exitedOnItsOwn reports whether the child called exit rather than dying to a signal.
func exitedOnItsOwn(state *os.ProcessState) bool {
	return state != nil && state.Exited()
}
