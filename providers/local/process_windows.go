//go:build windows

package local

import (
	"os"
	"os/exec"
	"strconv"
)

// pathSeparators marks a name as a path rather than a PATH lookup.
const pathSeparators = `/\:`

// killProcessGroup kills the process tree rooted at the given PID.
//
// TODO(windows): Use Job Objects so children that detach from the tree are killed too.
func killProcessGroup(pid int) error {
	return exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(pid)).Run()
}

// setProcessGroup sets the process group for the given command.
func setProcessGroup(_ *exec.Cmd) {
	// TODO(windows): Nothing to do until we use Job Objects.
}

// exitCode returns the exit status of the child.
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}

	return state.ExitCode()
}

// exitedOnItsOwn is always false: a process ended by taskkill also reports Exited,
// so a done context wins.
func exitedOnItsOwn(_ *os.ProcessState) bool {
	return false
}
