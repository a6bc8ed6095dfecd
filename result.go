package aurornis

import (
	"fmt"
	"time"
)

// Result is the immutable outcome of a completed command.
// Construct it with NewResult; the zero value describes an empty successful command.
type Result struct {
	command       string
	returnCode    int
	stdout        string
	stderr        string
	executionTime time.Duration
}

// NewResult creates a Result. command is the display form of the invoked argv.
func NewResult(command string, returnCode int, stdout, stderr string, executionTime time.Duration) *Result {
	return &Result{
		command:       command,
		returnCode:    returnCode,
		stdout:        stdout,
		stderr:        stderr,
		executionTime: executionTime,
	}
}

// Command returns the invoked argv joined by single spaces.
func (r *Result) Command() string {
	return r.command
}

// ReturnCode returns the exit status of the child.
// A child killed by signal N on UNIX-likes reports -N.
func (r *Result) ReturnCode() int {
	return r.returnCode
}

// Stdout returns the captured standard output after post-processing.
func (r *Result) Stdout() string {
	return r.stdout
}

// Stderr returns the captured standard error after post-processing.
func (r *Result) Stderr() string {
	return r.stderr
}

// ExecutionTime returns the wall-clock time between spawn and exit,
// measured on the monotonic clock. Use Seconds() for a float number of seconds.
func (r *Result) ExecutionTime() time.Duration {
	return r.executionTime
}

// ExecTimeMicroseconds returns the execution time truncated to microseconds.
func (r *Result) ExecTimeMicroseconds() int64 {
	return r.executionTime.Microseconds()
}

// ExecTimeMilliseconds returns the execution time truncated to milliseconds.
func (r *Result) ExecTimeMilliseconds() int64 {
	return r.executionTime.Milliseconds()
}

// IsSuccessful returns true if and only if the return code is zero.
//
// It does not check that the command actually did its job; that is what your
// own assertions on Stdout and Stderr are for.
func (r *Result) IsSuccessful() bool {
	return r.returnCode == 0
}

// Failed returns true if the return code is non-zero.
func (r *Result) Failed() bool {
	return !r.IsSuccessful()
}

// Equal reports whether both results have the same command, return code, stdout and stderr.
// ExecutionTime is ignored: it differs between any two runs of the same command.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.command == other.command &&
		r.returnCode == other.returnCode &&
		r.stdout == other.stdout &&
		r.stderr == other.stderr
}

// String renders the result as <CommandResult ...>. Fields are Go-quoted so a
// multi-line stream stays on one line and embedded quotes cannot be mistaken
// for delimiters.
func (r *Result) String() string {
	return fmt.Sprintf(
		"<CommandResult command=%q return_code=%d stdout=%q stderr=%q>",
		r.command, r.returnCode, r.stdout, r.stderr,
	)
}
