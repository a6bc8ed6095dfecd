package aurornis

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCommand indicates that the command has no executable to run.
var ErrInvalidCommand = errors.New("invalid command")

// ErrTimeout indicates that the child did not exit within the requested bound.
var ErrTimeout = errors.New("command timed out")

// SpawnError represents a failure of the operating system to create the child
// (e.g. executable not found, permission denied). No Result exists for it.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("spawn error: %v", e.Err)
	}

	return fmt.Sprintf("spawn error executing %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// TimeoutError represents a child that was killed because its deadline expired.
type TimeoutError struct {
	Command string
	Timeout time.Duration // Zero when the deadline came from the caller's context
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout == 0 {
		return fmt.Sprintf("command %q timed out: %v", e.Command, e.Err)
	}

	return fmt.Sprintf("command %q timed out after %s", e.Command, e.Timeout)
}

// Is makes errors.Is(err, ErrTimeout) hold for any TimeoutError.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
