// Package aurornis runs command-line programs for automated tests and returns
// their outcome as an immutable Result.
//
// # Reproducibility
//
// The child never inherits the caller's environment. It only sees PATH (or
// SystemRoot on Windows), LANG (defaulting to "C"), NO_COLOR when colors are
// removed, and the overrides passed with WithEnv. Two machines with different
// shells, locales or color settings therefore observe the same output.
//
// # Providers
//
// An Executor owns the pipeline (validation, environment, decoding, color
// stripping, line-ending normalization). Spawning is delegated to a Provider:
// providers/local for the host OS, providers/mock for unit tests.
//
// # Errors
//
// A non-zero exit is a successful run; check Result.IsSuccessful. Errors are
// reserved for runs that produced no Result: ErrInvalidCommand, *SpawnError
// and *TimeoutError.
package aurornis

import (
	"context"
	"time"
)

// Invocation is a fully resolved child process launch.
type Invocation struct {
	Argv []string          // Executable followed by its arguments, as given by the caller
	Env  map[string]string // Complete environment of the child
	Dir  string            // Working directory, empty for the caller's
}

// Capture is the raw outcome of an Invocation, before decoding.
type Capture struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration // Spawn-to-exit wall-clock time
}

// Provider abstracts the creation of child processes.
type Provider interface {
	// Run spawns the invocation with an empty standard input and blocks until it exits.
	//
	// A non-zero exit is not an error. Failure to create the process must be returned as
	// a *SpawnError. When ctx ends before the child exits, the child is killed and an
	// error wrapping ctx.Err() is returned.
	Run(ctx context.Context, inv *Invocation) (*Capture, error)

	// TargetOS returns the operating system the children run on.
	TargetOS() TargetOS
}
