package aurornis

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/rs/zerolog"
)

// Executor runs commands through a Provider and normalizes their output into Results.
// It holds no per-call state and is safe for concurrent use.
type Executor struct {
	provider Provider
	hostEnv  LookupFunc
	logger   zerolog.Logger
}

// NewExecutor creates a new Executor with the given provider.
func NewExecutor(provider Provider, opts ...ExecutorOption) *Executor {
	e := &Executor{
		provider: provider,
		hostEnv:  os.LookupEnv,
		logger:   zerolog.Nop(),
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

// Run executes cmd and waits for it to exit.
//
// It returns a Result for every child that ran, whatever its exit code. It returns an
// error, and no Result, when cmd is invalid, the child could not be spawned or it was
// killed by a timeout or cancellation.
func (e *Executor) Run(ctx context.Context, cmd *Command) (*Result, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	env := BuildEnvironment(e.hostEnv, e.provider.TargetOS(), cmd)

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	log := e.logger.With().Str("command", cmd.String()).Logger()
	log.Debug().
		Str("dir", cmd.Dir).
		Strs("env", slices.Sorted(maps.Keys(env))).
		Msg("spawning command")

	capture, err := e.provider.Run(ctx, &Invocation{
		Argv: slices.Clone(cmd.Argv),
		Env:  env,
		Dir:  cmd.Dir,
	})
	if err != nil {
		err = e.classify(cmd, err)
		log.Debug().Err(err).Msg("command did not complete")

		return nil, err
	}

	log.Debug().
		Int("return_code", capture.ExitCode).
		Dur("duration", capture.Duration).
		Msg("command finished")

	return NewResult(
		cmd.String(),
		capture.ExitCode,
		PostProcess(cmd, DecodeOutput(capture.Stdout)),
		PostProcess(cmd, DecodeOutput(capture.Stderr)),
		capture.Duration,
	), nil
}

// RunArgs builds a Command from argv and opts and runs it.
func (e *Executor) RunArgs(ctx context.Context, argv []string, opts ...Option) (*Result, error) {
	return e.Run(ctx, NewCommand(argv, opts...))
}

// RunShell executes a script using the target OS's default shell.
func (e *Executor) RunShell(ctx context.Context, script string, opts ...Option) (*Result, error) {
	return e.Run(ctx, e.provider.TargetOS().ShellCommand(script, opts...))
}

// RunLine splits line with shell quoting rules and runs the result without a shell.
func (e *Executor) RunLine(ctx context.Context, line string, opts ...Option) (*Result, error) {
	cmd, err := ParseCommand(line, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run(ctx, cmd)
}

// TargetOS returns the operating system of the underlying provider.
func (e *Executor) TargetOS() TargetOS {
	return e.provider.TargetOS()
}

// classify turns deadline expiry into a *TimeoutError and leaves other errors untouched.
func (e *Executor) classify(cmd *Command, err error) error {
	var spawnErr *SpawnError
	if errors.As(err, &spawnErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{
			Command: cmd.String(),
			Timeout: cmd.Timeout,
			Err:     err,
		}
	}

	return fmt.Errorf("command %q: %w", cmd.String(), err)
}
