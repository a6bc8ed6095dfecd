package local

import (
	"context"

	"github.com/ruffel/aurornis"
)

// NewExecutor creates an executor backed by a new local provider.
func NewExecutor(opts ...aurornis.ExecutorOption) *aurornis.Executor {
	return aurornis.NewExecutor(New(), opts...)
}

// Run executes argv locally and returns its Result.
//
//	res, err := local.Run(ctx, []string{"mytool", "--version"}, aurornis.WithRemoveColors())
func Run(ctx context.Context, argv []string, opts ...aurornis.Option) (*aurornis.Result, error) {
	return NewExecutor().RunArgs(ctx, argv, opts...)
}

// RunCommand executes a fully configured command locally.
func RunCommand(ctx context.Context, cmd *aurornis.Command) (*aurornis.Result, error) {
	return NewExecutor().Run(ctx, cmd)
}

// RunShell executes a shell script locally.
func RunShell(ctx context.Context, script string, opts ...aurornis.Option) (*aurornis.Result, error) {
	return NewExecutor().RunShell(ctx, script, opts...)
}

// RunLine splits a command line with shell quoting rules and executes it locally.
func RunLine(ctx context.Context, line string, opts ...aurornis.Option) (*aurornis.Result, error) {
	return NewExecutor().RunLine(ctx, line, opts...)
}
