package mock

import (
	"context"
	"slices"

	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/mock"
)

// Provider implements a mock aurornis.Provider using testify/mock.
type Provider struct {
	mock.Mock
}

var _ aurornis.Provider = (*Provider)(nil)

// New creates a new mock provider.
func New() *Provider {
	return &Provider{}
}

// Run mocks spawning a child and waiting for it.
func (m *Provider) Run(ctx context.Context, inv *aurornis.Invocation) (*aurornis.Capture, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*aurornis.Capture), args.Error(1)
}

// TargetOS mocks returning the target operating system.
func (m *Provider) TargetOS() aurornis.TargetOS {
	args := m.Called()

	return args.Get(0).(aurornis.TargetOS)
}

// OnArgv registers an expectation for a Run whose argv equals argv, whatever its
// environment, and makes it return the given exit code and output.
//
//	m.OnArgv("git", "status").Return(Output(0, "On branch main\n", ""), nil)
func (m *Provider) OnArgv(argv ...string) *mock.Call {
	return m.On("Run", mock.Anything, MatchArgv(argv...))
}

// MatchArgv returns an argument matcher for invocations with exactly argv.
func MatchArgv(argv ...string) any {
	return mock.MatchedBy(func(inv *aurornis.Invocation) bool {
		return inv != nil && slices.Equal(inv.Argv, argv)
	})
}

// Output is a helper building the Capture returned by a mocked Run.
func Output(exitCode int, stdout, stderr string) *aurornis.Capture {
	return &aurornis.Capture{
		ExitCode: exitCode,
		Stdout:   []byte(stdout),
		Stderr:   []byte(stderr),
	}
}
