package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMockProvider(t *testing.T) {
	t.Parallel()

	p := New()
	ctx := context.Background()

	expected := Output(0, "hello\n", "")
	p.On("Run", ctx, mock.AnythingOfType("*aurornis.Invocation")).Return(expected, nil)
	p.On("TargetOS").Return(aurornis.OSLinux)

	capture, err := p.Run(ctx, &aurornis.Invocation{Argv: []string{"echo", "hello"}})
	require.NoError(t, err)
	assert.Equal(t, expected, capture)
	assert.Equal(t, aurornis.OSLinux, p.TargetOS())

	p.AssertExpectations(t)
}

func TestMockProvider_OnArgv(t *testing.T) {
	t.Parallel()

	p := New()
	spawnErr := &aurornis.SpawnError{Command: "missing", Err: errors.New("not found")}

	p.OnArgv("git", "status").Return(Output(1, "", "fatal: not a git repository\n"), nil)
	p.OnArgv("missing").Return(nil, spawnErr)

	capture, err := p.Run(context.Background(), &aurornis.Invocation{
		Argv: []string{"git", "status"},
		Env:  map[string]string{"LANG": "C"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, capture.ExitCode)
	assert.Equal(t, "fatal: not a git repository\n", string(capture.Stderr))

	capture, err = p.Run(context.Background(), &aurornis.Invocation{Argv: []string{"missing"}})
	require.ErrorIs(t, err, spawnErr)
	assert.Nil(t, capture)

	p.AssertExpectations(t)
}
