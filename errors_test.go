package aurornis

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnError(t *testing.T) {
	t.Parallel()

	t.Run("with command", func(t *testing.T) {
		t.Parallel()

		e := &SpawnError{Command: "ls -la", Err: fs.ErrPermission}
		assert.Equal(t, `spawn error executing "ls -la": permission denied`, e.Error())
		require.ErrorIs(t, e, fs.ErrPermission)
	})

	t.Run("without command", func(t *testing.T) {
		t.Parallel()

		e := &SpawnError{Err: errors.New("boom")}

		assert.NotPanics(t, func() {
			assert.Equal(t, "spawn error: boom", e.Error())
		})
	})
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()

		var err error = &TimeoutError{Command: "sleep 10", Timeout: time.Second, Err: context.DeadlineExceeded}

		assert.Equal(t, `command "sleep 10" timed out after 1s`, err.Error())
		require.ErrorIs(t, err, ErrTimeout)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, ErrInvalidCommand)
	})

	t.Run("deadline from caller", func(t *testing.T) {
		t.Parallel()

		err := &TimeoutError{Command: "sleep 10", Err: context.DeadlineExceeded}
		assert.Equal(t, `command "sleep 10" timed out: context deadline exceeded`, err.Error())
	})
}
