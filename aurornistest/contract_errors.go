package aurornistest

import (
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"
	"time"

	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	missingBinary    = "aurornis-definitely-missing-binary"
	timeoutBound     = 200 * time.Millisecond
	killedWithinTime = 5 * time.Second
)

func errorContracts() []TestCase {
	return []TestCase{
		emptyArgvContract(),
		missingExecutableContract(),
		permissionDeniedContract(),
		signalReturnCodeContract(),
		timeoutContract(),
		timeoutEscapedDescendantContract(),
		cancellationContract(),
	}
}

func emptyArgvContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "empty-argv",
		Description: "An empty argv fails with ErrInvalidCommand and no result",
		Run: func(t T, p aurornis.Provider) {
			res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), nil)
			require.ErrorIs(t, err, aurornis.ErrInvalidCommand)
			assert.Nil(t, res)
		},
	}
}

func missingExecutableContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "missing-executable",
		Description: "A nonexistent executable fails with *aurornis.SpawnError wrapping the lookup error",
		Run: func(t T, p aurornis.Provider) {
			res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{missingBinary, "--version"})
			require.Error(t, err)
			assert.Nil(t, res)

			var spawnErr *aurornis.SpawnError
			require.ErrorAs(t, err, &spawnErr)
			assert.Equal(t, missingBinary+" --version", spawnErr.Command)
			require.ErrorIs(t, err, osexec.ErrNotFound)
		},
	}
}

func permissionDeniedContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "permission-denied",
		Description: "A file without execute permission fails with *aurornis.SpawnError",
		Prereq:      unixOnly,
		Run: func(t T, p aurornis.Provider) {
			path := filepath.Join(t.TempDir(), "not-executable")
			require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho unreachable\n"), 0o644))

			res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{path})
			assert.Nil(t, res)

			var spawnErr *aurornis.SpawnError
			require.ErrorAs(t, err, &spawnErr)
		},
	}
}

func signalReturnCodeContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "signal-return-code",
		Description: "A child killed by signal N reports return code -N instead of failing",
		Prereq:      unixOnly,
		Run: func(t T, p aurornis.Provider) {
			res, err := aurornis.NewExecutor(p).RunShell(t.Context(), "kill -9 $$")
			require.NoError(t, err)

			AssertReturnCode(t, -9, res)
		},
	}
}

func timeoutContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "timeout",
		Description: "A child outliving its timeout is killed and the call fails with ErrTimeout",
		Prereq:      unixOnly,
		Run: func(t T, p aurornis.Provider) {
			start := time.Now()

			res, err := aurornis.NewExecutor(p).RunArgs(
				t.Context(),
				[]string{"sleep", "30"},
				aurornis.WithTimeout(timeoutBound),
			)
			assert.Nil(t, res)
			require.ErrorIs(t, err, aurornis.ErrTimeout)
			require.ErrorIs(t, err, context.DeadlineExceeded)

			var timeoutErr *aurornis.TimeoutError
			require.ErrorAs(t, err, &timeoutErr)
			assert.Equal(t, timeoutBound, timeoutErr.Timeout)
			assert.Less(t, time.Since(start), killedWithinTime)
		},
	}
}

func timeoutEscapedDescendantContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "timeout-escaped-descendant",
		Description: "A timeout bounds the call even when a descendant left the process group holding the output pipes",
		Prereq: func(t T, p aurornis.Provider) (bool, string) {
			if ok, reason := unixOnly(t, p); !ok {
				return ok, reason
			}

			if _, err := osexec.LookPath("setsid"); err != nil {
				return false, "requires setsid"
			}

			return true, ""
		},
		Run: func(t T, p aurornis.Provider) {
			start := time.Now()

			res, err := aurornis.NewExecutor(p).RunArgs(
				t.Context(),
				[]string{"sh", "-c", "setsid sleep 10 & sleep 30"},
				aurornis.WithTimeout(timeoutBound),
			)
			assert.Nil(t, res)
			require.ErrorIs(t, err, aurornis.ErrTimeout)
			assert.Less(t, time.Since(start), killedWithinTime)
		},
	}
}

func cancellationContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "cancellation",
		Description: "Cancelling the caller's context kills the child and is not reported as a timeout",
		Prereq:      unixOnly,
		Run: func(t T, p aurornis.Provider) {
			ctx, cancel := context.WithCancel(t.Context())

			go func() {
				time.Sleep(timeoutBound)
				cancel()
			}()

			res, err := aurornis.NewExecutor(p).RunArgs(ctx, []string{"sleep", "30"})
			assert.Nil(t, res)
			require.ErrorIs(t, err, context.Canceled)
			assert.NotErrorIs(t, err, aurornis.ErrTimeout)
		},
	}
}
