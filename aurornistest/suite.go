package aurornistest

import (
	"context"
	"fmt"
	"testing"

	"github.com/ruffel/aurornis"
)

// Standard categories for grouping tests.
const (
	CategoryCore        = "core"
	CategoryEnvironment = "environment"
	CategoryStreams     = "streams"
	CategoryErrors      = "errors"
)

// T is the minimal interface required for testify/assert and require.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Skipf(format string, args ...any)
	Context() context.Context
	TempDir() string
	Name() string
}

// TestCase defines a single behavioral contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string
	Prereq      func(t T, p aurornis.Provider) (ok bool, reason string)
	Run         func(t T, p aurornis.Provider)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Verify is the standard Go test entry point for provider authors.
func Verify(t *testing.T, p aurornis.Provider) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			t.Parallel()

			if tc.Prereq != nil {
				ok, reason := tc.Prereq(t, p)
				if !ok {
					t.Skipf("prereq unmet: %s", reason)
				}
			}

			tc.Run(t, p)
		})
	}
}

// unixOnly is a Prereq for contracts relying on sh, env and POSIX signals.
func unixOnly(_ T, p aurornis.Provider) (bool, string) {
	if p.TargetOS() == aurornis.OSWindows {
		return false, "requires a POSIX shell"
	}

	return true, ""
}
