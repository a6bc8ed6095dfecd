package aurornistest

import (
	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireSuccess stops the test unless res exists and its return code is zero.
// The failure message includes the full result, so stderr is visible in the test log.
func RequireSuccess(t T, res *aurornis.Result) {
	require.NotNil(t, res)
	require.True(t, res.IsSuccessful(), "command failed: %s", res)
}

// AssertReturnCode checks the return code and the matching IsSuccessful answer.
func AssertReturnCode(t T, want int, res *aurornis.Result) bool {
	if !assert.NotNil(t, res) {
		return false
	}

	ok := assert.Equal(t, want, res.ReturnCode(), "unexpected return code: %s", res)

	return assert.Equal(t, want == 0, res.IsSuccessful()) && ok
}

// AssertOutput checks both captured streams at once.
func AssertOutput(t T, res *aurornis.Result, wantStdout, wantStderr string) bool {
	if !assert.NotNil(t, res) {
		return false
	}

	ok := assert.Equal(t, wantStdout, res.Stdout(), "unexpected stdout")

	return assert.Equal(t, wantStderr, res.Stderr(), "unexpected stderr") && ok
}
