package aurornistest

import (
	"strconv"
	"strings"
	"time"

	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coreContracts() []TestCase {
	contracts := []TestCase{
		{
			Category:    CategoryCore,
			Name:        "simple-echo",
			Description: "A command printing ok succeeds with ok on stdout and nothing on stderr",
			Run: func(t T, p aurornis.Provider) {
				exec := aurornis.NewExecutor(p)
				res, err := exec.Run(t.Context(), p.TargetOS().ShellCommand("echo ok"))
				require.NoError(t, err)
				RequireSuccess(t, res)

				assert.Equal(t, "ok", strings.TrimSpace(res.Stdout()))
				assert.Empty(t, res.Stderr())
			},
		},
		{
			Category:    CategoryCore,
			Name:        "stdout-fidelity",
			Description: "Stdout is captured byte for byte, including the trailing newline",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{"echo", "hello"})
				require.NoError(t, err)

				AssertOutput(t, res, "hello\n", "")
			},
		},
		{
			Category:    CategoryCore,
			Name:        "stderr-capture",
			Description: "Stderr is captured separately from stdout",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), "echo out; echo oops >&2")
				require.NoError(t, err)

				AssertOutput(t, res, "out\n", "oops\n")
			},
		},
		{
			Category:    CategoryCore,
			Name:        "command-display",
			Description: "Result.Command is argv joined by single spaces",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{"echo", "a b", "c"})
				require.NoError(t, err)

				assert.Equal(t, "echo a b c", res.Command())
				assert.Equal(t, "a b c\n", res.Stdout())
			},
		},
		{
			Category:    CategoryCore,
			Name:        "stdin-empty",
			Description: "The child reads an empty standard input instead of the caller's",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{"cat"}, aurornis.WithTimeout(10*time.Second))
				require.NoError(t, err)

				AssertReturnCode(t, 0, res)
				assert.Empty(t, res.Stdout())
			},
		},
		{
			Category:    CategoryCore,
			Name:        "execution-time",
			Description: "ExecutionTime covers the lifetime of the child",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{"sleep", "0.2"})
				require.NoError(t, err)

				assert.GreaterOrEqual(t, res.ExecutionTime(), 200*time.Millisecond)
				assert.GreaterOrEqual(t, res.ExecTimeMilliseconds(), int64(200))
			},
		},
	}

	for _, code := range []int{0, 1, 3, 42} {
		contracts = append(contracts, exitCodeContract(code))
	}

	return contracts
}

func exitCodeContract(code int) TestCase {
	return TestCase{
		Category:    CategoryCore,
		Name:        "exit-code-" + strconv.Itoa(code),
		Description: "The return code is the child's exit status and a non-zero exit is not an error",
		Run: func(t T, p aurornis.Provider) {
			res, err := aurornis.NewExecutor(p).RunShell(t.Context(), "exit "+strconv.Itoa(code))
			require.NoError(t, err)

			AssertReturnCode(t, code, res)
		},
	}
}
