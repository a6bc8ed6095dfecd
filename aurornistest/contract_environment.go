package aurornistest

import (
	"maps"
	"os"
	osexec "os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sentinelKey   = "AURORNIS_SENTINEL"
	sentinelValue = "leaked"
)

//nolint:funlen // Contract registration function; length comes from many test cases.
func environmentContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryEnvironment,
			Name:        "isolation",
			Description: "Host variables other than PATH never reach the child",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil))

				assert.NotContains(t, child, sentinelKey)
				assert.Equal(t, []string{"LANG", "PATH"}, slices.Sorted(maps.Keys(child)))
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "real-host-isolation",
			Description: "Without a simulated host, the caller's own variables are not inherited",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunArgs(t.Context(), []string{"env"})
				require.NoError(t, err)
				RequireSuccess(t, res)

				child := parseEnv(res.Stdout())
				for key := range child {
					assert.Contains(t, []string{"LANG", "PATH"}, key)
				}
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "locale-default",
			Description: "LANG is C when no language is requested",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil))

				assert.Equal(t, aurornis.DefaultLanguage, child["LANG"])
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "locale-override",
			Description: "WithLanguage sets LANG",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil, aurornis.WithLanguage("fr_FR.UTF-8")))

				assert.Equal(t, "fr_FR.UTF-8", child["LANG"])
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "no-color",
			Description: "Removing colors sets NO_COLOR=1 in the child",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil, aurornis.WithRemoveColors()))

				assert.Equal(t, "1", child["NO_COLOR"])
				assert.Equal(t, []string{"LANG", "NO_COLOR", "PATH"}, slices.Sorted(maps.Keys(child)))
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "no-color-overridable",
			Description: "An explicit NO_COLOR override wins over the injected one",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil,
					aurornis.WithRemoveColors(),
					aurornis.WithEnvVar("NO_COLOR", "0"),
				))

				assert.Equal(t, "0", child["NO_COLOR"])
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "overrides-added",
			Description: "Caller overrides are visible to the child, including a host variable passed explicitly",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil,
					aurornis.WithEnv(map[string]string{"FOO": "bar", sentinelKey: "explicit"}),
				))

				assert.Equal(t, "bar", child["FOO"])
				assert.Equal(t, "explicit", child[sentinelKey])
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "override-precedence",
			Description: "A PATH override replaces the host PATH in the child",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				child := childEnv(t, p, aurornis.NewCommand(nil, aurornis.WithEnvVar("PATH", "X")))

				assert.Equal(t, "X", child["PATH"])
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "override-path-lookup",
			Description: "The executable is searched in the PATH the child receives",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				dir := t.TempDir()
				script := filepath.Join(dir, "aurornis-path-probe")
				require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho from-override\n"), 0o755))

				res, err := aurornis.NewExecutor(p).RunArgs(
					t.Context(),
					[]string{"aurornis-path-probe"},
					aurornis.WithEnvVar("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH")),
				)
				require.NoError(t, err)

				AssertOutput(t, res, "from-override\n", "")
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "working-directory",
			Description: "WithDir runs the child in the given directory",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				dir, err := filepath.EvalSymlinks(t.TempDir())
				require.NoError(t, err)

				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), "pwd -P", aurornis.WithDir(dir))
				require.NoError(t, err)

				AssertOutput(t, res, dir+"\n", "")
			},
		},
		{
			Category:    CategoryEnvironment,
			Name:        "working-directory-relative-executable",
			Description: "Relative executables and relative PATH entries resolve inside the WithDir directory",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				dir := t.TempDir()
				require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "run.sh"), []byte("#!/bin/sh\necho ran\n"), 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "bin", "tool"), []byte("#!/bin/sh\necho tool\n"), 0o755))

				exec := aurornis.NewExecutor(p)

				res, err := exec.RunArgs(t.Context(), []string{"./run.sh"}, aurornis.WithDir(dir))
				require.NoError(t, err)
				AssertOutput(t, res, "ran\n", "")

				path := "bin" + string(os.PathListSeparator) + os.Getenv("PATH")
				res, err = exec.RunArgs(t.Context(), []string{"tool"}, aurornis.WithDir(dir), aurornis.WithEnvVar("PATH", path))
				require.NoError(t, err)
				AssertOutput(t, res, "tool\n", "")
			},
		},
	}
}

// childEnv runs env through an absolute path, as if the host had the sentinel
// variable set, and returns the environment the child observed.
func childEnv(t T, p aurornis.Provider, cmd *aurornis.Command) map[string]string {
	envPath, err := osexec.LookPath("env")
	require.NoError(t, err)

	host := map[string]string{
		"PATH":      os.Getenv("PATH"),
		sentinelKey: sentinelValue,
	}

	cmd.Argv = []string{envPath}

	exec := aurornis.NewExecutor(p, aurornis.WithHostEnv(aurornis.MapLookup(host)))

	res, err := exec.Run(t.Context(), cmd)
	require.NoError(t, err)
	RequireSuccess(t, res)

	return parseEnv(res.Stdout())
}

func parseEnv(out string) map[string]string {
	env := make(map[string]string)

	for line := range strings.Lines(out) {
		key, value, ok := strings.Cut(strings.TrimRight(line, "\n"), "=")
		if ok {
			env[key] = value
		}
	}

	return env
}
