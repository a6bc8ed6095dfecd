package aurornistest

import (
	"unicode/utf8"

	"github.com/ruffel/aurornis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	coloredScript = `printf '\033[1;31mred\033[0m\n'; printf '\033[32mgreen\033[0m\n' >&2`
	crlfScript    = `printf 'a\r\nb\r\n'; printf 'c\r\nd' >&2`
)

func streamContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryStreams,
			Name:        "colors-kept-by-default",
			Description: "Escape sequences reach the result untouched unless removal is requested",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), coloredScript)
				require.NoError(t, err)

				AssertOutput(t, res, "\x1b[1;31mred\x1b[0m\n", "\x1b[32mgreen\x1b[0m\n")
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "remove-colors",
			Description: "Escape sequences are stripped from both streams",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), coloredScript, aurornis.WithRemoveColors())
				require.NoError(t, err)

				AssertOutput(t, res, "red\n", "green\n")
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "crlf-kept-by-default",
			Description: "Line endings are untouched unless normalization is requested",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), crlfScript)
				require.NoError(t, err)

				AssertOutput(t, res, "a\r\nb\r\n", "c\r\nd")
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "normalize-carriage-return",
			Description: "CRLF becomes LF in both streams",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), crlfScript, aurornis.WithNormalizeCarriageReturn())
				require.NoError(t, err)

				AssertOutput(t, res, "a\nb\n", "c\nd")
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "strip-then-normalize",
			Description: "Colors are stripped before line endings are normalized",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(
					t.Context(),
					`printf 'a\r\033[0m\nb\r\n'`,
					aurornis.WithRemoveColors(),
					aurornis.WithNormalizeCarriageReturn(),
				)
				require.NoError(t, err)

				AssertOutput(t, res, "a\nb\n", "")
			},
		},
		{
			Category:    CategoryStreams,
			Name:        "invalid-utf8",
			Description: "Bytes that are not UTF-8 are replaced rather than failing the run",
			Prereq:      unixOnly,
			Run: func(t T, p aurornis.Provider) {
				res, err := aurornis.NewExecutor(p).RunShell(t.Context(), `printf 'ok \377\n'`)
				require.NoError(t, err)

				assert.True(t, utf8.ValidString(res.Stdout()))
				assert.Contains(t, res.Stdout(), "ok \uFFFD")
			},
		},
	}
}
