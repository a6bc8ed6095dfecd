package aurornis

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/encoding/unicode"
)

// DecodeOutput converts captured bytes to text.
// Output is read as UTF-8; invalid byte sequences become U+FFFD instead of failing.
func DecodeOutput(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}

	return string(decoded)
}

// StripColors removes ANSI escape sequences (colors, styles, cursor movement) from s.
// Applying it twice is the same as applying it once.
func StripColors(s string) string {
	return ansi.Strip(s)
}

// NormalizeCarriageReturn replaces every "\r\n" with "\n".
func NormalizeCarriageReturn(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// PostProcess applies the post-processing stages requested by cmd to text.
// Colors are stripped before line endings are normalized.
func PostProcess(cmd *Command, text string) string {
	if cmd.RemoveColors {
		text = StripColors(text)
	}

	if cmd.NormalizeCarriageReturn {
		text = NormalizeCarriageReturn(text)
	}

	return text
}
