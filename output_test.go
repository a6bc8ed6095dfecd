package aurornis

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStripColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello\nworld\n", "hello\nworld\n"},
		{"empty", "", ""},
		{"foreground color", "\x1b[31mred\x1b[0m", "red"},
		{"bold and color", "\x1b[1;32mok\x1b[0m done", "ok done"},
		{"256 colors", "\x1b[38;5;208morange\x1b[39m", "orange"},
		{"cursor movement", "\x1b[2Kprogress\x1b[1A", "progress"},
		{"keeps control characters", "a\r\n\tb\x1b[0m\r\n", "a\r\n\tb\r\n"},
		{"keeps unicode", "\x1b[33mcafé ☕\x1b[0m", "café ☕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := StripColors(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripColors(got), "stripping must be idempotent")
		})
	}
}

func TestNormalizeCarriageReturn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"trailing crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lf only", "a\nb\n", "a\nb\n"},
		{"lone cr kept", "a\rb\n", "a\rb\n"},
		{"cr cr lf", "a\r\r\n", "a\r\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeCarriageReturn(tt.in))
		})
	}
}

func TestPostProcess(t *testing.T) {
	t.Parallel()

	const raw = "\x1b[31ma\r\x1b[0m\nb\r\n"

	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{"nothing requested", &Command{}, raw},
		{"strip only", &Command{RemoveColors: true}, "a\r\nb\r\n"},
		{"normalize only", &Command{NormalizeCarriageReturn: true}, "\x1b[31ma\r\x1b[0m\nb\n"},
		{"strip then normalize", &Command{RemoveColors: true, NormalizeCarriageReturn: true}, "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PostProcess(tt.cmd, raw))
		})
	}
}

func TestDecodeOutput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DecodeOutput(nil))
	assert.Equal(t, "hello ☕\n", DecodeOutput([]byte("hello ☕\n")))

	got := DecodeOutput([]byte{'o', 'k', ' ', 0xff, 0xfe, '\n'})
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "\uFFFD")
	assert.Equal(t, "ok ", got[:3])
}
