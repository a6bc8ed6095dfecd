package aurornis

import "time"

// Builder provides a fluent API for constructing Commands.
type Builder struct {
	cmd *Command
}

// Cmd creates a new Builder for a command with the given name/path.
func Cmd(binary string) *Builder {
	return &Builder{
		cmd: &Command{
			Argv: []string{binary},
		},
	}
}

// Arg adds a single argument.
func (b *Builder) Arg(arg string) *Builder {
	b.cmd.Argv = append(b.cmd.Argv, arg)
	return b
}

// Args adds multiple arguments.
func (b *Builder) Args(args ...string) *Builder {
	b.cmd.Argv = append(b.cmd.Argv, args...)
	return b
}

// Env adds an environment override.
func (b *Builder) Env(key, value string) *Builder {
	WithEnvVar(key, value)(b.cmd)
	return b
}

// Dir sets the working directory.
func (b *Builder) Dir(dir string) *Builder {
	b.cmd.Dir = dir
	return b
}

// Language sets LANG for the child.
func (b *Builder) Language(lang string) *Builder {
	b.cmd.Language = lang
	return b
}

// RemoveColors disables and strips colored output.
func (b *Builder) RemoveColors() *Builder {
	b.cmd.RemoveColors = true
	return b
}

// NormalizeCarriageReturn converts "\r\n" to "\n" in the output.
func (b *Builder) NormalizeCarriageReturn() *Builder {
	b.cmd.NormalizeCarriageReturn = true
	return b
}

// Timeout bounds the execution time.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.cmd.Timeout = d
	return b
}

// Build returns the constructed Command.
func (b *Builder) Build() *Command {
	return b.cmd
}
