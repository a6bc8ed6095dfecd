package aurornis

import (
	"maps"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Option defines a functional option for a single command.
type Option func(*Command)

// WithEnv merges env into the command's environment overrides.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		if c.Env == nil {
			c.Env = make(map[string]string, len(env))
		}

		maps.Copy(c.Env, env)
	}
}

// WithEnvVar sets a single environment override.
func WithEnvVar(key, value string) Option {
	return func(c *Command) {
		if c.Env == nil {
			c.Env = make(map[string]string)
		}

		c.Env[key] = value
	}
}

// WithLanguage sets LANG for the child instead of DefaultLanguage.
func WithLanguage(lang string) Option {
	return func(c *Command) {
		c.Language = lang
	}
}

// WithRemoveColors asks the child not to emit colors and strips any it emits anyway.
func WithRemoveColors() Option {
	return func(c *Command) {
		c.RemoveColors = true
	}
}

// WithNormalizeCarriageReturn converts "\r\n" line endings to "\n" in both streams.
func WithNormalizeCarriageReturn() Option {
	return func(c *Command) {
		c.NormalizeCarriageReturn = true
	}
}

// WithDir sets the working directory of the child.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.Dir = dir
	}
}

// WithTimeout kills the child if it runs longer than d.
// The call then fails with a *TimeoutError. Zero disables the timeout and a
// negative d makes the command invalid.
func WithTimeout(d time.Duration) Option {
	return func(c *Command) {
		c.Timeout = d
	}
}

// ExecutorOption defines a functional option for an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the logger used for debug events. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithHostEnv replaces the view of the host environment.
// Defaults to os.LookupEnv.
func WithHostEnv(lookup LookupFunc) ExecutorOption {
	return func(e *Executor) {
		if lookup == nil {
			lookup = os.LookupEnv
		}

		e.hostEnv = lookup
	}
}
