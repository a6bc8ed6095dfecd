package local

import (
	"time"

	"github.com/ruffel/aurornis"
)

// Config holds configuration for the local provider.
type Config struct {
	targetOS  aurornis.TargetOS
	waitDelay time.Duration
}

// Option defines a functional option for the local provider.
type Option func(*Config)

// WithTargetOS overrides the detected operating system.
// It only changes which passthrough variables and shell are used, not how processes are spawned.
func WithTargetOS(os aurornis.TargetOS) Option {
	return func(c *Config) {
		c.targetOS = os
	}
}

// DefaultWaitDelay bounds output draining for runs whose context can end,
// when no WaitDelay was configured.
const DefaultWaitDelay = 2 * time.Second

// WithWaitDelay bounds how long output is still read after the child exits or is killed.
// Zero, the default, reads until every holder of the output pipes has closed them,
// except that a cancellable context falls back to DefaultWaitDelay.
func WithWaitDelay(d time.Duration) Option {
	return func(c *Config) {
		c.waitDelay = d
	}
}

// API compatibility check.
var _ aurornis.Provider = (*Provider)(nil)
