package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ruffel/aurornis"
)

// Provider implements aurornis.Provider for the local operating system.
// It keeps no state between calls and is safe for concurrent use.
type Provider struct {
	targetOS  aurornis.TargetOS
	waitDelay time.Duration
}

// New creates a new local provider.
func New(opts ...Option) *Provider {
	cfg := Config{
		targetOS: aurornis.DetectLocalOS(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Provider{
		targetOS:  cfg.targetOS,
		waitDelay: cfg.waitDelay,
	}
}

// TargetOS returns the operating system of the host machine.
func (p *Provider) TargetOS() aurornis.TargetOS {
	return p.targetOS
}

// Run spawns the invocation and blocks until the child exits.
func (p *Provider) Run(ctx context.Context, inv *aurornis.Invocation) (*aurornis.Capture, error) {
	if inv == nil || len(inv.Argv) == 0 {
		return nil, fmt.Errorf("%w: argv cannot be empty", aurornis.ErrInvalidCommand)
	}

	display := strings.Join(inv.Argv, " ")

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cannot start %q: %w", display, err)
	}

	path, err := lookPath(inv.Argv[0], inv.Dir, inv.Env)
	if err != nil {
		return nil, &aurornis.SpawnError{Command: display, Err: err}
	}

	execCmd := exec.CommandContext(ctx, path, inv.Argv[1:]...)
	execCmd.Args = slices.Clone(inv.Argv)
	execCmd.Env = aurornis.EnvList(inv.Env)
	execCmd.Dir = inv.Dir
	execCmd.WaitDelay = p.waitDelay

	// Descendants that left the process group can hold the pipes open long after
	// the kill, so a context that can end always gets a drain bound.
	if execCmd.WaitDelay == 0 && ctx.Done() != nil {
		execCmd.WaitDelay = DefaultWaitDelay
	}

	// Stdin stays nil so the child reads from the null device.
	var stdout, stderr bytes.Buffer

	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	// Create a new Process Group so a timeout kills the children it started too.
	setProcessGroup(execCmd)

	execCmd.Cancel = func() error {
		return killProcessGroup(execCmd.Process.Pid)
	}

	startTime := time.Now()

	if err := execCmd.Start(); err != nil {
		return nil, &aurornis.SpawnError{Command: display, Err: err}
	}

	err = execCmd.Wait()
	duration := time.Since(startTime)

	if err != nil {
		if ctxErr := interrupted(ctx, execCmd.ProcessState); ctxErr != nil {
			return nil, fmt.Errorf("child of %q killed: %w", display, ctxErr)
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) && !errors.Is(err, exec.ErrWaitDelay) {
			return nil, fmt.Errorf("waiting for %q: %w", display, err)
		}
	}

	return &aurornis.Capture{
		ExitCode: exitCode(execCmd.ProcessState),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: duration,
	}, nil
}

// interrupted returns the context's error when the context ended the child.
// A child that exited on its own as the deadline passed still counts as completed.
func interrupted(ctx context.Context, state *os.ProcessState) error {
	if exitedOnItsOwn(state) {
		return nil
	}

	return ctx.Err()
}

// lookPath resolves file the way the child would see it: relative names against
// workDir, bare names against the child's PATH when it has one, so that a PATH
// override also changes which executable runs. Otherwise the host's PATH is used.
func lookPath(file, workDir string, env map[string]string) (string, error) {
	if strings.ContainsAny(file, pathSeparators) {
		path, err := inDir(workDir, file)
		if err != nil {
			return "", err
		}

		return exec.LookPath(path)
	}

	dirs, ok := env["PATH"]
	if !ok {
		return exec.LookPath(file)
	}

	for _, dir := range filepath.SplitList(dirs) {
		if dir == "" {
			dir = "."
		}

		base, err := inDir(workDir, dir)
		if err != nil {
			continue
		}

		// Keep the separator: a cleaned "./name" would be searched in the host's PATH.
		if path, err := exec.LookPath(base + string(filepath.Separator) + file); err == nil {
			return path, nil
		}
	}

	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// inDir makes a relative path absolute against workDir. The child only changes
// into workDir after the executable has been resolved here.
func inDir(workDir, path string) (string, error) {
	if workDir == "" || filepath.IsAbs(path) {
		return path, nil
	}

	return filepath.Abs(filepath.Join(workDir, path))
}
