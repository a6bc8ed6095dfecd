package aurornis

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/shlex"
)

// DefaultLanguage is the value of LANG seen by the child when no language is requested.
const DefaultLanguage = "C"

// Command configures a single command invocation.
type Command struct {
	Argv []string          // Executable followed by its arguments
	Env  map[string]string // Overrides applied on top of the sanitized environment
	Dir  string            // Working directory for execution

	// Language sets LANG for the child. Empty means DefaultLanguage.
	Language string

	// RemoveColors sets NO_COLOR=1 and strips ANSI escape sequences from the output.
	RemoveColors bool

	// NormalizeCarriageReturn replaces "\r\n" with "\n" in the output.
	NormalizeCarriageReturn bool

	// Timeout kills the child once elapsed. Zero waits for the child to exit on its own.
	Timeout time.Duration
}

// Validate checks that the command is well-formed.
// Returns an error wrapping ErrInvalidCommand if the command is nil, has no executable
// or has a negative Timeout.
func (c *Command) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: command cannot be nil", ErrInvalidCommand)
	}

	if len(c.Argv) == 0 {
		return fmt.Errorf("%w: argv cannot be empty", ErrInvalidCommand)
	}

	if strings.TrimSpace(c.Argv[0]) == "" {
		return fmt.Errorf("%w: executable cannot be empty", ErrInvalidCommand)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidCommand, c.Timeout)
	}

	return nil
}

// NewCommand creates a new Command for the given argv and applies opts.
func NewCommand(argv []string, opts ...Option) *Command {
	cmd := &Command{Argv: argv}

	for _, o := range opts {
		o(cmd)
	}

	return cmd
}

// String returns argv joined by single spaces.
func (c *Command) String() string {
	return strings.Join(c.Argv, " ")
}

// EffectiveLanguage returns the LANG value the child will see before overrides.
func (c *Command) EffectiveLanguage() string {
	if c.Language == "" {
		return DefaultLanguage
	}

	return c.Language
}

// ParseCommand parses a shell-like command line into a Command using shlex.
// It handles quoted arguments correctly; no shell is involved at run time.
func ParseCommand(line string, opts ...Option) (*Command, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty command line", ErrInvalidCommand)
	}

	return NewCommand(parts, opts...), nil
}

// TargetOS identifies the operating system the child runs on.
type TargetOS int

const (
	// OSUnknown represents an unidentified operating system.
	OSUnknown TargetOS = iota
	// OSLinux represents the Linux kernel.
	OSLinux
	// OSWindows represents Microsoft Windows.
	OSWindows
	// OSDarwin represents macOS (Darwin).
	OSDarwin
)

func (os TargetOS) String() string {
	switch os {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSDarwin:
		return "darwin"
	case OSUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// PassthroughVars lists the host variables copied verbatim into the child's environment.
func (os TargetOS) PassthroughVars() []string {
	switch os {
	case OSWindows:
		return []string{"SystemRoot"}
	case OSLinux, OSDarwin, OSUnknown:
		fallthrough
	default:
		return []string{"PATH"}
	}
}

// ShellCommand constructs a command that runs the provided script inside the system shell.
// Returns "sh -c <script>" for UNIX-likes and "powershell ..." for Windows.
func (os TargetOS) ShellCommand(script string, opts ...Option) *Command {
	switch os {
	case OSWindows:
		return NewCommand([]string{"powershell", "-NoProfile", "-NonInteractive", "-Command", script}, opts...)
	case OSLinux, OSDarwin, OSUnknown:
		fallthrough
	default:
		return NewCommand([]string{"sh", "-c", script}, opts...)
	}
}

// ParseTargetOS converts a typical OS string (e.g., "linux", "darwin") to a TargetOS.
func ParseTargetOS(osStr string) TargetOS {
	switch strings.ToLower(strings.TrimSpace(osStr)) {
	case "linux":
		return OSLinux
	case "windows", "windows_nt":
		return OSWindows
	case "darwin", "macos":
		return OSDarwin
	default:
		return OSUnknown
	}
}

// DetectLocalOS returns the TargetOS of the current running process.
func DetectLocalOS() TargetOS {
	return ParseTargetOS(runtime.GOOS)
}
