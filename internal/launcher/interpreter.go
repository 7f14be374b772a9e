// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// InterpreterLauncher starts the bundled interpreter with the assembled
// configuration mapped onto its environment-variable configuration surface.
// The argument vector is forwarded verbatim and the interpreter's exit code
// becomes the process exit code.
type InterpreterLauncher struct {
	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// HostEnviron overrides the host environment; nil means os.Environ().
	HostEnviron []string
}

// NewInterpreterLauncher creates an interpreter launcher bound to the
// process standard streams.
func NewInterpreterLauncher() *InterpreterLauncher {
	return &InterpreterLauncher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Name returns the launcher variant name.
func (l *InterpreterLauncher) Name() string { return "interpreter" }

// Launch runs the interpreter and waits for its main loop to finish.
func (l *InterpreterLauncher) Launch(cfg *Config) (int, error) {
	defer cfg.Clear()

	if cfg.ProgramName == "" {
		return 1, errors.New("launch: configuration has no program name")
	}

	args := []string{cfg.ProgramName}
	if len(cfg.Argv) > 1 {
		args = append(args, cfg.Argv[1:]...)
	}

	cmd := &exec.Cmd{
		Path:   cfg.ProgramName,
		Args:   args,
		Env:    Environ(cfg, l.hostEnviron()),
		Stdin:  l.Stdin,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The runtime ran and reported its own result; its diagnostics
			// already went to stderr.
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to start runtime %s: %w", cmd.Path, err)
	}

	return 0, nil
}

func (l *InterpreterLauncher) hostEnviron() []string {
	if l.HostEnviron != nil {
		return l.HostEnviron
	}
	return os.Environ()
}
