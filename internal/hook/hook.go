// SPDX-License-Identifier: MPL-2.0

// Package hook runs the optional prelaunch shell script shipped in the
// bundle's Resources directory. The script executes in the embedded shell
// interpreter so the bundle never depends on a host shell, with the same
// isolated environment the runtime itself will see.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Run executes the prelaunch script at path, if present. A missing script
// is not an error; a script that fails aborts the launch. The script runs
// with its own directory as working directory and env as its environment.
func Run(ctx context.Context, path string, env []string, stdout, stderr io.Writer) error {
	script, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read prelaunch hook %s: %w", path, err)
	}

	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(string(script)), filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to parse prelaunch hook %s: %w", path, err)
	}

	runner, err := interp.New(
		interp.Dir(filepath.Dir(path)),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create hook interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return fmt.Errorf("prelaunch hook %s exited with status %d", path, int(exitStatus))
		}
		return fmt.Errorf("prelaunch hook %s failed: %w", path, err)
	}

	return nil
}
