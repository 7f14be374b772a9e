// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"os"
	"path/filepath"
)

// ExecutablePath is the absolute filesystem path of the current process
// image. It is resolved once at startup and immutable thereafter.
type ExecutablePath string

// ResolveExecutable returns the absolute path of the running binary.
// Symlinks in the final path component are not resolved; directory-level
// ancestry is enough for bundle layout derivation.
func ResolveExecutable() (ExecutablePath, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", &ResolutionError{Err: err}
	}

	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", &ResolutionError{Err: err}
	}

	return ExecutablePath(abs), nil
}

// ResolveExecutableReal returns the fully symlink-resolved path of the
// running binary. The dynamic loader needs the real path because the
// launcher may be invoked through a symlink, and the shared library is
// located relative to where the binary actually lives.
func ResolveExecutableReal() (ExecutablePath, error) {
	exe, err := ResolveExecutable()
	if err != nil {
		return "", err
	}

	real, err := filepath.EvalSymlinks(string(exe))
	if err != nil {
		return "", &ResolutionError{Err: err}
	}

	return ExecutablePath(real), nil
}
