// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"os"
	"path/filepath"

	"bundleboot/internal/dylib"
)

// DylibLauncher loads the runtime's shared library and invokes its legacy
// combined parse-and-run entry point with the full argument vector.
//
// The library handle is the only managed resource in the whole launcher:
// it is acquired, used and released exactly once per invocation, with
// release guaranteed on every exit path, including a failed symbol
// resolution.
type DylibLauncher struct {
	// LibraryPath is the shared library inside the framework's versioned
	// directory.
	LibraryPath string
	// EntrySymbol is the exported entry point resolved by name.
	EntrySymbol string
	// Loader opens the library; defaults to the platform loader.
	Loader dylib.Loader

	// invoke is a test seam over dylib.InvokeMain.
	invoke func(fn uintptr, argv []string) int
}

// Name returns the launcher variant name.
func (l *DylibLauncher) Name() string { return "dylib" }

// Launch exports the runtime home, loads the library, resolves the entry
// symbol and invokes it, propagating its integer result.
func (l *DylibLauncher) Launch(cfg *Config) (int, error) {
	defer cfg.Clear()

	// The runtime reads its home from the environment at load time.
	home := filepath.Dir(l.LibraryPath)
	if err := os.Setenv(EnvHome, home); err != nil {
		return 1, fmt.Errorf("failed to export %s: %w", EnvHome, err)
	}

	loader := l.Loader
	if loader == nil {
		loader = dylib.NewLoader()
	}

	handle, err := loader.Open(l.LibraryPath)
	if err != nil {
		return 1, fmt.Errorf("failed to load runtime library %s: %w", l.LibraryPath, err)
	}
	defer func() {
		_ = handle.Close()
	}()

	entry, err := handle.Lookup(l.EntrySymbol)
	if err != nil {
		return 1, fmt.Errorf("failed to resolve entry symbol %s: %w", l.EntrySymbol, err)
	}

	invoke := l.invoke
	if invoke == nil {
		invoke = dylib.InvokeMain
	}

	return invoke(entry, cfg.Argv), nil
}
