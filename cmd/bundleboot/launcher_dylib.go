// SPDX-License-Identifier: MPL-2.0

//go:build dylib

package main

import (
	"errors"
	"path/filepath"

	"bundleboot/internal/bundle"
	"bundleboot/internal/config"
	"bundleboot/internal/launcher"
)

// The dylib variant needs the real binary location: the shared library is
// found relative to where the binary actually lives, not where a symlink
// pointed.
func resolveExecutable() (bundle.ExecutablePath, error) {
	return bundle.ResolveExecutableReal()
}

func newLauncher(layout bundle.Layout, cfg *config.Config) (launcher.Launcher, error) {
	if cfg.Dylib.Version == "" {
		return nil, errors.New("dylib.version must be set in " + config.ConfigFileName + " for the dylib launcher")
	}

	libraryPath := filepath.Join(
		layout.FrameworksDir,
		cfg.Runtime.Framework+".framework",
		"Versions",
		cfg.Dylib.Version,
		cfg.LibraryName(),
	)

	return &launcher.DylibLauncher{
		LibraryPath: libraryPath,
		EntrySymbol: cfg.Dylib.EntrySymbol,
	}, nil
}
