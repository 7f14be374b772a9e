// SPDX-License-Identifier: MPL-2.0

//go:build !dylib

package main

import (
	"bundleboot/internal/bundle"
	"bundleboot/internal/config"
	"bundleboot/internal/launcher"
)

// The interpreter variant derives the layout from the invoked path;
// directory ancestry is enough and symlinked installs keep working.
func resolveExecutable() (bundle.ExecutablePath, error) {
	return bundle.ResolveExecutable()
}

func newLauncher(_ bundle.Layout, _ *config.Config) (launcher.Launcher, error) {
	return launcher.NewInterpreterLauncher(), nil
}
