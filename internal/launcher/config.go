// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"path/filepath"
	"slices"

	"bundleboot/internal/bundle"
)

// Config is the runtime configuration record: flags and path strings,
// created fresh per launch, populated by Assemble, consumed exactly once by
// a Launcher, and explicitly cleared on both the success and failure paths.
type Config struct {
	// ProgramName is the path the runtime reports as its own executable.
	ProgramName string
	// Home is the resolved runtime home directory.
	Home string
	// SearchPath is the joined module search path.
	SearchPath string
	// Argv is the process argument vector, copied verbatim: original order,
	// original count, no reinterpretation.
	Argv []string

	// IgnoreHostEnv drops host environment variables that influence the
	// runtime.
	IgnoreHostEnv bool
	// NoUserSite disables user-level site customization.
	NoUserSite bool
	// NoBytecodeCache disables bytecode-cache writes.
	NoBytecodeCache bool
	// UnbufferedStdio keeps the runtime from buffering or reconfiguring the
	// standard streams; the host owns stdio.
	UnbufferedStdio bool

	// Passthrough lists host variables exempt from IgnoreHostEnv scrubbing.
	Passthrough []string
}

// Assemble builds a fresh runtime configuration with isolation semantics:
// the runtime must see only the bundle, never host-installed software. The
// interpreter path is relative to the runtime home, in slash form.
func Assemble(home bundle.RuntimeHome, interpreter string, searchPath bundle.SearchPath, argv, passthrough []string) *Config {
	return &Config{
		ProgramName: filepath.Join(home.Path, filepath.FromSlash(interpreter)),
		Home:        home.Path,
		SearchPath:  searchPath.String(),
		Argv:        slices.Clone(argv),

		IgnoreHostEnv:   true,
		NoUserSite:      true,
		NoBytecodeCache: true,
		UnbufferedStdio: true,

		Passthrough: slices.Clone(passthrough),
	}
}

// Clear releases the configuration. A cleared configuration must never be
// consumed again.
func (c *Config) Clear() {
	*c = Config{}
}

// cleared reports whether the configuration has been released.
func (c *Config) cleared() bool {
	return c.ProgramName == "" && c.Home == "" && c.SearchPath == "" && c.Argv == nil
}
