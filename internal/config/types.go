// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config is the launcher configuration, merged from compiled-in defaults
	// and the optional Resources/launcher.cue file.
	Config struct {
		Runtime RuntimeSettings `mapstructure:"runtime"`
		Site    SiteSettings    `mapstructure:"site"`
		Env     EnvSettings     `mapstructure:"env"`
		Dylib   DylibSettings   `mapstructure:"dylib"`
		Hooks   HookSettings    `mapstructure:"hooks"`
	}

	// RuntimeSettings locates the embedded runtime inside the bundle.
	RuntimeSettings struct {
		// Framework is the framework directory name without the
		// ".framework" suffix.
		Framework string `mapstructure:"framework"`
		// Interpreter is the interpreter path relative to the runtime home,
		// in slash form.
		Interpreter string `mapstructure:"interpreter"`
		// LibPrefix is the standard-library directory prefix under lib/.
		LibPrefix string `mapstructure:"lib_prefix"`
	}

	// SiteSettings locates the bundled site directory.
	SiteSettings struct {
		// Dir is the site directory name under Resources.
		Dir string `mapstructure:"dir"`
	}

	// EnvSettings controls isolation scrubbing of the host environment.
	EnvSettings struct {
		// Passthrough lists host variables exempt from scrubbing.
		Passthrough []string `mapstructure:"passthrough"`
	}

	// DylibSettings configures the dynamic-loader launcher variant.
	DylibSettings struct {
		// Version selects Versions/<version>; required for the dylib build.
		Version string `mapstructure:"version"`
		// Library is the shared-library file name; empty means Framework.
		Library string `mapstructure:"library"`
		// EntrySymbol is the legacy combined parse-and-run entry point.
		EntrySymbol string `mapstructure:"entry_symbol"`
	}

	// HookSettings configures optional launch hooks.
	HookSettings struct {
		// Prelaunch is a script path relative to Resources; empty disables it.
		Prelaunch string `mapstructure:"prelaunch"`
	}

	// InvalidConfigError reports configuration values that passed the CUE
	// schema but violate Go-level constraints (whitespace-only strings).
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []string
	}
)

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidConfig, strings.Join(e.FieldErrors, "; "))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the compiled-in configuration, matching the layout
// the build scripts produce.
func DefaultConfig() *Config {
	return &Config{
		Runtime: RuntimeSettings{
			Framework:   "Python",
			Interpreter: "bin/python3",
			LibPrefix:   "python",
		},
		Site: SiteSettings{
			Dir: "python_site",
		},
		Env: EnvSettings{
			Passthrough: nil,
		},
		Dylib: DylibSettings{
			Version:     "",
			Library:     "",
			EntrySymbol: "Py_BytesMain",
		},
		Hooks: HookSettings{
			Prelaunch: "hooks/prelaunch.sh",
		},
	}
}

// Validate checks constraints the CUE schema cannot express: schema !=""
// guards reject empty strings, but whitespace-only values would still slip
// through and produce confusing path errors later.
func (c *Config) Validate() error {
	var fieldErrs []string

	check := func(field, value string) {
		if value != "" && strings.TrimSpace(value) == "" {
			fieldErrs = append(fieldErrs, fmt.Sprintf("%s must not be whitespace-only", field))
		}
	}

	check("runtime.framework", c.Runtime.Framework)
	check("runtime.interpreter", c.Runtime.Interpreter)
	check("runtime.lib_prefix", c.Runtime.LibPrefix)
	check("site.dir", c.Site.Dir)
	check("dylib.version", c.Dylib.Version)
	check("dylib.library", c.Dylib.Library)
	check("dylib.entry_symbol", c.Dylib.EntrySymbol)
	check("hooks.prelaunch", c.Hooks.Prelaunch)

	for _, v := range c.Env.Passthrough {
		if strings.TrimSpace(v) == "" {
			fieldErrs = append(fieldErrs, "env.passthrough entries must not be blank")
			break
		}
	}

	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}

	return nil
}

// LibraryName returns the shared-library file name for the dylib variant,
// falling back to the framework name when unset.
func (c *Config) LibraryName() string {
	if c.Dylib.Library != "" {
		return c.Dylib.Library
	}
	return c.Runtime.Framework
}
