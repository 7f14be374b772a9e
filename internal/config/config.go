// SPDX-License-Identifier: MPL-2.0

// Package config loads the launcher configuration from the bundle's
// Resources directory. The file is CUE, validated against an embedded
// schema and merged into Viper over compiled-in defaults; a missing file
// is not an error.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the launcher config file name under Resources.
	ConfigFileName = "launcher.cue"

	// maxConfigFileSize bounds the config file read. Launcher configs are a
	// handful of lines; anything larger is a packaging mistake.
	maxConfigFileSize = 1 << 20
)

//go:embed launcher_schema.cue
var configSchema string

// Load reads configuration according to opts. When no config file exists,
// the compiled-in defaults are returned without error.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("runtime.framework", defaults.Runtime.Framework)
	v.SetDefault("runtime.interpreter", defaults.Runtime.Interpreter)
	v.SetDefault("runtime.lib_prefix", defaults.Runtime.LibPrefix)
	v.SetDefault("site.dir", defaults.Site.Dir)
	v.SetDefault("env.passthrough", defaults.Env.Passthrough)
	v.SetDefault("dylib.version", defaults.Dylib.Version)
	v.SetDefault("dylib.library", defaults.Dylib.Library)
	v.SetDefault("dylib.entry_symbol", defaults.Dylib.EntrySymbol)
	v.SetDefault("hooks.prelaunch", defaults.Hooks.Prelaunch)

	path, required := configPath(opts)
	if path != "" {
		if err := loadCUEIntoViper(v, path, required); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// configPath resolves which file to load. An explicit ConfigFilePath must
// exist; the default Resources location is optional.
func configPath(opts LoadOptions) (path string, required bool) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, true
	}
	if opts.ResourcesDir != "" {
		return filepath.Join(opts.ResourcesDir, ConfigFileName), false
	}
	return "", false
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper on top of the defaults.
func loadCUEIntoViper(v *viper.Viper, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if len(data) > maxConfigFileSize {
		return fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return fmt.Errorf("%s: %s", path, cueerrors.Details(userValue.Err(), nil))
	}

	// Unify with the schema so unknown fields and type mismatches are
	// rejected before anything reaches Viper.
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("%s: %s", path, cueerrors.Details(err, nil))
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return fmt.Errorf("%s: %s", path, cueerrors.Details(err, nil))
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}
