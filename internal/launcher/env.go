// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"slices"
	"strings"
)

// Environment variables making up the runtime's configuration surface.
const (
	// EnvHome points the runtime at its bundled home directory.
	EnvHome = "PYTHONHOME"
	// EnvSearchPath carries the joined module search path.
	EnvSearchPath = "PYTHONPATH"
	// EnvNoUserSite disables user-level site customization.
	EnvNoUserSite = "PYTHONNOUSERSITE"
	// EnvNoBytecode disables bytecode-cache writes.
	EnvNoBytecode = "PYTHONDONTWRITEBYTECODE"
	// EnvUnbuffered keeps the runtime's standard streams unbuffered.
	EnvUnbuffered = "PYTHONUNBUFFERED"

	// runtimeEnvPrefix matches every host variable the runtime would
	// otherwise read at startup.
	runtimeEnvPrefix = "PYTHON"
)

// Environ maps the configuration onto the runtime's environment-variable
// configuration surface, starting from the host environment.
func Environ(cfg *Config, host []string) []string {
	var env []string
	if cfg.IgnoreHostEnv {
		env = scrubHostEnviron(host, cfg.Passthrough)
	} else {
		env = slices.Clone(host)
	}

	env = append(env, EnvHome+"="+cfg.Home)
	env = append(env, EnvSearchPath+"="+cfg.SearchPath)
	if cfg.NoUserSite {
		env = append(env, EnvNoUserSite+"=1")
	}
	if cfg.NoBytecodeCache {
		env = append(env, EnvNoBytecode+"=1")
	}
	if cfg.UnbufferedStdio {
		env = append(env, EnvUnbuffered+"=1")
	}

	return env
}

// scrubHostEnviron drops every host variable that influences the runtime,
// keeping allowlisted names untouched.
func scrubHostEnviron(host, passthrough []string) []string {
	env := make([]string, 0, len(host))
	for _, entry := range host {
		name, _, found := strings.Cut(entry, "=")
		if !found {
			env = append(env, entry)
			continue
		}
		if strings.HasPrefix(name, runtimeEnvPrefix) && !slices.Contains(passthrough, name) {
			continue
		}
		env = append(env, entry)
	}
	return env
}
