// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"slices"
	"strings"
	"testing"
)

func findVar(env []string, name string) (string, bool) {
	// Last entry wins, matching os/exec semantics.
	for i := len(env) - 1; i >= 0; i-- {
		if v, ok := strings.CutPrefix(env[i], name+"="); ok {
			return v, true
		}
	}
	return "", false
}

func TestEnviron_ScrubsHostRuntimeVars(t *testing.T) {
	t.Parallel()

	cfg := Assemble(testHome(), "bin/python3", testSearchPath(), []string{"bin"}, nil)
	host := []string{
		"PATH=/usr/bin",
		"PYTHONSTARTUP=/home/user/.pythonrc",
		"PYTHONPATH=/host/site-packages",
		"TERM=xterm",
	}

	env := Environ(cfg, host)

	if slices.Contains(env, "PYTHONSTARTUP=/home/user/.pythonrc") {
		t.Error("host PYTHONSTARTUP survived scrubbing")
	}
	if slices.Contains(env, "PYTHONPATH=/host/site-packages") {
		t.Error("host PYTHONPATH survived scrubbing")
	}
	if !slices.Contains(env, "PATH=/usr/bin") || !slices.Contains(env, "TERM=xterm") {
		t.Error("unrelated host variables were dropped")
	}
}

func TestEnviron_SetsRuntimeSurface(t *testing.T) {
	t.Parallel()

	cfg := Assemble(testHome(), "bin/python3", testSearchPath(), []string{"bin"}, nil)
	env := Environ(cfg, []string{"PATH=/usr/bin"})

	if v, ok := findVar(env, EnvHome); !ok || v != cfg.Home {
		t.Errorf("%s = %q (ok=%v), want %q", EnvHome, v, ok, cfg.Home)
	}
	if v, ok := findVar(env, EnvSearchPath); !ok || v != cfg.SearchPath {
		t.Errorf("%s = %q (ok=%v), want %q", EnvSearchPath, v, ok, cfg.SearchPath)
	}
	for _, name := range []string{EnvNoUserSite, EnvNoBytecode, EnvUnbuffered} {
		if v, ok := findVar(env, name); !ok || v != "1" {
			t.Errorf("%s = %q (ok=%v), want 1", name, v, ok)
		}
	}
}

func TestEnviron_PassthroughAllowlist(t *testing.T) {
	t.Parallel()

	cfg := Assemble(testHome(), "bin/python3", testSearchPath(), []string{"bin"}, []string{"PYTHONWARNINGS"})
	host := []string{
		"PYTHONWARNINGS=ignore",
		"PYTHONSTARTUP=/home/user/.pythonrc",
	}

	env := Environ(cfg, host)

	if !slices.Contains(env, "PYTHONWARNINGS=ignore") {
		t.Error("allowlisted variable was scrubbed")
	}
	if slices.Contains(env, "PYTHONSTARTUP=/home/user/.pythonrc") {
		t.Error("non-allowlisted runtime variable survived")
	}
}

func TestEnviron_NoScrubWhenHostEnvAllowed(t *testing.T) {
	t.Parallel()

	cfg := Assemble(testHome(), "bin/python3", testSearchPath(), []string{"bin"}, nil)
	cfg.IgnoreHostEnv = false

	env := Environ(cfg, []string{"PYTHONSTARTUP=/x"})

	if !slices.Contains(env, "PYTHONSTARTUP=/x") {
		t.Error("host variable dropped although IgnoreHostEnv is false")
	}
	// Our own settings still win: they are appended last.
	if v, _ := findVar(env, EnvHome); v != cfg.Home {
		t.Errorf("%s = %q, want %q", EnvHome, v, cfg.Home)
	}
}
