// SPDX-License-Identifier: MPL-2.0

// bundleboot is the bootstrap executable placed in the bundle's
// Contents/MacOS directory. It resolves the bundle layout from its own
// location, assembles an isolated runtime configuration and hands control
// to the embedded runtime, forwarding the argument vector verbatim. It
// parses no flags of its own.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"bundleboot/internal/bundle"
	"bundleboot/internal/config"
	"bundleboot/internal/hook"
	"bundleboot/internal/launcher"
)

// debugEnvVar enables stage-level debug logging. The name is deliberately
// outside the runtime's PYTHON* namespace so it survives scrubbing.
const debugEnvVar = "BUNDLEBOOT_DEBUG"

func main() {
	logger := newLogger()

	exe, err := resolveExecutable()
	if err != nil {
		os.Exit(fail(logger, "resolve executable", err))
	}

	os.Exit(run(exe, os.Args, logger))
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "bundleboot",
		ReportTimestamp: false,
	})
	if os.Getenv(debugEnvVar) != "" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// fail reports a precondition failure with the stage that detected it and
// returns the failure exit code. Runtime-reported failures never pass
// through here; those go to launcher.StatusHandler verbatim.
func fail(logger *log.Logger, stage string, err error) int {
	logger.Error("launch aborted", "stage", stage, "error", err)
	return 1
}

// run performs the full bootstrap sequence for the bundle containing exe.
// Every precondition is checked before the runtime configuration that
// depends on it is built, so no partially valid configuration ever reaches
// a launcher.
func run(exe bundle.ExecutablePath, argv []string, logger *log.Logger) int {
	layout := bundle.DeriveLayout(exe)
	logger.Debug("derived bundle layout", "contents", layout.ContentsDir)

	cfg, err := config.NewProvider().Load(config.LoadOptions{ResourcesDir: layout.ResourcesDir})
	if err != nil {
		return fail(logger, "load configuration", err)
	}

	home, err := bundle.ResolveRuntimeHome(layout.ContentsDir, cfg.Runtime.Framework)
	if err != nil {
		return fail(logger, "resolve runtime home", err)
	}
	logger.Debug("resolved runtime home", "path", home.Path, "version", home.Version)

	searchPath, err := bundle.BuildSearchPath(layout, home, cfg.Site.Dir, cfg.Runtime.LibPrefix)
	if err != nil {
		return fail(logger, "build search path", err)
	}

	launchCfg := launcher.Assemble(home, cfg.Runtime.Interpreter, searchPath, argv, cfg.Env.Passthrough)

	if cfg.Hooks.Prelaunch != "" {
		hookPath := filepath.Join(layout.ResourcesDir, filepath.FromSlash(cfg.Hooks.Prelaunch))
		hookEnv := launcher.Environ(launchCfg, os.Environ())
		if err := hook.Run(context.Background(), hookPath, hookEnv, os.Stdout, os.Stderr); err != nil {
			launchCfg.Clear()
			return fail(logger, "prelaunch hook", err)
		}
	}

	l, err := newLauncher(layout, cfg)
	if err != nil {
		launchCfg.Clear()
		return fail(logger, "select launcher", err)
	}
	logger.Debug("starting runtime", "launcher", l.Name())

	code, err := l.Launch(launchCfg)
	if err != nil {
		return launcher.NewStatusHandler().Handle(launchCfg, err)
	}
	return code
}
