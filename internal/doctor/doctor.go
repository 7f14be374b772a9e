// SPDX-License-Identifier: MPL-2.0

// Package doctor runs ordered health checks against an application bundle,
// mirroring the path resolution the launcher performs at startup. Each check
// reports independently so a broken bundle yields a full picture instead of
// stopping at the first failure.
package doctor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bundleboot/internal/bundle"
	"bundleboot/internal/config"
	"bundleboot/internal/issue"
)

// Result is the outcome of a single check.
type Result struct {
	// Name identifies the check.
	Name string
	// Ok reports whether the check passed.
	Ok bool
	// Skipped marks checks that could not run because a prerequisite failed.
	Skipped bool
	// Message is a human-readable summary, always set.
	Message string
	// Issue references a remediation catalog entry, 0 when none applies.
	Issue issue.Id
}

// Report aggregates the results of one doctor run.
type Report struct {
	Results []Result
}

// Ok reports whether every non-skipped check passed.
func (r Report) Ok() bool {
	for _, res := range r.Results {
		if !res.Skipped && !res.Ok {
			return false
		}
	}
	return true
}

// Run inspects the bundle the executable lives in. Checks run in launcher
// order: configuration, layout, runtime home, site directory, interpreter,
// and the shared library when the dylib variant is configured.
func Run(exe bundle.ExecutablePath, provider config.Provider) Report {
	layout := bundle.DeriveLayout(exe)

	var report Report
	add := func(res Result) {
		report.Results = append(report.Results, res)
	}

	cfg, err := provider.Load(config.LoadOptions{ResourcesDir: layout.ResourcesDir})
	if err != nil {
		add(Result{
			Name:    "configuration",
			Message: err.Error(),
			Issue:   issue.ConfigInvalidId,
		})
		// Remaining checks still run against the compiled-in defaults so a
		// bad config file does not hide structural bundle damage.
		cfg = config.DefaultConfig()
	} else {
		add(Result{Name: "configuration", Ok: true, Message: configSummary(layout)})
	}

	add(checkLayout(layout))

	home, err := bundle.ResolveRuntimeHome(layout.ContentsDir, cfg.Runtime.Framework)
	if err != nil {
		add(Result{Name: "runtime home", Message: err.Error(), Issue: issue.ForError(err)})
		add(Result{Name: "site directory", Skipped: true, Message: "skipped: runtime home unresolved"})
		add(Result{Name: "interpreter", Skipped: true, Message: "skipped: runtime home unresolved"})
	} else {
		add(Result{
			Name:    "runtime home",
			Ok:      true,
			Message: fmt.Sprintf("%s (version %s)", home.Path, home.Version),
		})
		add(checkSite(layout, home, cfg))
		add(checkInterpreter(home, cfg))
	}

	if cfg.Dylib.Version != "" {
		add(checkLibrary(layout, cfg))
	}

	return report
}

func configSummary(layout bundle.Layout) string {
	path := filepath.Join(layout.ResourcesDir, config.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "compiled-in defaults (no " + config.ConfigFileName + ")"
	}
	return path
}

func checkLayout(layout bundle.Layout) Result {
	for _, dir := range []string{layout.BinDir, layout.ContentsDir, layout.FrameworksDir, layout.ResourcesDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return Result{Name: "bundle layout", Message: fmt.Sprintf("%s: %v", dir, err)}
		}
		if !info.IsDir() {
			return Result{Name: "bundle layout", Message: dir + ": not a directory"}
		}
	}
	return Result{Name: "bundle layout", Ok: true, Message: layout.ContentsDir}
}

func checkSite(layout bundle.Layout, home bundle.RuntimeHome, cfg *config.Config) Result {
	searchPath, err := bundle.BuildSearchPath(layout, home, cfg.Site.Dir, cfg.Runtime.LibPrefix)
	if err != nil {
		return Result{Name: "site directory", Message: err.Error(), Issue: issue.ForError(err)}
	}
	return Result{Name: "site directory", Ok: true, Message: searchPath.Entries[0]}
}

func checkInterpreter(home bundle.RuntimeHome, cfg *config.Config) Result {
	path := filepath.Join(home.Path, filepath.FromSlash(cfg.Runtime.Interpreter))

	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: "interpreter", Message: fmt.Sprintf("%s: %v", path, err)}
	}
	if info.IsDir() {
		return Result{Name: "interpreter", Message: path + ": is a directory"}
	}
	if info.Mode()&fs.FileMode(0o111) == 0 {
		return Result{Name: "interpreter", Message: path + ": not executable"}
	}
	return Result{Name: "interpreter", Ok: true, Message: path}
}

func checkLibrary(layout bundle.Layout, cfg *config.Config) Result {
	path := filepath.Join(
		layout.FrameworksDir,
		cfg.Runtime.Framework+".framework",
		"Versions",
		cfg.Dylib.Version,
		cfg.LibraryName(),
	)

	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: "runtime library", Message: fmt.Sprintf("%s: %v", path, err), Issue: issue.LibraryLoadFailedId}
	}
	if info.IsDir() {
		return Result{Name: "runtime library", Message: path + ": is a directory", Issue: issue.LibraryLoadFailedId}
	}
	return Result{Name: "runtime library", Ok: true, Message: path}
}
