// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"bundleboot/internal/bundle"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// bundlePath points the tool at a specific .app bundle; empty means the
	// bundle this binary is installed in.
	bundlePath string

	rootCmd = &cobra.Command{
		Use:   "bundlectl",
		Short: "Inspect and diagnose an application bundle",
		Long: TitleStyle.Render("bundlectl") + SubtitleStyle.Render(" - bundle inspection for the bundleboot launcher") + `

bundlectl checks an application bundle the same way the launcher would
at startup: it resolves the bundle layout, the embedded runtime home,
the module search path and the launcher configuration, and reports what
it finds without ever starting the runtime.

` + SubtitleStyle.Render("Examples:") + `
  bundlectl doctor                     Check the bundle this tool ships in
  bundlectl doctor --bundle My.app     Check a specific bundle
  bundlectl paths                      Show every resolved path
  bundlectl config show                Show the effective configuration`,
	}
)

// ExitError carries a process exit code through fang's error handling.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&bundlePath, "bundle", "", "path to a .app bundle (default: the bundle containing this binary)")

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// targetExecutable resolves the launcher executable path the inspection
// should be anchored at. With --bundle it is the launcher inside that
// bundle; otherwise this binary's own location, since bundlectl ships in
// the same Contents/MacOS directory.
func targetExecutable() (bundle.ExecutablePath, error) {
	if bundlePath != "" {
		abs, err := filepath.Abs(bundlePath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve bundle path %s: %w", bundlePath, err)
		}
		return bundle.ExecutablePath(filepath.Join(abs, "Contents", "MacOS", "bundleboot")), nil
	}
	return bundle.ResolveExecutable()
}
