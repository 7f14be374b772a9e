// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bundleboot/internal/bundle"
	"bundleboot/internal/config"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show every path the launcher would resolve",
	Long: `Resolves the bundle layout, runtime home and module search path the
way the launcher does and prints them. Resolution stops at the first
failure, which is reported in place of the remaining paths.`,
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, _ []string) error {
	exe, err := targetExecutable()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	layout := bundle.DeriveLayout(exe)

	printPath := func(name, value string) {
		fmt.Fprintf(out, "%-16s %s\n", name, ValueStyle.Render(value))
	}

	printPath("executable", string(layout.Executable))
	printPath("bin", layout.BinDir)
	printPath("contents", layout.ContentsDir)
	printPath("frameworks", layout.FrameworksDir)
	printPath("resources", layout.ResourcesDir)

	cfg, err := config.NewProvider().Load(config.LoadOptions{ResourcesDir: layout.ResourcesDir})
	if err != nil {
		return err
	}

	home, err := bundle.ResolveRuntimeHome(layout.ContentsDir, cfg.Runtime.Framework)
	if err != nil {
		return err
	}
	printPath("runtime home", home.Path)
	printPath("version", home.Version)

	searchPath, err := bundle.BuildSearchPath(layout, home, cfg.Site.Dir, cfg.Runtime.LibPrefix)
	if err != nil {
		return err
	}
	for i, entry := range searchPath.Entries {
		printPath(fmt.Sprintf("search path %d", i), entry)
	}

	return nil
}
