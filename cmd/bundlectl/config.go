// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bundleboot/internal/bundle"
	"bundleboot/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the launcher configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Shows the configuration the launcher would use: compiled-in defaults
merged with the bundle's ` + config.ConfigFileName + `, after schema validation.`,
		RunE: runConfigShow,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show where the configuration file is expected",
		RunE:  runConfigPath,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	exe, err := targetExecutable()
	if err != nil {
		return err
	}
	layout := bundle.DeriveLayout(exe)

	cfg, err := config.NewProvider().Load(config.LoadOptions{ResourcesDir: layout.ResourcesDir})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSetting := func(key, value string) {
		if value == "" {
			value = SubtitleStyle.Render("(unset)")
		} else {
			value = ValueStyle.Render(value)
		}
		fmt.Fprintf(out, "%-20s %s\n", key, value)
	}

	printSetting("runtime.framework", cfg.Runtime.Framework)
	printSetting("runtime.interpreter", cfg.Runtime.Interpreter)
	printSetting("runtime.lib_prefix", cfg.Runtime.LibPrefix)
	printSetting("site.dir", cfg.Site.Dir)
	printSetting("env.passthrough", strings.Join(cfg.Env.Passthrough, ", "))
	printSetting("dylib.version", cfg.Dylib.Version)
	printSetting("dylib.library", cfg.Dylib.Library)
	printSetting("dylib.entry_symbol", cfg.Dylib.EntrySymbol)
	printSetting("hooks.prelaunch", cfg.Hooks.Prelaunch)

	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	exe, err := targetExecutable()
	if err != nil {
		return err
	}
	layout := bundle.DeriveLayout(exe)

	fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(layout.ResourcesDir, config.ConfigFileName))
	return nil
}
