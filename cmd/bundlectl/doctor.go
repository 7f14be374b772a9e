// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bundleboot/internal/config"
	"bundleboot/internal/doctor"
	"bundleboot/internal/issue"
)

var (
	// explain renders remediation notes for failing checks.
	explain bool

	doctorCmd = &cobra.Command{
		Use:   "doctor",
		Short: "Run health checks against the bundle",
		Long: `Runs the same resolution steps the launcher performs at startup and
reports each one. The runtime is never started. Exits non-zero when any
check fails.`,
		RunE: runDoctor,
	}
)

func init() {
	doctorCmd.Flags().BoolVar(&explain, "explain", false, "show remediation notes for failing checks")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	exe, err := targetExecutable()
	if err != nil {
		return err
	}

	report := doctor.Run(exe, config.NewProvider())

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		switch {
		case res.Skipped:
			fmt.Fprintf(out, "%s %-16s %s\n", WarningStyle.Render("-"), res.Name, SubtitleStyle.Render(res.Message))
		case res.Ok:
			fmt.Fprintf(out, "%s %-16s %s\n", SuccessStyle.Render("✓"), res.Name, ValueStyle.Render(res.Message))
		default:
			fmt.Fprintf(out, "%s %-16s %s\n", ErrorStyle.Render("✗"), res.Name, res.Message)
			if explain {
				if entry := issue.Get(res.Issue); entry != nil {
					rendered, rerr := entry.Render("dark")
					if rerr != nil {
						rendered = string(entry.MarkdownMsg())
					}
					fmt.Fprintln(out, rendered)
				}
			}
		}
	}

	if !report.Ok() {
		return &ExitError{Code: 1}
	}
	return nil
}
