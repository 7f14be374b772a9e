// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"io"
	"os"
)

// StatusHandler is the single choke point for runtime-reported failures.
// It releases whatever configuration state still exists and reports the
// runtime's own diagnostic verbatim. The bootstrap never substitutes a
// generic message for a runtime-reported one.
type StatusHandler struct {
	Stderr io.Writer
}

// NewStatusHandler creates a status handler writing to the process stderr.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{Stderr: os.Stderr}
}

// Handle clears any partially populated configuration, writes the
// diagnostic, and returns the failure exit code.
func (h *StatusHandler) Handle(cfg *Config, err error) int {
	if cfg != nil {
		cfg.Clear()
	}
	if err != nil {
		fmt.Fprintln(h.Stderr, err)
	}
	return 1
}
