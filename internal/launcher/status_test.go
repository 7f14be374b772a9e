// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"bytes"
	"errors"
	"testing"
)

func TestStatusHandler_ClearsConfigAndPreservesDiagnostic(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	h := &StatusHandler{Stderr: &stderr}

	cfg := Assemble(testHome(), "bin/python3", testSearchPath(), []string{"bin"}, nil)
	runtimeErr := errors.New("Fatal Python error: init_fs_encoding: failed to get the Python codec")

	code := h.Handle(cfg, runtimeErr)

	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
	if !cfg.cleared() {
		t.Error("configuration not released")
	}
	if got := stderr.String(); got != runtimeErr.Error()+"\n" {
		t.Errorf("stderr = %q, runtime diagnostic must be preserved verbatim", got)
	}
}

func TestStatusHandler_NilConfig(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	h := &StatusHandler{Stderr: &stderr}

	if code := h.Handle(nil, errors.New("boom")); code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
}
