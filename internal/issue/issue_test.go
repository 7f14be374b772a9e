// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"testing"

	"bundleboot/internal/bundle"
)

func TestGet_AllIdsHaveEntries(t *testing.T) {
	t.Parallel()

	for _, id := range Ids() {
		entry := Get(id)
		if entry == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if entry.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, entry.Id())
		}
		if entry.MarkdownMsg() == "" {
			t.Errorf("issue %d has no remediation text", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	t.Parallel()

	if Get(0) != nil {
		t.Error("Get(0) should be nil")
	}
}

func TestForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Id
	}{
		{"home not found", &bundle.HomeNotFoundError{Candidate: "/x", Err: errors.New("no such file")}, HomeNotFoundId},
		{"missing site", &bundle.MissingResourceError{Path: "/x", Err: errors.New("no such file")}, SiteMissingId},
		{"version", &bundle.VersionError{Home: "/x"}, VersionUndeterminedId},
		{"resolution", &bundle.ResolutionError{Err: errors.New("nope")}, ExecutableUnresolvedId},
		{"unrelated", errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ForError(tt.err); got != tt.want {
				t.Errorf("ForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRender_UsesRenderer(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotIn string
	render = func(in string, stylePath string) (string, error) {
		gotIn = in
		return "rendered", nil
	}

	out, err := Get(HomeNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "rendered" {
		t.Errorf("out = %q", out)
	}
	if gotIn == "" {
		t.Error("renderer not given the markdown source")
	}
}
