// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"bundleboot/internal/dylib"
)

type (
	fakeLoader struct {
		openErr   error
		handle    *fakeHandle
		openedFor string
	}

	fakeHandle struct {
		lookupErr  error
		entryAddr  uintptr
		closeCount int
	}
)

func (l *fakeLoader) Open(path string) (dylib.Handle, error) {
	l.openedFor = path
	if l.openErr != nil {
		return nil, l.openErr
	}
	return l.handle, nil
}

func (h *fakeHandle) Lookup(string) (uintptr, error) {
	if h.lookupErr != nil {
		return 0, h.lookupErr
	}
	return h.entryAddr, nil
}

func (h *fakeHandle) Close() error {
	h.closeCount++
	return nil
}

func dylibTestConfig() *Config {
	return Assemble(testHome(), "bin/python3", testSearchPath(), []string{"bin", "-m", "marcut"}, nil)
}

func TestDylibLauncher_LoadFailure(t *testing.T) {
	loadErr := errors.New("dlopen(/x/Python, 1): image not found")
	l := &DylibLauncher{
		LibraryPath: "/x/Python",
		EntrySymbol: "Py_BytesMain",
		Loader:      &fakeLoader{openErr: loadErr},
	}

	cfg := dylibTestConfig()
	code, err := l.Launch(cfg)

	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
	if !errors.Is(err, loadErr) {
		t.Errorf("error should wrap the loader diagnostic, got: %v", err)
	}
	if !strings.Contains(err.Error(), "image not found") {
		t.Errorf("loader's own diagnostic missing from %q", err)
	}
	if !cfg.cleared() {
		t.Error("configuration not cleared on load failure")
	}
}

// Regression: a failing symbol resolution must still release the already
// acquired library handle before the process exits.
func TestDylibLauncher_SymbolFailureReleasesHandle(t *testing.T) {
	handle := &fakeHandle{lookupErr: errors.New("symbol Py_BytesMain not found")}
	l := &DylibLauncher{
		LibraryPath: "/x/Python",
		EntrySymbol: "Py_BytesMain",
		Loader:      &fakeLoader{handle: handle},
	}

	cfg := dylibTestConfig()
	code, err := l.Launch(cfg)

	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
	if err == nil || !strings.Contains(err.Error(), "Py_BytesMain") {
		t.Errorf("symbol diagnostic missing from error: %v", err)
	}
	if handle.closeCount != 1 {
		t.Errorf("handle closed %d times, want exactly 1", handle.closeCount)
	}
}

func TestDylibLauncher_SuccessPropagatesResultAndReleases(t *testing.T) {
	handle := &fakeHandle{entryAddr: 0xBEEF}
	l := &DylibLauncher{
		LibraryPath: filepath.Join(t.TempDir(), "Python.framework", "Versions", "3.11", "Python"),
		EntrySymbol: "Py_BytesMain",
		Loader:      &fakeLoader{handle: handle},
	}

	var gotFn uintptr
	var gotArgv []string
	l.invoke = func(fn uintptr, argv []string) int {
		gotFn = fn
		gotArgv = argv
		return 42
	}

	cfg := dylibTestConfig()
	wantArgv := slices.Clone(cfg.Argv)

	code, err := l.Launch(cfg)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if code != 42 {
		t.Errorf("code = %d, want 42", code)
	}
	if gotFn != 0xBEEF {
		t.Errorf("entry address = %#x, want 0xBEEF", gotFn)
	}
	if len(gotArgv) != len(wantArgv) {
		t.Fatalf("argv count = %d, want %d", len(gotArgv), len(wantArgv))
	}
	for i := range wantArgv {
		if gotArgv[i] != wantArgv[i] {
			t.Errorf("argv[%d] = %q, want %q", i, gotArgv[i], wantArgv[i])
		}
	}
	if handle.closeCount != 1 {
		t.Errorf("handle closed %d times, want exactly 1", handle.closeCount)
	}
	if !cfg.cleared() {
		t.Error("configuration not cleared on success")
	}
}

func TestDylibLauncher_ExportsRuntimeHome(t *testing.T) {
	lib := filepath.Join("/bundle", "Contents", "Frameworks", "Python.framework", "Versions", "3.11", "Python")
	l := &DylibLauncher{
		LibraryPath: lib,
		EntrySymbol: "Py_BytesMain",
		Loader:      &fakeLoader{handle: &fakeHandle{}},
	}
	l.invoke = func(uintptr, []string) int { return 0 }

	t.Setenv(EnvHome, "/stale/value")

	if _, err := l.Launch(dylibTestConfig()); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	if got := os.Getenv(EnvHome); got != filepath.Dir(lib) {
		t.Errorf("%s = %q, want %q", EnvHome, got, filepath.Dir(lib))
	}
}
