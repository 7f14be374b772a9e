// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dynloadDir is the runtime's dynamic-extension directory under the
// versioned standard library.
const dynloadDir = "lib-dynload"

// SearchPath is the ordered list of directories the runtime consults when
// resolving importable modules. Order is semantically significant: the first
// match wins, so the bundled site directory always precedes the runtime's
// own standard library.
type SearchPath struct {
	// Entries is always [site, stdlib, dynload], in that order.
	Entries []string
}

// String joins the entries with the platform path-list separator, the form
// the runtime consumes.
func (p SearchPath) String() string {
	return strings.Join(p.Entries, string(os.PathListSeparator))
}

// BuildSearchPath assembles the module search path from the bundle layout
// and the resolved runtime home.
//
// The bundled site directory is verified to exist and be readable up front.
// Without that check the runtime would start fine and then silently fail
// every import of a bundled module, which is far harder to diagnose than an
// explicit early exit.
func BuildSearchPath(layout Layout, home RuntimeHome, siteDir, libPrefix string) (SearchPath, error) {
	site := filepath.Join(layout.ResourcesDir, siteDir)
	if err := checkReadableDir(site); err != nil {
		return SearchPath{}, err
	}

	stdlib := filepath.Join(home.Path, "lib", libPrefix+home.Version)
	dynload := filepath.Join(stdlib, dynloadDir)

	return SearchPath{Entries: []string{site, stdlib, dynload}}, nil
}

// checkReadableDir verifies that path is a directory the launcher can read.
func checkReadableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &MissingResourceError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return &MissingResourceError{Path: path, Err: fmt.Errorf("not a directory")}
	}

	f, err := os.Open(path)
	if err != nil {
		return &MissingResourceError{Path: path, Err: err}
	}
	_ = f.Close()

	return nil
}
