// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"fmt"
	"os"
	"path/filepath"
)

// frameworkSuffix is the directory suffix of a versioned framework bundle.
const frameworkSuffix = ".framework"

// currentVersionLink is the version-indirection symlink inside a framework.
const currentVersionLink = "Current"

// RuntimeHome is the canonical, symlink-resolved install directory of the
// embedded runtime, together with the version string extracted from its
// final path segment.
type RuntimeHome struct {
	// Path is the resolved versioned install directory.
	Path string
	// Version is the final path segment of Path (e.g. "3.12").
	Version string
}

// ResolveRuntimeHome follows Frameworks/<framework>.framework/Versions/Current
// under contentsDir to the versioned runtime install directory. The chain must
// resolve to an existing directory; a broken or missing Current symlink is
// fatal and reported before any runtime configuration is built.
func ResolveRuntimeHome(contentsDir, framework string) (RuntimeHome, error) {
	candidate := filepath.Join(contentsDir, "Frameworks", framework+frameworkSuffix, "Versions", currentVersionLink)

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return RuntimeHome{}, &HomeNotFoundError{Candidate: candidate, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return RuntimeHome{}, &HomeNotFoundError{Candidate: candidate, Err: err}
	}
	if !info.IsDir() {
		return RuntimeHome{}, &HomeNotFoundError{Candidate: candidate, Err: fmt.Errorf("%s is not a directory", resolved)}
	}

	version := filepath.Base(resolved)
	if version == "" || version == "." || version == string(filepath.Separator) {
		return RuntimeHome{}, &VersionError{Home: resolved}
	}

	return RuntimeHome{Path: resolved, Version: version}, nil
}
