// SPDX-License-Identifier: MPL-2.0

package bundle

import "path/filepath"

// Layout holds the fixed directory hierarchy of an application bundle,
// derived purely from the executable path. Every directory is a strict
// filesystem ancestor (or sibling subtree) of the executable; nothing is
// read from disk during derivation.
type Layout struct {
	// Executable is the path the layout was derived from.
	Executable ExecutablePath
	// BinDir is the directory containing the executable (Contents/MacOS).
	BinDir string
	// ContentsDir is the parent of BinDir (Contents).
	ContentsDir string
	// FrameworksDir is ContentsDir/Frameworks.
	FrameworksDir string
	// ResourcesDir is ContentsDir/Resources.
	ResourcesDir string
}

// DeriveLayout computes the bundle layout for an executable path.
func DeriveLayout(exe ExecutablePath) Layout {
	binDir := filepath.Dir(string(exe))
	contentsDir := filepath.Dir(binDir)

	return Layout{
		Executable:    exe,
		BinDir:        binDir,
		ContentsDir:   contentsDir,
		FrameworksDir: filepath.Join(contentsDir, "Frameworks"),
		ResourcesDir:  filepath.Join(contentsDir, "Resources"),
	}
}
