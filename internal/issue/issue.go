// SPDX-License-Identifier: MPL-2.0

// Package issue catalogs known launch failures with rendered remediation
// notes. The launcher itself stays terse on stderr; bundlectl uses this
// catalog to explain what a failed check means and how to repair the bundle.
package issue

import (
	"errors"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"

	"bundleboot/internal/bundle"
)

type Id int

const (
	ExecutableUnresolvedId Id = iota + 1
	HomeNotFoundId
	VersionUndeterminedId
	SiteMissingId
	LibraryLoadFailedId
	ConfigInvalidId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	executableUnresolvedIssue = &Issue{
		id: ExecutableUnresolvedId,
		mdMsg: `
# Executable path could not be resolved

The launcher derives every bundle path from its own location, so this is
fatal. There is no fallback: earlier builds substituted a hard-coded
development path here, which masked broken installs.

## Things you can check:
- The launcher must be started from a real file, not a deleted or replaced
  binary still held open by a shell.
- On network or FUSE volumes, verify the mount exposes resolvable paths.`,
	}

	homeNotFoundIssue = &Issue{
		id: HomeNotFoundId,
		mdMsg: `
# Runtime home not found

The framework's ` + "`Versions/Current`" + ` symlink did not resolve to an
existing directory.

## Expected layout:
~~~
Contents/Frameworks/Python.framework/Versions/Current -> 3.12
Contents/Frameworks/Python.framework/Versions/3.12/
~~~

## Things you can try:
- Rebuild the bundle; the packaging step creates the Current symlink.
- Check that the framework was copied with symlinks preserved
  (e.g. ` + "`cp -R`" + ` instead of ` + "`cp -rL`" + `).`,
	}

	versionUndeterminedIssue = &Issue{
		id: VersionUndeterminedId,
		mdMsg: `
# Runtime version could not be determined

The resolved runtime home has no version segment in its final path
component. The launcher refuses to guess a version: a silently substituted
default would mask a malformed or mismatched bundle.

## Things you can try:
- Verify ` + "`Versions/Current`" + ` points at a directory named after the
  runtime version (e.g. ` + "`3.12`" + `), not at the framework root.`,
	}

	siteMissingIssue = &Issue{
		id: SiteMissingId,
		mdMsg: `
# Bundled site directory missing

The bundled module directory under Resources does not exist or is not
readable. Without it the runtime would start and then fail every import of
a bundled module, so the launcher exits early instead.

## Things you can try:
- Rebuild the bundle; packaging populates the site directory.
- If the name was customized, align ` + "`site.dir`" + ` in
  ` + "`Resources/launcher.cue`" + ` with the actual directory.`,
	}

	libraryLoadFailedIssue = &Issue{
		id: LibraryLoadFailedId,
		mdMsg: `
# Runtime library could not be loaded

The dynamic loader failed to open the runtime's shared library or to
resolve its entry symbol. The loader's own diagnostic is printed above.

## Things you can check:
- ` + "`dylib.version`" + ` in ` + "`Resources/launcher.cue`" + ` must match an
  existing ` + "`Versions/<version>`" + ` directory.
- The library file inside the versioned directory must match the
  configured name (defaults to the framework name).
- ` + "`dylib.entry_symbol`" + ` must be exported by the library.`,
	}

	configInvalidIssue = &Issue{
		id: ConfigInvalidId,
		mdMsg: `
# Launcher configuration is invalid

` + "`Resources/launcher.cue`" + ` failed schema validation. The file is
optional; when present it must contain only known fields with valid values.

## Things you can try:
- Check the validation message above for the offending field.
- Delete the file to fall back to compiled-in defaults.`,
	}

	issues = map[Id]*Issue{
		ExecutableUnresolvedId: executableUnresolvedIssue,
		HomeNotFoundId:         homeNotFoundIssue,
		VersionUndeterminedId:  versionUndeterminedIssue,
		SiteMissingId:          siteMissingIssue,
		LibraryLoadFailedId:    libraryLoadFailedIssue,
		ConfigInvalidId:        configInvalidIssue,
	}
)

// Get returns the catalog entry for id, or nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}

// Ids returns all catalog ids in ascending order.
func Ids() []Id {
	ids := make([]Id, 0, len(issues))
	for id := range issues {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ForError maps a launch error to its catalog entry id, or 0 when the
// error has no remediation note.
func ForError(err error) Id {
	switch {
	case errors.Is(err, bundle.ErrExecutableUnresolved):
		return ExecutableUnresolvedId
	case errors.Is(err, bundle.ErrHomeNotFound):
		return HomeNotFoundId
	case errors.Is(err, bundle.ErrVersionUndetermined):
		return VersionUndeterminedId
	case errors.Is(err, bundle.ErrMissingResource):
		return SiteMissingId
	default:
		return 0
	}
}
