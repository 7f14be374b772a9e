// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrExecutableUnresolved is the sentinel error wrapped by ResolutionError.
	ErrExecutableUnresolved = errors.New("executable path unresolved")
	// ErrHomeNotFound is the sentinel error wrapped by HomeNotFoundError.
	ErrHomeNotFound = errors.New("runtime home not found")
	// ErrVersionUndetermined is the sentinel error wrapped by VersionError.
	ErrVersionUndetermined = errors.New("runtime version undetermined")
	// ErrMissingResource is the sentinel error wrapped by MissingResourceError.
	ErrMissingResource = errors.New("bundled resource missing")
)

type (
	// ResolutionError is returned when the platform cannot report the path of
	// the current process image. It wraps ErrExecutableUnresolved for errors.Is().
	ResolutionError struct {
		Err error
	}

	// HomeNotFoundError is returned when the Versions/Current indirection does
	// not resolve to an existing directory. It wraps ErrHomeNotFound for errors.Is().
	HomeNotFoundError struct {
		// Candidate is the unresolved symlink path that was attempted.
		Candidate string
		Err       error
	}

	// VersionError is returned when the resolved runtime home yields an empty
	// version segment. An unextractable version fails loudly: a silently
	// substituted default would mask a malformed or mismatched bundle.
	// It wraps ErrVersionUndetermined for errors.Is().
	VersionError struct {
		// Home is the resolved runtime home whose final segment was empty.
		Home string
	}

	// MissingResourceError is returned when a directory the bundle must ship
	// (e.g. the bundled site directory) does not exist or is not readable.
	// It wraps ErrMissingResource for errors.Is().
	MissingResourceError struct {
		// Path is the missing or unreadable resource path.
		Path string
		Err  error
	}
)

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%v: %v", ErrExecutableUnresolved, e.Err)
}

func (e *ResolutionError) Unwrap() []error { return []error{ErrExecutableUnresolved, e.Err} }

func (e *HomeNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrHomeNotFound, e.Candidate, e.Err)
}

func (e *HomeNotFoundError) Unwrap() []error { return []error{ErrHomeNotFound, e.Err} }

func (e *VersionError) Error() string {
	return fmt.Sprintf("%v: no version segment in %q", ErrVersionUndetermined, e.Home)
}

func (e *VersionError) Unwrap() error { return ErrVersionUndetermined }

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrMissingResource, e.Path, e.Err)
}

func (e *MissingResourceError) Unwrap() []error { return []error{ErrMissingResource, e.Err} }
