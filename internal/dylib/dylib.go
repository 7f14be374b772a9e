// SPDX-License-Identifier: MPL-2.0

// Package dylib wraps dynamic loading of the runtime's shared library.
//
// The Loader/Handle split exists so launch code can be exercised with fakes:
// the handle-release discipline (close exactly once, on every exit path,
// including symbol-resolution failure) is tested without touching a real
// library.
package dylib

type (
	// Handle is an open shared library. It must be closed exactly once.
	Handle interface {
		// Lookup resolves an exported symbol by name.
		Lookup(symbol string) (uintptr, error)
		// Close releases the library handle.
		Close() error
	}

	// Loader opens shared libraries.
	Loader interface {
		// Open loads the shared library at path. The returned error carries
		// the dynamic loader's own diagnostic text.
		Open(path string) (Handle, error)
	}
)
