// SPDX-License-Identifier: MPL-2.0

//go:build !(darwin || linux || freebsd)

package dylib

import (
	"fmt"
	"runtime"
)

type stubLoader struct{}

// NewLoader returns a loader that rejects every open on platforms without
// POSIX dynamic loading support.
func NewLoader() Loader {
	return stubLoader{}
}

func (stubLoader) Open(path string) (Handle, error) {
	return nil, fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)
}

// InvokeMain is unreachable on stub platforms; Open never yields a handle.
func InvokeMain(fn uintptr, argv []string) int {
	panic("dylib: InvokeMain called on unsupported platform")
}
