// SPDX-License-Identifier: MPL-2.0

//go:build darwin || linux || freebsd

package dylib

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

type (
	posixLoader struct{}

	posixHandle struct {
		addr uintptr
	}
)

// NewLoader returns the platform dynamic loader.
func NewLoader() Loader {
	return posixLoader{}
}

// Open loads the shared library at path with lazy binding. Errors carry the
// dlerror() text verbatim.
func (posixLoader) Open(path string) (Handle, error) {
	addr, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	return &posixHandle{addr: addr}, nil
}

// Lookup resolves an exported symbol by name.
func (h *posixHandle) Lookup(symbol string) (uintptr, error) {
	return purego.Dlsym(h.addr, symbol)
}

// Close releases the library handle.
func (h *posixHandle) Close() error {
	return purego.Dlclose(h.addr)
}

// InvokeMain calls a legacy combined parse-and-run entry point with the
// C signature int main(int argc, char **argv). The argument vector is
// marshalled to NUL-terminated C strings with a NULL sentinel, matching
// what the runtime's argument parser expects.
func InvokeMain(fn uintptr, argv []string) int {
	argc := len(argv)

	// Backing storage must outlive the call; KeepAlive pins it past the
	// foreign invocation.
	backing := make([][]byte, argc)
	cargv := make([]*byte, argc+1)
	for i, arg := range argv {
		b := append([]byte(arg), 0)
		backing[i] = b
		cargv[i] = &b[0]
	}
	cargv[argc] = nil

	r1, _, _ := purego.SyscallN(fn, uintptr(argc), uintptr(unsafe.Pointer(&cargv[0])))

	runtime.KeepAlive(backing)
	runtime.KeepAlive(cargv)

	return int(int32(r1))
}
