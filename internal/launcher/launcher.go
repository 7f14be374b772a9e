// SPDX-License-Identifier: MPL-2.0

// Package launcher starts the embedded runtime from an assembled
// configuration. Two implementations exist behind one interface: the
// interpreter launcher runs the bundled interpreter in an isolated
// environment, and the dylib launcher loads the runtime's shared library
// and invokes its legacy combined entry point. Which one a binary carries
// is decided at build time.
package launcher

// Launcher starts the runtime with a fully assembled configuration and
// returns the runtime's integer result as the process exit code. A non-nil
// error is a runtime-reported failure and must be routed through
// StatusHandler; launchers never write diagnostics themselves.
type Launcher interface {
	// Name identifies the launcher variant.
	Name() string
	// Launch consumes the configuration exactly once. The configuration is
	// cleared before Launch returns, on success and failure alike.
	Launch(cfg *Config) (int, error)
}
