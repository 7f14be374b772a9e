// SPDX-License-Identifier: MPL-2.0

// bundlectl is the maintenance companion to the bundleboot launcher. It
// inspects an application bundle without starting the runtime: health
// checks, resolved paths, and the effective launcher configuration.
package main

func main() {
	Execute()
}
