// SPDX-License-Identifier: MPL-2.0

// Package bundle resolves the directory layout of a self-contained
// application bundle from the running executable's own location.
//
// Everything the launcher needs is derived from the filesystem, never from
// host-installed software: the executable path anchors the bundle layout,
// the runtime home is reached through the framework's Versions/Current
// symlink, and the module search path is assembled from bundle and
// runtime-home directories in a fixed order.
package bundle
