// Package mounts enumerates the filesystems mounted on the local machine.
//
// One engine is compiled per target: Linux reads /proc/mounts and stats each
// path, macOS uses the two-phase getfsstat call, Windows walks volumes and
// the mount paths bound to them. Every call enumerates afresh; nothing is
// cached and the package holds no state between calls.
//
// Failures while establishing the set of mounts are always fatal. Failures
// while enriching a known mount differ by platform: Linux and macOS abort the
// whole call, Windows leaves the affected fields nil and keeps the entry
// marked Dummy. Callers get either the full list or a single *Error.
package mounts

// Paths returns the mount paths in native enumeration order. It does not
// query capacities.
func Paths(opts ...Option) ([]string, error) {
	return paths(newConfig(opts))
}

// Infos returns a MountInfo for every mount in native enumeration order
func Infos(opts ...Option) ([]MountInfo, error) {
	return infos(newConfig(opts))
}
