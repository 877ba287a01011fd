// Package ui implements the mountinfo terminal browser with Bubbletea and
// the non-interactive table, JSON, YAML and plain renderings of mounts and
// snapshot diffs.
package ui
