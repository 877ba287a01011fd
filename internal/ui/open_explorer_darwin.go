//go:build darwin

package ui

import "os/exec"

// openInFileManager reveals the mount point in Finder
func openInFileManager(path string) error {
	cmd := exec.Command("open", path)
	return cmd.Start()
}
