//go:build windows

package ui

import "os/exec"

// openInFileManager opens the mount path, drive root or folder, in Explorer
func openInFileManager(path string) error {
	cmd := exec.Command("explorer.exe", path)
	return cmd.Start()
}
