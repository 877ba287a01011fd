//go:build !windows && !darwin

package ui

import "os/exec"

// openInFileManager hands the mount path to the desktop's default handler
func openInFileManager(path string) error {
	cmd := exec.Command("xdg-open", path)
	return cmd.Start()
}
