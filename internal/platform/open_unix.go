//go:build !darwin && !windows

package platform

import "os/exec"

// launcherCommand opens filePath through the freedesktop opener
func launcherCommand(filePath string) *exec.Cmd {
	return execCommand(XDGOpenCommand, filePath)
}
