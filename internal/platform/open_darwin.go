//go:build darwin

package platform

import "os/exec"

// launcherCommand opens filePath with LaunchServices via open(1)
func launcherCommand(filePath string) *exec.Cmd {
	return execCommand(OpenCommand, filePath)
}
