//go:build windows

package platform

import "os/exec"

// launcherCommand opens filePath through the shell's start builtin. The empty
// argument is the window title, without it a quoted path is taken as a title.
func launcherCommand(filePath string) *exec.Cmd {
	return execCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", filePath)
}
