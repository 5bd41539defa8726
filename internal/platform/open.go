package platform

import (
	"fmt"
	"log"
	"os/exec"
)

// Launcher command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/C"
)

// execCommand is replaced in tests
var execCommand = exec.Command

// OpenFileWithDefaultApp hands filePath to the OS default application.
// It returns once the launcher process has been started; the launcher's exit
// status and anything the opened application does later are not reported.
// The path is not checked here, that is left to the launcher.
func OpenFileWithDefaultApp(filePath string) error {
	cmd := launcherCommand(filePath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	log.Printf("Launched %s for %s (pid %d)", cmd.Path, filePath, cmd.Process.Pid)

	// Reap the launcher in the background so it does not linger as a zombie
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Launcher for %s exited: %v", filePath, err)
		}
	}()

	return nil
}
