package platform

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLauncher re-runs the test binary as a stand-in for the OS launcher
func fakeLauncher(exitCode string) func(string, ...string) *exec.Cmd {
	return func(name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_EXIT_CODE="+exitCode)
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if os.Getenv("HELPER_EXIT_CODE") == "0" {
		os.Exit(0)
	}
	os.Exit(3)
}

func TestOpenFileWithDefaultApp_Started(t *testing.T) {
	origExec := execCommand
	defer func() { execCommand = origExec }()
	execCommand = fakeLauncher("0")

	err := OpenFileWithDefaultApp("/some/file.mp4")
	assert.NoError(t, err)
}

func TestOpenFileWithDefaultApp_LauncherFailureNotReported(t *testing.T) {
	origExec := execCommand
	defer func() { execCommand = origExec }()
	execCommand = fakeLauncher("3")

	// the launcher exits non-zero after starting; only the spawn counts
	err := OpenFileWithDefaultApp("/no/handler/for.this")
	assert.NoError(t, err)
}

func TestOpenFileWithDefaultApp_SpawnFailure(t *testing.T) {
	origExec := execCommand
	defer func() { execCommand = origExec }()
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("/definitely/not/a/launcher-binary", args...)
	}

	err := OpenFileWithDefaultApp("/some/file.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenFailed))
	assert.Contains(t, err.Error(), "failed to open file: ")
}

func TestOpenFileWithDefaultApp_NoExistenceCheck(t *testing.T) {
	origExec := execCommand
	defer func() { execCommand = origExec }()

	var gotArgs []string
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotArgs = append([]string{name}, args...)
		return fakeLauncher("0")(name, args...)
	}

	missing := "/path/that/does/not/exist.txt"
	require.NoError(t, OpenFileWithDefaultApp(missing))
	require.NotEmpty(t, gotArgs)
	assert.Equal(t, missing, gotArgs[len(gotArgs)-1])
}
