package cli

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ytget/file-grouper/internal/bridge"
)

// AppName is used for the command and the MCP implementation name
const AppName = "file-grouper"

// Execute runs the command tree with fang's styled help and errors
func Execute(ctx context.Context, version string) error {
	return fang.Execute(
		ctx,
		NewRootCommand(version),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}

// NewRootCommand builds the command tree. The root command starts the GUI.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   AppName + " [folder]",
		Short: "Browse folders with files grouped by shared name prefix",
		Long: `file-grouper is a desktop folder browser. Pick a root folder, walk its
subfolders with back/forward history, and see the files of each folder
grouped by their common name prefix. Files open in the system's default
application.`,
		Example: `file-grouper ~/Videos
file-grouper list ~/Videos --groups
file-grouper mcp`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var folder string
			if len(args) > 0 {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}
				folder = abs
			}
			return runGUI(version, folder)
		},
	}

	cmd.AddCommand(
		newListCommand(newHeadlessBridge),
		newOpenCommand(newHeadlessBridge),
		newMCPCommand(version, newHeadlessBridge),
	)
	return cmd
}

// newHeadlessBridge serves read_directory and open_file without a window,
// select_folder reports that no dialog is available
func newHeadlessBridge() *bridge.Bridge {
	return bridge.New(bridge.Services{})
}
