package cli

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ytget/file-grouper/internal/bridge"
	"github.com/ytget/file-grouper/internal/model"
)

type (
	// ReadDirectoryInput contains parameters for listing a directory.
	ReadDirectoryInput struct {
		Path      string `json:"path" jsonschema:"Absolute path of the directory to list"`
		MinPrefix int    `json:"minPrefix,omitempty" jsonschema:"Shortest common prefix that groups files (default: 3)"`
	}

	// ReadDirectoryOutput contains the immediate children of a directory.
	ReadDirectoryOutput struct {
		Folders []string          `json:"folders"`
		Files   []string          `json:"files"`
		Groups  []model.FileGroup `json:"groups"`
	}

	// OpenFileInput contains parameters for opening a file.
	OpenFileInput struct {
		Path string `json:"path" jsonschema:"Absolute path of the file to open"`
	}

	// OpenFileOutput contains the result of opening a file.
	OpenFileOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}
)

// toolset exposes bridge handlers as MCP tools
type toolset struct {
	bridge *bridge.Bridge
}

func newMCPCommand(version string, newBridge func() *bridge.Bridge) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve read_directory and open_file as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := newMCPServer(version, newBridge())
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}

func newMCPServer(version string, b *bridge.Bridge) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    AppName,
		Version: version,
	}, nil)

	tools := &toolset{bridge: b}

	mcp.AddTool(server, &mcp.Tool{
		Name:        bridge.HandlerReadDirectory,
		Description: "List the folders and files directly inside a directory, each sorted by name, plus the files grouped by common name prefix.",
	}, tools.handleReadDirectory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        bridge.HandlerOpenFile,
		Description: "Open a file with the operating system's default application. Success means the launcher started.",
	}, tools.handleOpenFile)

	return server
}

func (t *toolset) handleReadDirectory(ctx context.Context, _ *mcp.CallToolRequest, input ReadDirectoryInput) (*mcp.CallToolResult, ReadDirectoryOutput, error) {
	listing, err := t.bridge.ReadDirectory(ctx, input.Path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ReadDirectoryOutput{}, err
	}

	minPrefix := input.MinPrefix
	if minPrefix <= 0 {
		minPrefix = model.DefaultMinGroupPrefix
	}
	groups := model.GroupFilesByPrefix(listing.Files, minPrefix)

	return nil, ReadDirectoryOutput{
		Folders: listing.Folders,
		Files:   listing.Files,
		Groups:  groups,
	}, nil
}

func (t *toolset) handleOpenFile(ctx context.Context, _ *mcp.CallToolRequest, input OpenFileInput) (*mcp.CallToolResult, OpenFileOutput, error) {
	if err := t.bridge.OpenFile(ctx, input.Path); err != nil {
		return &mcp.CallToolResult{IsError: true}, OpenFileOutput{}, err
	}
	return nil, OpenFileOutput{Success: true, Path: input.Path}, nil
}
