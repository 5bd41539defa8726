// Package cli is the command tree of the file-grouper binary. Without a
// subcommand it starts the desktop UI; list, open and mcp drive the same
// bridge handlers from a terminal or an MCP client.
package cli
