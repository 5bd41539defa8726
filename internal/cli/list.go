package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ytget/file-grouper/internal/bridge"
	"github.com/ytget/file-grouper/internal/model"
)

type listOptions struct {
	groups    bool
	minPrefix int
}

func newListCommand(newBridge func() *bridge.Bridge) *cobra.Command {
	opts := listOptions{}

	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "Print the folders and files directly inside a directory",
		Long: `list runs read_directory and prints its JSON envelope:
{"ok":true,"data":{"folders":[...],"files":[...]}} or {"ok":false,"error":"..."}.`,
		Example: `file-grouper list ~/Videos
file-grouper list ~/Videos --groups --min-prefix 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runList(cmd.Context(), newBridge(), args[0], opts)
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.groups, "groups", false, "also print files grouped by common name prefix")
	cmd.Flags().IntVar(&opts.minPrefix, "min-prefix", model.DefaultMinGroupPrefix, "shortest prefix that groups files")
	return cmd
}

// runList returns the envelope to print and the handler error, if any
func runList(ctx context.Context, b *bridge.Bridge, path string, opts listOptions) ([]byte, error) {
	result, err := b.Invoke(ctx, bridge.HandlerReadDirectory, bridge.PathArgs(path))
	out := bridge.Envelope(result, err)
	if err != nil || !opts.groups {
		return out, err
	}

	var files []string
	for _, f := range gjson.GetBytes(result, "files").Array() {
		files = append(files, f.String())
	}

	groups := model.GroupFilesByPrefix(files, opts.minPrefix)
	withGroups, setErr := sjson.SetBytes(out, "data.groups", groups)
	if setErr != nil {
		return out, fmt.Errorf("cannot encode groups: %w", setErr)
	}
	return withGroups, nil
}
