package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/file-grouper/internal/bridge"
)

func newOpenCommand(newBridge func() *bridge.Bridge) *cobra.Command {
	return &cobra.Command{
		Use:     "open <path>",
		Short:   "Open a file with the system's default application",
		Example: `file-grouper open ~/Videos/clip01.mp4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newBridge().Invoke(cmd.Context(), bridge.HandlerOpenFile, bridge.PathArgs(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), string(bridge.Envelope(result, err)))
			return err
		},
	}
}
