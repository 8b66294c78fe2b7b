package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/framegraph/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dest> <orig>",
		Short: "Follow a transform as the scene file changes on disk",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenePath, _ := cmd.Flags().GetString("scene")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ScenePath: scenePath,
				Dest:      args[0],
				Orig:      args[1],
			})
		},
	}
	cmd.Flags().StringP("scene", "s", "scene.yaml", "Path to the scene file")
	return cmd
}
