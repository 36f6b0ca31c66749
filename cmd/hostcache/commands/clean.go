package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hostcache/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, _ := cmd.Flags().GetBool("artifacts")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Artifacts: artifacts})
		},
	}

	cmd.Flags().BoolP("artifacts", "a", false, "Also remove emitted artifacts from the output directory")

	return cmd
}
