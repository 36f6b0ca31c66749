package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hostcache/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entry...]",
		Short: "Compile entry points and record their dependency graph",
		Long: "Compile the given entry points, or every configured entry point when none are given.\n" +
			"Manifests and the build graph are saved under .hostcache.",
		RunE: func(cmd *cobra.Command, args []string) error {
			noSave, _ := cmd.Flags().GetBool("no-save")
			return c.app.Build(cmd.Context(), args, app.BuildOptions{NoSave: noSave})
		},
	}

	cmd.Flags().Bool("no-save", false, "Do not write manifests or the build graph")

	return cmd
}
