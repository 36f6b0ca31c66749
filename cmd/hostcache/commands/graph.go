package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hostcache/internal/app"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the last recorded build graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Graph(cmd.Context(), cmd.OutOrStdout(), app.GraphOptions{Format: format})
		},
	}

	cmd.Flags().StringP("format", "f", app.FormatText, "Output format (text, dot)")

	return cmd
}
