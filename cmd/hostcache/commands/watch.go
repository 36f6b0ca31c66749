package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hostcache/internal/adapters/watcher"
	"go.trai.ch/hostcache/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild affected entry points when files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), app.WatchOptions{Debounce: debounce})
		},
	}

	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period before a batch of changes is rebuilt")

	return cmd
}
