package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/shell"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the initial playlist and exit",
		Long:  `Build the playlist from seed and import flags, print it as a table and exit.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			shell.WriteTable(cmd.OutOrStdout(), app.Playlist)
		},
	}
}
