package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/shell"
)

// createShellCommand создает команду shell с привязкой к экземпляру приложения
func (app *Application) createShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start interactive command shell (default)",
		Long:  `Read playlist commands line by line from standard input. Type 'help' for the list of commands.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(cmd)
		},
	}
}

func (app *Application) runShell(cmd *cobra.Command) error {
	sh := shell.New(app.Playlist, cmd.InOrStdin(), cmd.OutOrStdout())
	return sh.Run(cmd.Context())
}
