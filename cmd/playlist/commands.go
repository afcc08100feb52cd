package main

import (
	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами.
// Без подкоманды запускается интерактивная оболочка.
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "playlist",
		Short: "Interactive in-memory music playlist manager",
		Long: `Manage an in-memory music playlist: add, remove, reorder and navigate tracks
from an interactive shell or a terminal user interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.bootstrap(cmd.Context(), cmd.OutOrStdout())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.flags.configPath, "config", "c", app.flags.configPath, "path to YAML config file")
	flags.StringVar(&app.flags.seedPath, "seed", "", "YAML file with initial tracks (overrides seed_file from config)")
	flags.BoolVar(&app.flags.noSeed, "no-seed", false, "start with an empty playlist")
	flags.StringArrayVarP(&app.flags.files, "file", "f", nil, "append a local audio file (repeatable)")
	flags.StringArrayVarP(&app.flags.urls, "url", "u", nil, "append an audio file by HTTP(S) URL (repeatable)")
	flags.BoolVar(&app.flags.useS3, "s3", false, "append audio objects from the configured S3 bucket")
	flags.StringVar(&app.flags.s3Prefix, "s3-prefix", "", "key prefix for --s3 import")
	flags.StringVar(&app.flags.youtubeRef, "youtube", "", "append entries of a YouTube playlist or video")

	// Добавляем команды, передавая в них экземпляр приложения
	rootCmd.AddCommand(app.createShellCommand())
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createListCommand())

	return rootCmd
}
