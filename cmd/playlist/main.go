package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-playlist/internal/config"
	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
)

const (
	defaultConfigPath = "~/.playlist.yaml"
)

// Application содержит состояние приложения, общее для всех команд
type Application struct {
	Config   *config.Config
	Playlist *playlist.Playlist

	flags rootFlags
}

// rootFlags - флаги корневой команды, общие для подкоманд
type rootFlags struct {
	configPath string
	seedPath   string
	noSeed     bool
	files      []string
	urls       []string
	useS3      bool
	s3Prefix   string
	youtubeRef string
}

// NewApplication создает приложение с настройками по умолчанию
func NewApplication() *Application {
	return &Application{
		flags: rootFlags{configPath: defaultConfigPath},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApplication()
	rootCmd := app.createRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logging.Fatal("%v", err)
	}
}
