// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/tui/app"
)

// DebugLogFile - файл журнала на время работы TUI при уровне debug
const DebugLogFile = "playlist-debug.log"

// App представляет основное TUI приложение
type App struct {
	playlist *playlist.Playlist
	logPath  string
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(p *playlist.Playlist) *App {
	return &App{playlist: p, logPath: DebugLogFile}
}

// Model возвращает корневую модель Bubble Tea для плейлиста
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.playlist)
}

// Run запускает TUI приложение. Пока работает программа, журнал не пишется
// в терминал: при уровне debug он уходит в файл, иначе отбрасывается.
func (tuiApp *App) Run() error {
	restore, err := redirectLogs(tuiApp.logPath)
	if err != nil {
		return err
	}
	defer restore()

	p := tea.NewProgram(tuiApp.Model(), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// redirectLogs уводит журнал с экрана и возвращает функцию восстановления
func redirectLogs(path string) (func(), error) {
	previous := logging.Output()

	if !logging.IsDebugEnabled() {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(previous) }, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия журнала отладки: %w", err)
	}
	logging.SetOutput(file)
	return func() {
		logging.SetOutput(previous)
		file.Close()
	}, nil
}
