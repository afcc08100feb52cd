// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/tui/editor"
	tuiPlayer "github.com/hazadus/go-playlist/internal/tui/player"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// PlayerScreen - экран плеера
	PlayerScreen
	// EditorScreen - экран добавления трека
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	playlist       *playlist.Playlist
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	playerModel    *tuiPlayer.Model
	editorModel    *editor.Model
	width          int
	height         int
}

// NewMainModel создает новую главную модель
func NewMainModel(p *playlist.Playlist) *MainModel {
	return &MainModel{
		playlist:       p,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(p),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tracklist.TrackSelectedMsg:
		// Переключаемся на экран плеера
		logging.Debug("Открываем плеер для трека %d", msg.Track.ID)
		m.currentScreen = PlayerScreen
		m.playerModel = tuiPlayer.NewModel(m.playlist)
		return m, tea.Batch(m.playerModel.Init(), m.resize())

	case tracklist.AddTrackMsg:
		// Переключаемся на форму добавления трека
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.playlist)
		return m, tea.Batch(m.editorModel.Init(), m.resize())

	case tuiPlayer.GoBackMsg:
		m.showTracklist()
		m.playerModel = nil
		return m, nil

	case editor.GoBackMsg:
		m.showTracklist()
		m.editorModel = nil
		return m, nil

	case editor.TrackAddedMsg:
		logging.Info("Добавлен трек %d: %s", msg.Track.ID, msg.Track.Title)
		m.showTracklist()
		m.editorModel = nil
		return m, nil

	case tuiPlayer.TickMsg:
		// Тики старого экрана плеера после возврата к списку игнорируются
		if m.currentScreen != PlayerScreen || m.playerModel == nil {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case PlayerScreen:
		if m.playerModel != nil {
			var updatedModel tea.Model
			updatedModel, cmd = m.playerModel.Update(msg)
			if playerModel, ok := updatedModel.(*tuiPlayer.Model); ok {
				m.playerModel = playerModel
			}
		}

	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}

	return m, cmd
}

// showTracklist возвращает к списку треков с актуальными данными
func (m *MainModel) showTracklist() {
	m.currentScreen = TracklistScreen
	m.tracklistModel.RefreshData()
}

// resize передает известный размер окна новому экрану
func (m *MainModel) resize() tea.Cmd {
	if m.width == 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	return func() tea.Msg { return size }
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case PlayerScreen:
		if m.playerModel != nil {
			return m.playerModel.View()
		}
		return "Ошибка: модель плеера не инициализирована"

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
