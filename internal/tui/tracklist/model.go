// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	errorStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("196"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackSelectedMsg отправляется, когда выбранный трек стал текущим и запущен
type TrackSelectedMsg struct {
	Track playlist.Track
}

// AddTrackMsg отправляется при запросе формы добавления трека
type AddTrackMsg struct{}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track   playlist.Track
	current bool
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.track.Artist, i.track.Title)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderRow(i, index == m.Index()))
}

// renderRow форматирует строку: маркер текущего трека | ID | Исполнитель | Название | Длительность
func renderRow(i trackItem, selected bool) string {
	marker := " "
	if i.current {
		marker = ">"
	}

	str := fmt.Sprintf("%s %s %s %s %s",
		marker,
		utils.PadRight(fmt.Sprint(i.track.ID), 4),
		utils.PadRight(i.track.Artist, 20),
		utils.PadRight(i.track.Title, 40),
		utils.FormatSeconds(i.track.Duration))

	if selected {
		return selectedItemStyle.Render(str)
	}
	return itemStyle.Render(str)
}

// Model представляет модель экрана списка треков
type Model struct {
	list     list.Model
	playlist *playlist.Playlist
	status   string
	err      string
	quitting bool
}

// NewModel создает новую модель списка треков
func NewModel(p *playlist.Playlist) *Model {
	l := list.New(nil, trackItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	// Буквы заняты командами плейлиста
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		list:     l,
		playlist: p,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData перечитывает треки из плейлиста без пересоздания списка
func (m *Model) RefreshData() {
	tracks := m.playlist.Tracks()
	currentIndex := m.playlist.CurrentIndex()

	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t, current: i+1 == currentIndex}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("Плейлист • %d треков • %s",
		len(tracks), utils.FormatDuration(time.Duration(m.playlist.TotalDuration())*time.Second))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для статуса и справки
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			item, ok := m.selected()
			if !ok {
				return m, nil
			}
			track, err := m.playlist.JumpTo(item.track.ID)
			if m.apply(err, "▶️  Играет: "+track.Title) {
				return m, func() tea.Msg {
					return TrackSelectedMsg{Track: track}
				}
			}
			return m, nil

		case "n":
			track, err := m.playlist.Next()
			m.apply(err, "▶️  Играет: "+track.Title)
			return m, nil

		case "p":
			track, err := m.playlist.Previous()
			m.apply(err, "▶️  Играет: "+track.Title)
			return m, nil

		case " ":
			m.togglePause()
			return m, nil

		case "s":
			m.apply(m.playlist.Stop(), "⏹️  Остановлено")
			return m, nil

		case "x":
			m.apply(m.playlist.Shuffle(), "🔀 Плейлист перемешан")
			m.list.Select(0)
			return m, nil

		case "r":
			m.playlist.Reverse()
			m.apply(nil, "🔁 Плейлист развернут")
			return m, nil

		case "d":
			item, ok := m.selected()
			if !ok {
				return m, nil
			}
			removed, err := m.playlist.RemoveByID(item.track.ID)
			m.apply(err, "🗑️  Удален: "+removed.Title)
			return m, nil

		case "a":
			return m, func() tea.Msg {
				return AddTrackMsg{}
			}
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// togglePause ставит на паузу или запускает текущий трек с сохраненной позиции
func (m *Model) togglePause() {
	status := m.playlist.Status()
	if status.IsPlaying {
		m.apply(m.playlist.Pause(), "⏸️  Пауза")
		return
	}

	if status.Current == nil {
		m.apply(playlist.ErrNoCurrentTrack, "")
		return
	}
	// Возобновляем с прежней позиции
	position := status.Position
	track, err := m.playlist.PlayCurrent()
	if err == nil {
		err = m.playlist.Seek(position)
	}
	m.apply(err, "▶️  Играет: "+track.Title)
}

// apply обновляет строку статуса по результату операции и перечитывает данные.
// Возвращает true, если операция прошла успешно.
func (m *Model) apply(err error, success string) bool {
	m.RefreshData()
	if err != nil {
		m.status = ""
		m.err = describe(err)
		logging.Debug("Операция в списке треков: %v", err)
		return false
	}
	m.err = ""
	m.status = success
	return true
}

// selected возвращает выбранный элемент списка
func (m *Model) selected() (trackItem, bool) {
	item, ok := m.list.SelectedItem().(trackItem)
	return item, ok
}

// describe формирует сообщение об ошибке для строки статуса
func describe(err error) string {
	switch {
	case errors.Is(err, playlist.ErrNoCurrentTrack):
		return "Трек не выбран или плейлист пуст"
	case errors.Is(err, playlist.ErrNotPlaying):
		return "Сейчас ничего не воспроизводится"
	case errors.Is(err, playlist.ErrInsufficientTracks):
		return "Для перемешивания нужно минимум 2 трека"
	default:
		return err.Error()
	}
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")

	switch {
	case m.err != "":
		b.WriteString(errorStyle.Render("⚠️  " + m.err))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(
		"Enter: играть • n/p: след./пред. • пробел: пауза • s: стоп • x: перемешать • r: развернуть • d: удалить • a: добавить • q: выход"))
	return b.String()
}
