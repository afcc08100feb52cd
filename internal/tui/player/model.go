// Package player содержит модель экрана воспроизведения для TUI
package player

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)
)

// seekStep шаг перемотки стрелками
const seekStep = 10

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// TickMsg продвигает имитируемую позицию воспроизведения на одну секунду.
// Тик относится к экрану, который его запланировал.
type TickMsg struct {
	generation int64
}

// generations выдает номера экранам плеера
var generations atomic.Int64

// Model представляет модель экрана воспроизведения
type Model struct {
	playlist    *playlist.Playlist
	progressBar progress.Model
	interval    time.Duration
	generation  int64
	err         error
	width       int
	height      int
}

// NewModel создает новую модель плеера поверх плейлиста
func NewModel(p *playlist.Playlist) *Model {
	// Создаем прогресс-бар
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		playlist:    p,
		progressBar: prog,
		interval:    time.Second,
		generation:  generations.Add(1),
	}
}

// Init запускает часы воспроизведения
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Обновляем ширину прогресс-бара
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case " ":
			m.togglePause()
			return m, m.syncProgress()

		case "n":
			_, m.err = m.playlist.Next()
			return m, m.syncProgress()

		case "p":
			_, m.err = m.playlist.Previous()
			return m, m.syncProgress()

		case "s":
			m.err = m.playlist.Stop()
			return m, m.syncProgress()

		case "right":
			m.err = m.playlist.Seek(m.playlist.Status().Position + seekStep)
			return m, m.syncProgress()

		case "left":
			m.err = m.playlist.Seek(m.playlist.Status().Position - seekStep)
			return m, m.syncProgress()
		}

	case TickMsg:
		if msg.generation != m.generation {
			// Тик закрытого ранее экрана не должен запускать вторые часы
			return m, nil
		}
		m.advance()
		return m, tea.Batch(m.syncProgress(), m.tick())

	case progress.FrameMsg:
		// Обновляем прогресс-бар
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// advance продвигает позицию играющего трека. В конце трека
// переходит к следующему, а на последнем треке останавливается.
// Трек неизвестной длительности играет, пока его не переключат.
func (m *Model) advance() {
	status := m.playlist.Status()
	if !status.IsPlaying || status.Current == nil || status.Current.Duration == 0 {
		return
	}

	if status.Position < status.Current.Duration {
		m.err = m.playlist.Seek(status.Position + 1)
		return
	}

	if _, err := m.playlist.Next(); err != nil {
		if errors.Is(err, playlist.ErrBoundaryReached) {
			m.err = m.playlist.Stop()
			return
		}
		m.err = err
	}
}

// togglePause ставит на паузу или продолжает с сохраненной позиции
func (m *Model) togglePause() {
	status := m.playlist.Status()
	if status.IsPlaying {
		m.err = m.playlist.Pause()
		return
	}

	position := status.Position
	if _, m.err = m.playlist.PlayCurrent(); m.err == nil {
		m.err = m.playlist.Seek(position)
	}
}

// percent возвращает долю проигранного текущего трека
func (m *Model) percent() float64 {
	status := m.playlist.Status()
	if status.Current == nil || status.Current.Duration == 0 {
		return 0
	}
	return float64(status.Position) / float64(status.Current.Duration)
}

// syncProgress приводит прогресс-бар к позиции плейлиста
func (m *Model) syncProgress() tea.Cmd {
	return m.progressBar.SetPercent(m.percent())
}

// tick планирует следующий тик часов
func (m *Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{generation: generation}
	})
}

// View отображает модель
func (m *Model) View() string {
	status := m.playlist.Status()
	if status.Current == nil {
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("🎵 Воспроизведение"),
			errorStyle.Render("Трек не выбран или плейлист пуст"),
			controlsStyle.Render("Нажмите 'q' или 'esc' для возврата"),
		)
	}

	// Заголовок
	title := titleStyle.Render(fmt.Sprintf("🎵 Воспроизведение • трек %d из %d",
		m.playlist.CurrentIndex(), m.playlist.Len()))

	// Информация о треке
	track := status.Current
	trackInfo := trackInfoStyle.Render(fmt.Sprintf(
		"🎤 %s\n🎵 %s\n💿 %s",
		track.Artist,
		track.Title,
		track.Album,
	))

	// Статус воспроизведения
	statusIcon := "⏸️"
	if status.IsPlaying {
		statusIcon = "▶️"
	}
	statusText := statusStyle.Render(fmt.Sprintf("%s %s", statusIcon, formatStatus(status.IsPlaying)))

	// Прогресс-бар
	progressView := m.progressBar.ViewAs(m.percent())

	// Время
	timeText := fmt.Sprintf(
		"%s / %s",
		utils.FormatSeconds(status.Position),
		formatTotal(track.Duration),
	)

	view := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n%s",
		title,
		trackInfo,
		statusText,
		progressView,
		timeText,
	)

	if m.err != nil {
		view += "\n\n" + errorStyle.Render(m.err.Error())
	}

	// Элементы управления
	controls := controlsStyle.Render(
		"Пробел: пауза/воспроизведение • n/p: след./пред. • ←/→: перемотка • s: стоп • q/esc: назад",
	)
	return view + "\n\n" + controls
}

// Вспомогательные функции

func formatTotal(duration int) string {
	if duration == 0 {
		return "--:--"
	}
	return utils.FormatSeconds(duration)
}

func formatStatus(isPlaying bool) string {
	if isPlaying {
		return "Воспроизведение"
	}
	return "Пауза"
}
