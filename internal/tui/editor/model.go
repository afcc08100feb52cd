// Package editor содержит модель экрана добавления трека в плейлист для TUI
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// TrackAddedMsg отправляется, когда трек добавлен в плейлист
type TrackAddedMsg struct {
	Track    playlist.Track
	Position int
}

// GoBackMsg отправляется при отмене добавления
type GoBackMsg struct{}

// fieldType определяет тип поля формы
type fieldType int

const (
	idField fieldType = iota
	titleField
	artistField
	albumField
	durationField
	positionField
	numFields
)

var labels = [numFields]string{"ID:", "Название:", "Исполнитель:", "Альбом:", "Длительность:", "Позиция:"}

// Model представляет модель экрана добавления трека
type Model struct {
	playlist   *playlist.Playlist
	inputs     []textinput.Model
	focusIndex int
	err        string
}

// NewModel создает форму добавления трека. ID и позиция заполняются
// следующим свободным ID и концом плейлиста.
func NewModel(p *playlist.Playlist) *Model {
	inputs := make([]textinput.Model, numFields)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}

	inputs[idField].Placeholder = "Числовой ID"
	inputs[idField].SetValue(strconv.Itoa(p.NextID()))

	inputs[titleField].Placeholder = "Введите название трека"
	inputs[titleField].CharLimit = playlist.MaxTextLength * 4

	inputs[artistField].Placeholder = "Введите исполнителя"
	inputs[artistField].CharLimit = playlist.MaxTextLength * 4

	inputs[albumField].Placeholder = "Введите название альбома"
	inputs[albumField].CharLimit = playlist.MaxTextLength * 4

	inputs[durationField].Placeholder = "Длительность в секундах"
	inputs[durationField].SetValue("0")

	inputs[positionField].Placeholder = fmt.Sprintf("От 1 до %d", p.Len()+1)
	inputs[positionField].SetValue(strconv.Itoa(p.Len() + 1))

	m := &Model{
		playlist: p,
		inputs:   inputs,
	}
	m.focus(0)
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Отменяем добавление
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.submit()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				// Enter на кнопке сохранения
				return m, m.submit()
			}

			// Перемещение фокуса
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.focus(m.focusIndex)
		}

	case tea.WindowSizeMsg:
		// Обновляем ширину полей ввода
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	// Обновляем активное поле ввода
	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

// focus переводит фокус на поле с индексом index
func (m *Model) focus(index int) tea.Cmd {
	m.focusIndex = index
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == index {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = blurredStyle
		m.inputs[i].TextStyle = blurredStyle
	}
	return tea.Batch(cmds...)
}

// value возвращает очищенное значение поля
func (m *Model) value(field fieldType) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// submit проверяет поля и вставляет трек. При ошибке форма остается открытой.
func (m *Model) submit() tea.Cmd {
	id, err := strconv.Atoi(m.value(idField))
	if err != nil {
		m.err = "ID должен быть числом"
		return nil
	}

	title := m.value(titleField)
	if title == "" {
		m.err = "Поле 'Название' не может быть пустым"
		return nil
	}

	duration, err := strconv.Atoi(m.value(durationField))
	if err != nil || duration < 0 {
		m.err = "Длительность должна быть неотрицательным числом"
		return nil
	}

	position, err := strconv.Atoi(m.value(positionField))
	if err != nil {
		m.err = "Позиция должна быть числом"
		return nil
	}

	track, err := m.playlist.InsertAt(position, playlist.Track{
		ID:       id,
		Title:    title,
		Artist:   m.value(artistField),
		Album:    m.value(albumField),
		Duration: duration,
	})
	if err != nil {
		m.err = m.describe(err)
		return nil
	}

	m.err = ""
	return func() tea.Msg {
		return TrackAddedMsg{Track: track, Position: position}
	}
}

// describe формирует сообщение об ошибке плейлиста
func (m *Model) describe(err error) string {
	if errors.Is(err, playlist.ErrInvalidPosition) {
		return fmt.Sprintf("Позиция должна быть от 1 до %d", m.playlist.Len()+1)
	}
	return "Ошибка добавления трека: " + err.Error()
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	// Заголовок
	b.WriteString(titleStyle.Render(fmt.Sprintf("Новый трек • в плейлисте %d", m.playlist.Len())))
	b.WriteString("\n\n")

	// Поля ввода
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	// Кнопка сохранения
	saveButton := "[ Добавить ]"
	if m.focusIndex == len(m.inputs) {
		saveButton = focusedStyle.Render(saveButton)
	} else {
		saveButton = blurredStyle.Render(saveButton)
	}
	b.WriteString(saveButton)
	b.WriteString("\n\n")

	// Сообщение об ошибке
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	// Справка
	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: добавить • Esc: отмена"))

	return b.String()
}
