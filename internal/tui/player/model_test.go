package player

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// newPlaylist создает плейлист из двух коротких треков
func newPlaylist(t *testing.T) *playlist.Playlist {
	t.Helper()

	p := playlist.New()
	for _, track := range []playlist.Track{
		{ID: 1, Artist: "Test Artist", Title: "First", Album: "Test Album", Duration: 2},
		{ID: 2, Artist: "Test Artist", Title: "Second", Album: "Test Album", Duration: 3},
	} {
		if _, err := p.InsertEnd(track); err != nil {
			t.Fatalf("Ошибка добавления трека: %v", err)
		}
	}
	return p
}

// tickMsg возвращает тик, принадлежащий модели
func (m *Model) tickMsg() TickMsg {
	return TickMsg{generation: m.generation}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormatStatus(t *testing.T) {
	if formatStatus(true) != "Воспроизведение" {
		t.Error("Ожидалось 'Воспроизведение' для статуса воспроизведения")
	}
	if formatStatus(false) != "Пауза" {
		t.Error("Ожидалось 'Пауза' для статуса паузы")
	}
}

func TestUpdateWindowSize(t *testing.T) {
	model := NewModel(newPlaylist(t))

	updatedModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	playerModel := updatedModel.(*Model)

	if playerModel.width != 100 || playerModel.height != 40 {
		t.Errorf("Ожидался размер 100x40, получено %dx%d", playerModel.width, playerModel.height)
	}
	if playerModel.progressBar.Width != 60 {
		t.Errorf("Ожидалась ширина прогресс-бара 60, получено %d", playerModel.progressBar.Width)
	}
}

func TestTickAdvancesAndMovesToNextTrack(t *testing.T) {
	p := newPlaylist(t)
	if _, err := p.PlayCurrent(); err != nil {
		t.Fatalf("Ошибка воспроизведения: %v", err)
	}
	model := NewModel(p)

	// Два тика доводят до конца первого трека, третий переключает на следующий
	for i := 0; i < 3; i++ {
		model.Update(model.tickMsg())
	}

	status := p.Status()
	if status.Current == nil || status.Current.ID != 2 {
		t.Fatalf("Ожидался трек 2, получено %+v", status.Current)
	}
	if status.Position != 0 || !status.IsPlaying {
		t.Errorf("Ожидалось воспроизведение с начала, получено %+v", status)
	}
}

func TestTickStopsAtLastTrack(t *testing.T) {
	p := newPlaylist(t)
	if _, err := p.JumpTo(2); err != nil {
		t.Fatalf("Ошибка перехода: %v", err)
	}
	model := NewModel(p)

	for i := 0; i < 5; i++ {
		model.Update(model.tickMsg())
	}

	status := p.Status()
	if status.IsPlaying || status.Position != 0 {
		t.Errorf("Ожидалась остановка в конце плейлиста, получено %+v", status)
	}
	if model.err != nil {
		t.Errorf("Остановка в конце не должна быть ошибкой: %v", model.err)
	}
}

func TestTickIgnoredWhenPaused(t *testing.T) {
	p := newPlaylist(t)
	model := NewModel(p)

	model.Update(model.tickMsg())
	if p.Status().Position != 0 {
		t.Error("Позиция не должна меняться без воспроизведения")
	}
}

func TestKeyHandling(t *testing.T) {
	p := newPlaylist(t)
	model := NewModel(p)

	// Пробел запускает воспроизведение
	model.Update(key(" "))
	if !p.Status().IsPlaying {
		t.Fatal("Ожидалось воспроизведение после пробела")
	}

	model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model.Update(tea.KeyMsg{Type: tea.KeyRight})
	if p.Status().Position != 2 {
		t.Errorf("Перемотка должна ограничиваться длительностью, позиция %d", p.Status().Position)
	}

	// Пауза и продолжение сохраняют позицию
	model.Update(key(" "))
	model.Update(key(" "))
	if status := p.Status(); !status.IsPlaying || status.Position != 2 {
		t.Errorf("Ожидалось продолжение с позиции 2, получено %+v", status)
	}

	model.Update(key("n"))
	if current, _ := p.Current(); current.ID != 2 {
		t.Errorf("Ожидался трек 2, получено %d", current.ID)
	}

	model.Update(key("n"))
	if model.err == nil {
		t.Error("Ожидалась ошибка на последнем треке")
	}

	model.Update(key("s"))
	if p.Status().IsPlaying {
		t.Error("Ожидалась остановка")
	}

	_, cmd := model.Update(key("q"))
	if cmd == nil {
		t.Fatal("Ожидалась команда для клавиши 'q'")
	}
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Error("Ожидалось сообщение GoBackMsg")
	}
}

func TestView(t *testing.T) {
	empty := NewModel(playlist.New())
	if !strings.Contains(empty.View(), "Трек не выбран") {
		t.Error("Ожидалось сообщение о пустом плейлисте")
	}

	p := newPlaylist(t)
	if _, err := p.PlayCurrent(); err != nil {
		t.Fatalf("Ошибка воспроизведения: %v", err)
	}
	view := NewModel(p).View()

	for _, want := range []string{"First", "Test Artist", "трек 1 из 2", "00:00 / 00:02", "Воспроизведение"} {
		if !strings.Contains(view, want) {
			t.Errorf("В отображении нет %q", want)
		}
	}
}

func TestTickUnknownDurationDoesNotAdvance(t *testing.T) {
	p := playlist.New()
	for id := 1; id <= 3; id++ {
		if _, err := p.InsertEnd(playlist.Track{ID: id, Title: "Stream"}); err != nil {
			t.Fatalf("Ошибка добавления трека: %v", err)
		}
	}
	if _, err := p.PlayCurrent(); err != nil {
		t.Fatalf("Ошибка воспроизведения: %v", err)
	}
	model := NewModel(p)

	for i := 0; i < 3; i++ {
		model.Update(model.tickMsg())
	}

	status := p.Status()
	if status.Current == nil || status.Current.ID != 1 || !status.IsPlaying {
		t.Errorf("Трек без длительности должен продолжать играть, получено %+v", status)
	}
	if !strings.Contains(model.View(), "00:00 / --:--") {
		t.Error("Неизвестная длительность должна отображаться как --:--")
	}
}

func TestTickFromOtherModelIgnored(t *testing.T) {
	p := newPlaylist(t)
	if _, err := p.PlayCurrent(); err != nil {
		t.Fatalf("Ошибка воспроизведения: %v", err)
	}
	closed := NewModel(p)
	model := NewModel(p)

	_, cmd := model.Update(closed.tickMsg())
	if cmd != nil {
		t.Error("Чужой тик не должен планировать новый")
	}
	if p.Status().Position != 0 {
		t.Errorf("Чужой тик не должен двигать позицию, получено %d", p.Status().Position)
	}

	_, cmd = model.Update(model.tickMsg())
	if cmd == nil || p.Status().Position != 1 {
		t.Errorf("Свой тик должен двигать позицию, получено %d", p.Status().Position)
	}
}
