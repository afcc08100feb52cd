package playlist

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// MaxTextLength - максимальная длина названия, исполнителя и альбома в символах
const MaxTextLength = 99

// Track - одна запись плейлиста
type Track struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Album    string `yaml:"album"`
	Duration int    `yaml:"duration"` // Длительность в секундах
}

// TextPolicy определяет, что делать со слишком длинными текстовыми полями
type TextPolicy int

const (
	// TruncatePolicy обрезает текст до MaxTextLength символов
	TruncatePolicy TextPolicy = iota
	// RejectPolicy отклоняет трек с ErrTextTooLong
	RejectPolicy
)

// String возвращает имя политики в том виде, в каком оно пишется в конфигурации
func (p TextPolicy) String() string {
	switch p {
	case TruncatePolicy:
		return "truncate"
	case RejectPolicy:
		return "reject"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParseTextPolicy разбирает имя политики из конфигурации
func ParseTextPolicy(s string) (TextPolicy, error) {
	switch s {
	case "", "truncate":
		return TruncatePolicy, nil
	case "reject":
		return RejectPolicy, nil
	default:
		return TruncatePolicy, fmt.Errorf("неизвестная политика текста: %q", s)
	}
}

// normalize проверяет трек и приводит текстовые поля к допустимой длине.
// Вызывается до любых изменений структуры.
func (p TextPolicy) normalize(t Track) (Track, error) {
	if t.Duration < 0 {
		return Track{}, fmt.Errorf("%w: %d", ErrInvalidDuration, t.Duration)
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"title", &t.Title},
		{"artist", &t.Artist},
		{"album", &t.Album},
	}
	for _, f := range fields {
		bounded, cut := truncateGraphemes(*f.value, MaxTextLength)
		if !cut {
			continue
		}
		if p == RejectPolicy {
			return Track{}, fmt.Errorf("%w: поле %s длиннее %d символов", ErrTextTooLong, f.name, MaxTextLength)
		}
		*f.value = bounded
	}
	return t, nil
}

// truncateGraphemes оставляет не более limit графем и сообщает, было ли обрезание
func truncateGraphemes(s string, limit int) (string, bool) {
	if len(s) <= limit {
		// Каждая графема занимает хотя бы один байт
		return s, false
	}
	gr := uniseg.NewGraphemes(s)
	count := 0
	for gr.Next() {
		if count == limit {
			start, _ := gr.Positions()
			return s[:start], true
		}
		count++
	}
	return s, false
}
