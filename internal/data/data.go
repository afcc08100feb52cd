// Package data содержит стартовый набор треков, которым заполняется плейлист при запуске
package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// Seed - стартовый набор треков
type Seed struct {
	Tracks []playlist.Track `yaml:"tracks"`
}

// DefaultSeed возвращает встроенный демонстрационный набор
func DefaultSeed() *Seed {
	return &Seed{
		Tracks: []playlist.Track{
			{ID: 1, Title: "Bohemian Rhapsody", Artist: "Queen", Album: "A Night at the Opera", Duration: 355},
			{ID: 2, Title: "Hotel California", Artist: "Eagles", Album: "Hotel California", Duration: 391},
			{ID: 3, Title: "Sweet Child O' Mine", Artist: "Guns N' Roses", Album: "Appetite for Destruction", Duration: 356},
			{ID: 4, Title: "Stairway to Heaven", Artist: "Led Zeppelin", Album: "Led Zeppelin IV", Duration: 482},
			{ID: 5, Title: "Imagine", Artist: "John Lennon", Album: "Imagine", Duration: 183},
		},
	}
}

// LoadSeed загружает набор треков из YAML файла
func LoadSeed(filePath string) (*Seed, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла треков: %w", err)
	}

	seed := &Seed{}
	if len(raw) == 0 {
		return seed, nil
	}
	if err := yaml.Unmarshal(raw, seed); err != nil {
		return nil, fmt.Errorf("ошибка разбора файла треков: %w", err)
	}
	return seed, nil
}

// Apply добавляет треки набора в конец плейлиста.
// Треки без ID получают следующий свободный ID. Возвращает количество добавленных треков.
func (s *Seed) Apply(p *playlist.Playlist) (int, error) {
	added := 0
	for _, track := range s.Tracks {
		if track.ID == 0 {
			track.ID = p.NextID()
		}
		if _, err := p.InsertEnd(track); err != nil {
			return added, fmt.Errorf("ошибка добавления трека %q: %w", track.Title, err)
		}
		added++
	}
	return added, nil
}
