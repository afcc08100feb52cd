package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazadus/go-playlist/internal/playlist"
)

func TestDefaultSeed(t *testing.T) {
	p := playlist.New()

	added, err := DefaultSeed().Apply(p)
	if err != nil {
		t.Fatalf("Ошибка применения набора: %v", err)
	}
	if added != 5 || p.Len() != 5 {
		t.Errorf("Ожидалось 5 треков, добавлено %d, в плейлисте %d", added, p.Len())
	}

	current, err := p.Current()
	if err != nil {
		t.Fatalf("Ожидался текущий трек: %v", err)
	}
	if current.Title != "Bohemian Rhapsody" {
		t.Errorf("Ожидался первый трек Bohemian Rhapsody, получено %s", current.Title)
	}
}

func TestLoadSeed(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	content := `tracks:
  - id: 10
    title: "Paranoid Android"
    artist: "Radiohead"
    album: "OK Computer"
    duration: 387
  - title: "Karma Police"
    artist: "Radiohead"
    album: "OK Computer"
    duration: 264
`
	if err := os.WriteFile(seedPath, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	seed, err := LoadSeed(seedPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки набора: %v", err)
	}
	if len(seed.Tracks) != 2 {
		t.Fatalf("Ожидалось 2 трека, получено %d", len(seed.Tracks))
	}

	p := playlist.New()
	if _, err := seed.Apply(p); err != nil {
		t.Fatalf("Ошибка применения набора: %v", err)
	}

	tracks := p.Tracks()
	if tracks[0].ID != 10 || tracks[0].Duration != 387 {
		t.Errorf("Неверный первый трек: %+v", tracks[0])
	}
	// Трек без ID получает следующий свободный
	if tracks[1].ID != 11 {
		t.Errorf("Ожидался ID 11, получено %d", tracks[1].ID)
	}
}

func TestLoadSeedEmptyFile(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(seedPath, nil, 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	seed, err := LoadSeed(seedPath)
	if err != nil {
		t.Fatalf("Пустой файл не должен быть ошибкой: %v", err)
	}
	if len(seed.Tracks) != 0 {
		t.Errorf("Ожидался пустой набор, получено %d треков", len(seed.Tracks))
	}
}

func TestLoadSeedErrors(t *testing.T) {
	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Ожидалась ошибка для отсутствующего файла")
	}

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badPath, []byte("tracks: [unclosed"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	if _, err := LoadSeed(badPath); err == nil {
		t.Error("Ожидалась ошибка для некорректного YAML")
	}
}

func TestApplyStopsOnError(t *testing.T) {
	seed := &Seed{Tracks: []playlist.Track{
		{ID: 1, Title: "ok"},
		{ID: 2, Title: "broken", Duration: -1},
		{ID: 3, Title: "never"},
	}}

	p := playlist.New()
	added, err := seed.Apply(p)
	if !errors.Is(err, playlist.ErrInvalidDuration) {
		t.Fatalf("Ожидалась ErrInvalidDuration, получено %v", err)
	}
	if added != 1 || p.Len() != 1 {
		t.Errorf("Ожидался 1 добавленный трек, добавлено %d", added)
	}
}
