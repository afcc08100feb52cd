// Package youtube читает плейлисты и видео YouTube для импорта в плейлист
package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
)

// Client часть клиента YouTube, нужная для чтения
type Client interface {
	GetPlaylistContext(ctx context.Context, url string) (*youtube.Playlist, error)
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

// Entry видео, пригодное для добавления в плейлист
type Entry struct {
	VideoID  string
	Title    string
	Artist   string
	Duration time.Duration
}

// Reader читает записи из YouTube
type Reader struct {
	client Client
}

// NewReader создает reader с клиентом по умолчанию
func NewReader() *Reader {
	return &Reader{client: &youtube.Client{}}
}

// NewReaderWithClient создает reader поверх переданного клиента
func NewReaderWithClient(client Client) *Reader {
	return &Reader{client: client}
}

// Entries возвращает записи по ссылке на плейлист или на отдельное видео
func (r *Reader) Entries(ctx context.Context, ref string) ([]Entry, error) {
	ref = strings.TrimSpace(ref)

	if playlistID, err := extractPlaylistID(ref); err == nil {
		playlist, err := r.client.GetPlaylistContext(ctx, playlistID)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения плейлиста: %w", err)
		}

		entries := make([]Entry, 0, len(playlist.Videos))
		for _, video := range playlist.Videos {
			if video == nil {
				continue
			}
			entries = append(entries, newEntry(video.ID, video.Title, video.Author, video.Duration))
		}
		return entries, nil
	}

	videoID, err := extractVideoID(ref)
	if err != nil {
		return nil, err
	}

	video, err := r.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о видео: %w", err)
	}
	return []Entry{newEntry(video.ID, video.Title, video.Author, video.Duration)}, nil
}

// newEntry разбирает название в формате "Artist - Title", иначе исполнителем считается автор канала
func newEntry(id, title, author string, duration time.Duration) Entry {
	entry := Entry{
		VideoID:  id,
		Title:    strings.TrimSpace(title),
		Artist:   strings.TrimSuffix(strings.TrimSpace(author), " - Topic"),
		Duration: duration,
	}

	if artist, song, ok := strings.Cut(entry.Title, " - "); ok && strings.TrimSpace(artist) != "" && strings.TrimSpace(song) != "" {
		entry.Artist = strings.TrimSpace(artist)
		entry.Title = strings.TrimSpace(song)
	}
	if entry.Artist == "" {
		entry.Artist = "Unknown Artist"
	}
	return entry
}

var (
	playlistParamPattern = regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`)
	playlistIDPattern    = regexp.MustCompile(`^(?:PL|OL|UU|LL|FL|RD)[a-zA-Z0-9_-]{10,}$`)
	videoIDPatterns      = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	}
	bareVideoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// extractPlaylistID извлекает ID плейлиста из URL или возвращает сам ID
func extractPlaylistID(ref string) (string, error) {
	if matches := playlistParamPattern.FindStringSubmatch(ref); len(matches) > 1 {
		return matches[1], nil
	}
	if playlistIDPattern.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("не удалось извлечь ID плейлиста из: %s", ref)
}

// extractVideoID извлекает ID видео из различных форматов YouTube URL
func extractVideoID(ref string) (string, error) {
	for _, re := range videoIDPatterns {
		if matches := re.FindStringSubmatch(ref); len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Если это просто ID видео (11 символов)
	if bareVideoIDPattern.MatchString(ref) {
		return ref, nil
	}

	return "", fmt.Errorf("не удалось извлечь ID видео из URL: %s", ref)
}
