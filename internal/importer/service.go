// Package importer наполняет плейлист треками из внешних источников
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/metadata"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/s3"
	"github.com/hazadus/go-playlist/internal/streaming"
	"github.com/hazadus/go-playlist/internal/utils"
	"github.com/hazadus/go-playlist/internal/youtube"
)

// headSize столько байт объекта скачивается для чтения тегов
const headSize = 128 * 1024

// BucketSource источник аудио в бакете
type BucketSource interface {
	ListAudio(ctx context.Context, prefix string) ([]s3.Object, error)
	ReadHead(ctx context.Context, key string, n int64) ([]byte, error)
}

// VideoSource источник записей YouTube
type VideoSource interface {
	Entries(ctx context.Context, ref string) ([]youtube.Entry, error)
}

// URLSource источник аудио файлов по HTTP
type URLSource interface {
	ReadHead(ctx context.Context, url string, n int64) ([]byte, int64, error)
}

// Service управляет импортом треков
type Service struct {
	playlist          *playlist.Playlist
	metadataExtractor *metadata.Extractor
	bucket            BucketSource
	videos            VideoSource
	urls              URLSource
}

// Option настраивает сервис импорта
type Option func(*Service)

// WithBucket подключает бакет S3
func WithBucket(bucket BucketSource) Option {
	return func(s *Service) { s.bucket = bucket }
}

// WithVideos подключает источник YouTube
func WithVideos(videos VideoSource) Option {
	return func(s *Service) { s.videos = videos }
}

// WithURLs подключает загрузку по HTTP
func WithURLs(urls URLSource) Option {
	return func(s *Service) { s.urls = urls }
}

// NewService создает новый сервис импорта
func NewService(p *playlist.Playlist, opts ...Option) *Service {
	s := &Service{
		playlist:          p,
		metadataExtractor: metadata.NewExtractor(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report содержит итог импорта из одного источника
type Report struct {
	Source   string
	Added    int
	Skipped  int
	Bytes    int64
	Duration int
}

// String форматирует отчет для вывода пользователю
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: добавлено %d", r.Source, r.Added)
	if r.Skipped > 0 {
		fmt.Fprintf(&b, ", пропущено %d", r.Skipped)
	}
	if r.Bytes > 0 {
		fmt.Fprintf(&b, ", %s", utils.FormatFileSize(r.Bytes))
	}
	if r.Duration > 0 {
		fmt.Fprintf(&b, ", длительность %s", utils.FormatSeconds(r.Duration))
	}
	return b.String()
}

// ImportFiles добавляет локальные аудио файлы в конец плейлиста.
// Нечитаемые файлы пропускаются, ошибка плейлиста прерывает импорт.
func (s *Service) ImportFiles(paths []string) (Report, error) {
	report := Report{Source: "файлы"}

	for _, path := range paths {
		track, info, err := s.metadataExtractor.TrackFromFile(path)
		if err != nil {
			logging.Warn("Пропускаем %s: %v", path, err)
			report.Skipped++
			continue
		}

		if err := s.add(track, &report); err != nil {
			return report, fmt.Errorf("ошибка добавления %s: %w", filepath.Base(path), err)
		}
		report.Bytes += info.Size
	}

	return report, nil
}

// ImportBucket добавляет аудио объекты из бакета под префиксом
func (s *Service) ImportBucket(ctx context.Context, prefix string) (Report, error) {
	report := Report{Source: "s3"}
	if s.bucket == nil {
		return report, errors.New("бакет S3 не настроен")
	}

	objects, err := s.bucket.ListAudio(ctx, prefix)
	if err != nil {
		return report, err
	}
	logging.Debug("В бакете найдено %d аудио объектов", len(objects))

	for _, object := range objects {
		meta := s.metadataExtractor.FromName(object.Name())

		head, err := s.bucket.ReadHead(ctx, object.Key, headSize)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logging.Warn("Не удалось прочитать теги %s: %v", object.Key, err)
		} else {
			meta = s.metadataExtractor.ExtractFromReader(bytes.NewReader(head), object.Name())
		}

		track := playlist.Track{
			Title:    meta.Title,
			Artist:   meta.Artist,
			Album:    meta.Album,
			Duration: seconds(s.metadataExtractor.EstimateDuration(head, object.Name(), object.Size)),
		}
		if err := s.add(track, &report); err != nil {
			return report, fmt.Errorf("ошибка добавления %s: %w", object.Key, err)
		}
		report.Bytes += object.Size
	}

	return report, nil
}

// ImportURLs добавляет аудио файлы по HTTP адресам.
// Недоступные адреса пропускаются, как и нечитаемые локальные файлы.
func (s *Service) ImportURLs(ctx context.Context, urls []string) (Report, error) {
	report := Report{Source: "url"}
	if s.urls == nil {
		return report, errors.New("загрузка по HTTP не настроена")
	}

	for _, rawURL := range urls {
		head, size, err := s.urls.ReadHead(ctx, rawURL, headSize)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logging.Warn("Пропускаем %s: %v", rawURL, err)
			report.Skipped++
			continue
		}

		name := streaming.NameFromURL(rawURL)
		if size <= 0 {
			size = int64(len(head))
		}

		meta := s.metadataExtractor.ExtractFromReader(bytes.NewReader(head), name)
		track := playlist.Track{
			Title:    meta.Title,
			Artist:   meta.Artist,
			Album:    meta.Album,
			Duration: seconds(s.metadataExtractor.EstimateDuration(head, name, size)),
		}
		if err := s.add(track, &report); err != nil {
			return report, fmt.Errorf("ошибка добавления %s: %w", rawURL, err)
		}
		report.Bytes += size
	}

	return report, nil
}

// ImportYouTube добавляет видео из плейлиста или отдельное видео YouTube
func (s *Service) ImportYouTube(ctx context.Context, ref string) (Report, error) {
	report := Report{Source: "youtube"}
	if s.videos == nil {
		return report, errors.New("источник YouTube не настроен")
	}

	entries, err := s.videos.Entries(ctx, ref)
	if err != nil {
		return report, err
	}

	for _, entry := range entries {
		track := playlist.Track{
			Title:    entry.Title,
			Artist:   entry.Artist,
			Album:    "YouTube",
			Duration: seconds(entry.Duration),
		}
		if err := s.add(track, &report); err != nil {
			return report, fmt.Errorf("ошибка добавления видео %s: %w", entry.VideoID, err)
		}
	}

	return report, nil
}

// seconds округляет длительность до целых секунд
func seconds(d time.Duration) int {
	return int(d.Round(time.Second).Seconds())
}

// add назначает следующий ID и добавляет трек в конец плейлиста
func (s *Service) add(track playlist.Track, report *Report) error {
	track.ID = s.playlist.NextID()
	stored, err := s.playlist.InsertEnd(track)
	if err != nil {
		return err
	}
	report.Added++
	report.Duration += stored.Duration
	logging.Debug("Добавлен трек %d: %s - %s", stored.ID, stored.Artist, stored.Title)
	return nil
}
