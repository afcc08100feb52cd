// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Artist string
	Title  string
	Album  string
}

// FileInfo содержит информацию о файле
type FileInfo struct {
	Size     int64
	Duration time.Duration
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker.
// Пустые теги дополняются данными из имени файла.
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	fallback := e.getDefaultMetadata(source)

	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return fallback
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return fallback
	}

	result := TrackMetadata{
		Artist: strings.TrimSpace(metadata.Artist()),
		Title:  strings.TrimSpace(metadata.Title()),
		Album:  strings.TrimSpace(metadata.Album()),
	}
	if result.Title == "" {
		result.Title = fallback.Title
	}
	if result.Artist == "" {
		result.Artist = fallback.Artist
	}
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 или WAV файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	return decodeDuration(file, filepath.Ext(filePath))
}

// EstimateDuration оценивает длительность файла размером totalSize по его началу head.
// Для MP3 длительность кадров в head масштабируется на весь файл, WAV хранит
// размер данных в заголовке. Если оценить не удалось, возвращается ноль.
func (e *Extractor) EstimateDuration(head []byte, name string, totalSize int64) time.Duration {
	ext := strings.ToLower(filepath.Ext(name))
	duration, err := decodeDuration(bytes.NewReader(head), ext)
	if err != nil || duration <= 0 {
		return 0
	}
	if ext == ".mp3" {
		return scaleDuration(duration, int64(len(head)), totalSize)
	}
	return duration
}

// scaleDuration пересчитывает длительность части файла на весь файл
func scaleDuration(partial time.Duration, partSize, totalSize int64) time.Duration {
	if partSize <= 0 || totalSize <= partSize {
		return partial
	}
	return time.Duration(float64(partial) * float64(totalSize) / float64(partSize))
}

// readSeekNopCloser позволяет передать io.ReadSeeker декодеру, который закрывает источник
type readSeekNopCloser struct {
	io.ReadSeeker
}

func (readSeekNopCloser) Close() error { return nil }

// decodeDuration читает заголовки аудио потока и возвращает его длительность
func decodeDuration(r io.ReadSeeker, ext string) (time.Duration, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)

	switch strings.ToLower(ext) {
	case ".mp3":
		streamer, format, err = mp3.Decode(readSeekNopCloser{r})
		if err != nil {
			return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
		}
	case ".wav":
		streamer, format, err = wav.Decode(r)
		if err != nil {
			return 0, fmt.Errorf("ошибка декодирования WAV: %w", err)
		}
	default:
		return 0, fmt.Errorf("длительность не определяется для формата %q", ext)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// GetFileInfo получает информацию о файле (размер и длительность).
// Для файлов, которые не удалось декодировать, длительность равна нулю.
func (e *Extractor) GetFileInfo(filePath string) (*FileInfo, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s является директорией", filePath)
	}

	info := &FileInfo{Size: fileInfo.Size()}
	if duration, err := e.GetDuration(filePath); err == nil {
		info.Duration = duration
	}
	return info, nil
}

// TrackFromFile собирает трек плейлиста из локального файла. ID не заполняется.
func (e *Extractor) TrackFromFile(filePath string) (playlist.Track, *FileInfo, error) {
	info, err := e.GetFileInfo(filePath)
	if err != nil {
		return playlist.Track{}, nil, err
	}
	meta := e.ExtractFromFile(filePath)
	return playlist.Track{
		Title:    meta.Title,
		Artist:   meta.Artist,
		Album:    meta.Album,
		Duration: int(info.Duration.Round(time.Second).Seconds()),
	}, info, nil
}

// FromName строит метаданные из имени файла или ключа объекта
func (e *Extractor) FromName(name string) TrackMetadata {
	return e.getDefaultMetadata(name)
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
			Album:  "",
		}
	}

	return TrackMetadata{
		Artist: "Unknown Artist",
		Title:  nameWithoutExt,
		Album:  "",
	}
}
