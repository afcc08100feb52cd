package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// MockS3Client мок для листинга объектов
type MockS3Client struct {
	pages    []*s3.ListObjectsV2Output
	err      error
	lastCall *s3.ListObjectsV2Input
}

func (m *MockS3Client) ListObjectsV2PagesWithContext(ctx aws.Context, input *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool, opts ...request.Option) error {
	m.lastCall = input
	if m.err != nil {
		return m.err
	}
	for i, page := range m.pages {
		if !fn(page, i == len(m.pages)-1) {
			break
		}
	}
	return nil
}

// MockDownloader мок для скачивания объектов
type MockDownloader struct {
	content   string
	err       error
	lastInput *s3.GetObjectInput
}

func (m *MockDownloader) DownloadWithContext(ctx aws.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*s3manager.Downloader)) (int64, error) {
	m.lastInput = input
	if m.err != nil {
		return 0, m.err
	}
	n, err := w.WriteAt([]byte(m.content), 0)
	return int64(n), err
}

func testConfig() *Config {
	return &Config{
		Region:     "us-east-1",
		AccessKey:  "test-access-key",
		SecretKey:  "test-secret-key",
		Endpoint:   "https://s3.example.com",
		BucketName: "test-bucket",
	}
}

func object(key string, size int64) *s3.Object {
	return &s3.Object{
		Key:  aws.String(key),
		Size: aws.Int64(size),
	}
}

func TestListAudio(t *testing.T) {
	client := &MockS3Client{
		pages: []*s3.ListObjectsV2Output{
			{Contents: []*s3.Object{
				object("music/Queen - Bohemian Rhapsody.mp3", 2048),
				object("music/cover.jpg", 100),
			}},
			{Contents: []*s3.Object{
				object("music/Eagles - Hotel California.FLAC", 4096),
				object("music/notes.txt", 10),
			}},
		},
	}

	bucket := NewBucketWithClients(testConfig(), client, &MockDownloader{})
	objects, err := bucket.ListAudio(context.Background(), "music/")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if aws.StringValue(client.lastCall.Bucket) != "test-bucket" {
		t.Errorf("Ожидался bucket: test-bucket, получено: %s", aws.StringValue(client.lastCall.Bucket))
	}
	if aws.StringValue(client.lastCall.Prefix) != "music/" {
		t.Errorf("Ожидался префикс music/, получено: %s", aws.StringValue(client.lastCall.Prefix))
	}

	if len(objects) != 2 {
		t.Fatalf("Ожидалось 2 аудио объекта, получено %d", len(objects))
	}
	// Сортировка по ключу
	if objects[0].Name() != "Eagles - Hotel California.FLAC" {
		t.Errorf("Неожиданный первый объект: %s", objects[0].Key)
	}
	if objects[1].Size != 2048 {
		t.Errorf("Ожидался размер 2048, получено %d", objects[1].Size)
	}
}

func TestListAudioWithoutPrefix(t *testing.T) {
	client := &MockS3Client{}
	bucket := NewBucketWithClients(testConfig(), client, &MockDownloader{})

	objects, err := bucket.ListAudio(context.Background(), "")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if len(objects) != 0 {
		t.Errorf("Ожидался пустой список, получено %d", len(objects))
	}
	if client.lastCall.Prefix != nil {
		t.Error("Пустой префикс не должен передаваться")
	}
}

func TestListAudioError(t *testing.T) {
	client := &MockS3Client{err: awserr.New("AccessDenied", "Access Denied", nil)}
	bucket := NewBucketWithClients(testConfig(), client, &MockDownloader{})

	_, err := bucket.ListAudio(context.Background(), "music/")
	if err == nil {
		t.Fatal("Ожидалась ошибка при отсутствии доступа к bucket")
	}
	if !strings.Contains(err.Error(), "ошибка получения списка объектов") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestReadHead(t *testing.T) {
	downloader := &MockDownloader{content: "ID3 header"}
	bucket := NewBucketWithClients(testConfig(), &MockS3Client{}, downloader)

	head, err := bucket.ReadHead(context.Background(), "song.mp3", 1024)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if string(head) != "ID3 header" {
		t.Errorf("Неожиданное содержимое: %q", head)
	}
	if aws.StringValue(downloader.lastInput.Range) != "bytes=0-1023" {
		t.Errorf("Неожиданный диапазон: %s", aws.StringValue(downloader.lastInput.Range))
	}
	if aws.StringValue(downloader.lastInput.Key) != "song.mp3" {
		t.Errorf("Ожидался key: song.mp3, получено: %s", aws.StringValue(downloader.lastInput.Key))
	}
}

func TestReadHeadErrors(t *testing.T) {
	bucket := NewBucketWithClients(testConfig(), &MockS3Client{}, &MockDownloader{
		err: awserr.New("NoSuchKey", "The specified key does not exist.", nil),
	})

	if _, err := bucket.ReadHead(context.Background(), "missing.mp3", 1024); err == nil {
		t.Error("Ожидалась ошибка для несуществующего объекта")
	}
	if _, err := bucket.ReadHead(context.Background(), "song.mp3", 0); err == nil {
		t.Error("Ожидалась ошибка для нулевого размера блока")
	}
}

func TestIsAudioKey(t *testing.T) {
	tests := map[string]bool{
		"song.mp3":         true,
		"dir/song.MP3":     true,
		"песня.flac":       true,
		"track.m4a":        true,
		"cover.jpg":        false,
		"no-extension":     false,
		"archive.mp3.zip":  false,
		"song (remix).ogg": true,
	}

	for key, expected := range tests {
		if IsAudioKey(key) != expected {
			t.Errorf("IsAudioKey(%q) = %v, ожидалось %v", key, !expected, expected)
		}
	}
}

func TestNewBucket(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		bucket, err := NewBucket(testConfig())
		if err != nil {
			t.Fatalf("Неожиданная ошибка при создании бакета: %v", err)
		}
		if bucket.client == nil || bucket.downloader == nil {
			t.Error("Клиенты должны быть созданы")
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		config := testConfig()
		config.BucketName = ""
		if _, err := NewBucket(config); err == nil {
			t.Error("Ожидалась ошибка без имени бакета")
		}
	})
}
