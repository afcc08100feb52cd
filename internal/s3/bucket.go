// Package s3 предоставляет чтение аудио файлов из бакета Amazon S3
package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// ObjectLister постраничный листинг объектов
type ObjectLister interface {
	ListObjectsV2PagesWithContext(ctx aws.Context, input *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool, opts ...request.Option) error
}

// ObjectDownloader скачивание объекта
type ObjectDownloader interface {
	DownloadWithContext(ctx aws.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*s3manager.Downloader)) (int64, error)
}

// Object описывает аудио файл в бакете
type Object struct {
	Key  string
	Size int64
}

// Name возвращает имя файла без префикса
func (o Object) Name() string {
	return path.Base(o.Key)
}

// audioExtensions расширения, которые считаются аудио
var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".wav":  true,
}

// IsAudioKey проверяет расширение ключа
func IsAudioKey(key string) bool {
	return audioExtensions[strings.ToLower(path.Ext(key))]
}

// Bucket читает объекты из бакета
type Bucket struct {
	client     ObjectLister
	downloader ObjectDownloader
	config     *Config
}

// NewBucket создает клиента бакета по настройкам
func NewBucket(config *Config) (*Bucket, error) {
	if config.BucketName == "" {
		return nil, fmt.Errorf("не указано имя бакета")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return &Bucket{
		client:     s3.New(sess),
		downloader: s3manager.NewDownloader(sess),
		config:     config,
	}, nil
}

// NewBucketWithClients создает бакет поверх готовых клиентов
func NewBucketWithClients(config *Config, client ObjectLister, downloader ObjectDownloader) *Bucket {
	return &Bucket{
		client:     client,
		downloader: downloader,
		config:     config,
	}
}

// ListAudio возвращает аудио объекты под префиксом, отсортированные по ключу
func (b *Bucket) ListAudio(ctx context.Context, prefix string) ([]Object, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(b.config.BucketName),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []Object
	err := b.client.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, item := range page.Contents {
			key := aws.StringValue(item.Key)
			if !IsAudioKey(key) {
				continue
			}
			objects = append(objects, Object{
				Key:  key,
				Size: aws.Int64Value(item.Size),
			})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка объектов: %w", err)
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// ReadHead скачивает первые n байт объекта. Их хватает для тегов ID3v2 и оценки длительности.
func (b *Bucket) ReadHead(ctx context.Context, key string, n int64) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("некорректный размер блока: %d", n)
	}

	buf := aws.NewWriteAtBuffer(make([]byte, 0, n))
	_, err := b.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(b.config.BucketName),
		Key:    aws.String(key),
		Range:  aws.String(fmt.Sprintf("bytes=0-%d", n-1)),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка скачивания %s: %w", key, err)
	}
	return buf.Bytes(), nil
}
