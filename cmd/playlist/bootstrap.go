package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hazadus/go-playlist/internal/config"
	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/importer"
	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/s3"
	"github.com/hazadus/go-playlist/internal/streaming"
	"github.com/hazadus/go-playlist/internal/youtube"
)

// bootstrap загружает конфигурацию, создает плейлист и наполняет его
// стартовым набором и треками из источников, указанных флагами
func (app *Application) bootstrap(ctx context.Context, out io.Writer) error {
	cfg, err := config.LoadConfig(app.flags.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.Config = cfg

	if err := logging.Setup(cfg.LogLevel); err != nil {
		return err
	}

	opts, err := cfg.PlaylistOptions()
	if err != nil {
		return err
	}
	app.Playlist = playlist.New(opts...)

	if err := app.applySeed(); err != nil {
		return err
	}

	reports, err := app.importSources(ctx)
	for _, report := range reports {
		fmt.Fprintf(out, "📥 %s\n", report)
	}
	return err
}

// applySeed заполняет плейлист файлом из флага, из конфигурации или встроенным набором
func (app *Application) applySeed() error {
	if app.flags.noSeed {
		return nil
	}

	seedPath := app.flags.seedPath
	if seedPath == "" {
		seedPath = app.Config.SeedFile
	}

	seed := data.DefaultSeed()
	if seedPath != "" {
		loaded, err := data.LoadSeed(seedPath)
		if err != nil {
			return err
		}
		seed = loaded
	}

	added, err := seed.Apply(app.Playlist)
	if err != nil {
		return err
	}
	logging.Debug("Стартовый набор: добавлено треков %d", added)
	return nil
}

// importSources запускает импорт из источников, указанных флагами
func (app *Application) importSources(ctx context.Context) ([]importer.Report, error) {
	var opts []importer.Option

	if app.flags.useS3 {
		if !app.Config.HasS3() {
			return nil, fmt.Errorf("бакет не настроен: укажите aws_bucket_name в конфигурации")
		}
		bucket, err := s3.NewBucket(&s3.Config{
			Region:     app.Config.AwsRegion,
			AccessKey:  app.Config.AwsAccessKey,
			SecretKey:  app.Config.AwsSecretKey,
			Endpoint:   app.Config.AwsEndpoint,
			BucketName: app.Config.AwsBucketName,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, importer.WithBucket(bucket))
	}
	if len(app.flags.urls) > 0 {
		opts = append(opts, importer.WithURLs(streaming.NewClient()))
	}
	if app.flags.youtubeRef != "" {
		opts = append(opts, importer.WithVideos(youtube.NewReader()))
	}

	service := importer.NewService(app.Playlist, opts...)
	var reports []importer.Report

	if len(app.flags.files) > 0 {
		report, err := service.ImportFiles(app.flags.files)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	if len(app.flags.urls) > 0 {
		report, err := service.ImportURLs(ctx, app.flags.urls)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	if app.flags.useS3 {
		report, err := service.ImportBucket(ctx, app.flags.s3Prefix)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	if app.flags.youtubeRef != "" {
		report, err := service.ImportYouTube(ctx, app.flags.youtubeRef)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}

	return reports, nil
}
