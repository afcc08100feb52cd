// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	LogLevel    string `yaml:"log_level"`
	SeedFile    string `yaml:"seed_file"`    // YAML со стартовыми треками, пусто - встроенный набор
	TextPolicy  string `yaml:"text_policy"`  // truncate или reject
	Capacity    int    `yaml:"capacity"`     // 0 - без ограничения
	ShuffleSeed uint64 `yaml:"shuffle_seed"` // 0 - случайное зерно

	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		TextPolicy: playlist.TruncatePolicy.String(),
		AwsRegion:  "us-east-1",
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config.applyEnv()
			return config, nil
		}
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.TextPolicy == "" {
		config.TextPolicy = playlist.TruncatePolicy.String()
	}

	// Раскрываем тильду в пути к стартовому набору
	if config.SeedFile != "" {
		config.SeedFile = strings.Replace(config.SeedFile, "~", home, 1)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv переопределяет уровень логирования из окружения
func (c *Config) applyEnv() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if _, err := playlist.ParseTextPolicy(c.TextPolicy); err != nil {
		return err
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity не может быть отрицательным: %d", c.Capacity)
	}
	return nil
}

// HasS3 сообщает, настроен ли доступ к бакету
func (c *Config) HasS3() bool {
	return c.AwsBucketName != ""
}

// PlaylistOptions переводит конфигурацию в опции плейлиста
func (c *Config) PlaylistOptions() ([]playlist.Option, error) {
	policy, err := playlist.ParseTextPolicy(c.TextPolicy)
	if err != nil {
		return nil, err
	}

	opts := []playlist.Option{
		playlist.WithTextPolicy(policy),
		playlist.WithCapacity(c.Capacity),
	}
	if c.ShuffleSeed != 0 {
		opts = append(opts, playlist.WithSeed(c.ShuffleSeed))
	}
	return opts, nil
}
