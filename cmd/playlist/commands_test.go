package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand запускает корневую команду с аргументами и вводом, возвращает вывод
func executeCommand(t *testing.T, input string, args ...string) (*Application, string, error) {
	t.Helper()

	app := NewApplication()
	rootCmd := app.createRootCommand()

	// Несуществующий файл конфигурации дает настройки по умолчанию
	configPath := filepath.Join(t.TempDir(), "missing.yaml")
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(input))

	err := rootCmd.Execute()
	return app, out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла %s: %v", name, err)
	}
	return path
}

// TestCmdList проверяет, что команда `list` выводит встроенный стартовый набор
func TestCmdList(t *testing.T) {
	app, output, err := executeCommand(t, "", "list")
	if err != nil {
		t.Fatalf("Ошибка выполнения команды list: %v", err)
	}

	expectedStrings := []string{
		"📚 Треков в плейлисте: 5",
		"Bohemian Rhapsody",
		"Led Zeppelin",
		"Imagine",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Вывод команды list не содержит ожидаемую строку '%s': %s", expected, output)
		}
	}

	if app.Config == nil || app.Config.TextPolicy != "truncate" {
		t.Errorf("Ожидалась конфигурация по умолчанию, получено %+v", app.Config)
	}
}

// TestCmdListEmpty проверяет флаг --no-seed
func TestCmdListEmpty(t *testing.T) {
	app, output, err := executeCommand(t, "", "list", "--no-seed")
	if err != nil {
		t.Fatalf("Ошибка выполнения команды list: %v", err)
	}

	if !strings.Contains(output, "📭 Плейлист пуст.") {
		t.Errorf("Команда list не отобразила сообщение о пустом плейлисте: %s", output)
	}
	if app.Playlist.Len() != 0 {
		t.Errorf("Ожидался пустой плейлист, треков %d", app.Playlist.Len())
	}
}

// TestCmdListSeedFile проверяет загрузку стартового набора из файла
func TestCmdListSeedFile(t *testing.T) {
	seedPath := writeFile(t, "seed.yaml", `tracks:
  - id: 7
    title: "Paranoid Android"
    artist: "Radiohead"
    duration: 387
  - title: "Karma Police"
    artist: "Radiohead"
    duration: 264
`)

	app, output, err := executeCommand(t, "", "list", "--seed", seedPath)
	if err != nil {
		t.Fatalf("Ошибка выполнения команды list: %v", err)
	}

	if !strings.Contains(output, "📚 Треков в плейлисте: 2") || !strings.Contains(output, "Karma Police") {
		t.Errorf("Неожиданный вывод: %s", output)
	}

	tracks := app.Playlist.Tracks()
	if len(tracks) != 2 || tracks[1].ID != 8 {
		t.Errorf("Трек без ID должен получить следующий ID 8: %+v", tracks)
	}
}

// TestCmdConfigFile проверяет, что настройки из файла применяются к плейлисту
func TestCmdConfigFile(t *testing.T) {
	seedPath := writeFile(t, "seed.yaml", "tracks:\n  - id: 1\n    title: \"Only\"\n")
	configPath := writeFile(t, "config.yaml", "log_level: error\ncapacity: 1\nseed_file: "+seedPath+"\n")

	app, output, err := executeCommand(t, "add 2 \"Second\" \"Artist\" \"Album\" 10\ncount\nexit\n", "--config", configPath)
	if err != nil {
		t.Fatalf("Ошибка выполнения оболочки: %v", err)
	}

	if app.Config.Capacity != 1 {
		t.Errorf("Ожидался capacity 1 из файла, получено %d", app.Config.Capacity)
	}
	if app.Playlist.Len() != 1 {
		t.Errorf("Плейлист с capacity 1 не должен расти, треков %d", app.Playlist.Len())
	}
	if !strings.Contains(output, "🔢 Треков в плейлисте: 1") {
		t.Errorf("Неожиданный вывод: %s", output)
	}
}

// TestCmdInvalidConfig проверяет ошибку разбора конфигурации
func TestCmdInvalidConfig(t *testing.T) {
	configPath := writeFile(t, "config.yaml", "text_policy: drop\n")

	_, _, err := executeCommand(t, "", "list", "--config", configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка для неизвестной политики текста")
	}
	if !strings.Contains(err.Error(), "ошибка загрузки конфигурации") {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}

// TestCmdShellDefault проверяет, что без подкоманды запускается оболочка
func TestCmdShellDefault(t *testing.T) {
	app, output, err := executeCommand(t, "next\ncurrent\nquit\n")
	if err != nil {
		t.Fatalf("Ошибка выполнения оболочки: %v", err)
	}

	for _, expected := range []string{"Добро пожаловать", "Hotel California", "👋 До встречи!"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Вывод оболочки не содержит '%s': %s", expected, output)
		}
	}
	if app.Playlist.CurrentIndex() != 2 {
		t.Errorf("Ожидался курсор на позиции 2, получено %d", app.Playlist.CurrentIndex())
	}
}

// TestCmdShellSubcommand проверяет явную команду shell и завершение по концу ввода
func TestCmdShellSubcommand(t *testing.T) {
	app, output, err := executeCommand(t, "reverse\n", "shell")
	if err != nil {
		t.Fatalf("Ошибка выполнения оболочки: %v", err)
	}

	if !strings.Contains(output, "👋 До встречи!") {
		t.Errorf("Оболочка должна завершаться по концу ввода: %s", output)
	}
	if tracks := app.Playlist.Tracks(); tracks[0].Title != "Imagine" {
		t.Errorf("Ожидался развернутый плейлист, первый трек %s", tracks[0].Title)
	}
}

// TestCmdImportFiles проверяет, что нечитаемые файлы пропускаются с отчетом
func TestCmdImportFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	app, output, err := executeCommand(t, "", "list", "--no-seed", "-f", missing)
	if err != nil {
		t.Fatalf("Ошибка выполнения команды list: %v", err)
	}

	if !strings.Contains(output, "📥 файлы: добавлено 0, пропущено 1") {
		t.Errorf("Ожидался отчет об импорте: %s", output)
	}
	if app.Playlist.Len() != 0 {
		t.Errorf("Ожидался пустой плейлист, треков %d", app.Playlist.Len())
	}
}

// TestCmdS3WithoutBucket проверяет ошибку импорта без настроенного бакета
func TestCmdS3WithoutBucket(t *testing.T) {
	_, _, err := executeCommand(t, "", "list", "--s3")
	if err == nil || !strings.Contains(err.Error(), "бакет не настроен") {
		t.Errorf("Ожидалась ошибка о ненастроенном бакете, получено %v", err)
	}
}
