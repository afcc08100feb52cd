package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"пусто", "", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"warning alias", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"регистр", "DEBUG", LevelDebug, false},
		{"неизвестный", "verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) ошибка = %v, ожидалась ошибка: %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, ожидалось %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetupWithDebugEnv(t *testing.T) {
	defer SetLevel(LevelInfo)

	t.Setenv("DEBUG", "true")
	if err := Setup("error"); err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if !IsDebugEnabled() {
		t.Error("DEBUG=true должен включать отладочный уровень")
	}

	t.Setenv("DEBUG", "")
	if err := Setup("verbose"); err == nil {
		t.Error("Ожидалась ошибка для неизвестного уровня")
	}
	if GetLevel() != LevelInfo {
		t.Errorf("Ожидался уровень info, получено %v", GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelInfo)

	SetLevel(LevelWarn)
	Debug("отладка %d", 1)
	Info("информация")
	Warn("предупреждение %s", "w")
	Error("ошибка")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("Сообщения ниже warn не должны выводиться: %s", output)
	}
	if !strings.Contains(output, "[WARN] предупреждение w") {
		t.Errorf("Ожидалось предупреждение в выводе: %s", output)
	}
	if !strings.Contains(output, "[ERROR] ошибка") {
		t.Errorf("Ожидалась ошибка в выводе: %s", output)
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LogLevel(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %q, ожидалось %q", got, tt.expected)
			}
		})
	}
}

func TestOutputReturnsCurrentWriter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	if Output() != &buf {
		t.Error("Output должен возвращать приемник, установленный через SetOutput")
	}
}
