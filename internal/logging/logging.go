// Package logging содержит простое уровневое логирование поверх стандартного log.
// Уровень задается из конфигурации, переменные окружения LOG_LEVEL и DEBUG
// имеют приоритет.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel - важность сообщения
type LogLevel int

const (
	// LevelDebug - отладочные сообщения
	LevelDebug LogLevel = iota
	// LevelInfo - обычные сообщения о работе
	LevelInfo
	// LevelWarn - предупреждения
	LevelWarn
	// LevelError - ошибки
	LevelError
)

var (
	mu           sync.RWMutex
	currentLevel = LevelInfo
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

// ParseLevel разбирает имя уровня. Неизвестное имя дает LevelInfo и ошибку.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("неизвестный уровень логирования: %q", s)
	}
}

// Setup устанавливает уровень из конфигурации с учетом переменной DEBUG
func Setup(level string) error {
	lvl, err := ParseLevel(level)
	if debug := os.Getenv("DEBUG"); debug != "" {
		switch strings.ToLower(debug) {
		case "1", "true", "yes", "on":
			lvl, err = LevelDebug, nil
		}
	}
	SetLevel(lvl)
	return err
}

// SetLevel устанавливает текущий уровень
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// GetLevel возвращает текущий уровень
func GetLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// SetOutput перенаправляет вывод журнала
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Output возвращает текущий приемник журнала
func Output() io.Writer {
	return logger.Writer()
}

// IsDebugEnabled сообщает, включены ли отладочные сообщения
func IsDebugEnabled() bool {
	return GetLevel() <= LevelDebug
}

// Debug пишет отладочное сообщение
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Info пишет информационное сообщение
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn пишет предупреждение
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Error пишет сообщение об ошибке
func Error(format string, args ...any) {
	logf(LevelError, "[ERROR] ", format, args...)
}

// Fatal пишет сообщение и завершает процесс
func Fatal(format string, args ...any) {
	logger.Fatalf("[FATAL] "+format, args...)
}

func logf(level LogLevel, prefix, format string, args ...any) {
	if GetLevel() <= level {
		logger.Printf(prefix+format, args...)
	}
}

// String возвращает имя уровня
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}
