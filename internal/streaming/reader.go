// Package streaming читает начало аудио файлов по HTTP для извлечения тегов
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/hazadus/go-playlist/internal/logging"
)

const bufferSize = 32 * 1024

// Client скачивает фрагменты аудио файлов по HTTP
type Client struct {
	httpClient *http.Client
}

// NewClient создает HTTP клиент с таймаутами соединения
func NewClient() *Client {
	return NewClientWithHTTP(&http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	})
}

// NewClientWithHTTP создает клиент поверх готового http.Client (для тестов)
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// IsURL проверяет, что строка - HTTP(S) адрес
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// NameFromURL возвращает имя файла из пути URL
func NameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || u.Path == "/" {
		return raw
	}
	name := path.Base(u.Path)
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// ReadHead скачивает первые n байт файла и возвращает их вместе с полным
// размером файла (0, если сервер его не сообщил). Сервер без поддержки Range
// отдает файл целиком, из него читается только начало.
func (c *Client) ReadHead(ctx context.Context, rawURL string, n int64) ([]byte, int64, error) {
	if !IsURL(rawURL) {
		return nil, 0, fmt.Errorf("неподдерживаемый адрес: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", n-1))
	req.Header.Set("User-Agent", "go-playlist/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, 0, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "audio/") && !strings.Contains(contentType, "application/octet-stream") {
		logging.Warn("Неожиданный Content-Type %s для %s", contentType, rawURL)
	}

	head, err := io.ReadAll(io.LimitReader(bufio.NewReaderSize(resp.Body, bufferSize), n))
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	return head, totalSize(resp), nil
}

// totalSize определяет полный размер файла по Content-Range или Content-Length
func totalSize(resp *http.Response) int64 {
	if resp.StatusCode == http.StatusPartialContent {
		// bytes 0-1023/5000000
		contentRange := resp.Header.Get("Content-Range")
		if i := strings.LastIndex(contentRange, "/"); i >= 0 {
			if size, err := strconv.ParseInt(contentRange[i+1:], 10, 64); err == nil {
				return size
			}
		}
		return 0
	}
	return max(resp.ContentLength, 0)
}
