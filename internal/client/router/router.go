// Package router хранит текущее местоположение пользователя в приложении.
package router

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/iudanet/carscope/internal/client/storage"
)

// Home путь по умолчанию
const Home = "/"

// LoginPath страница входа
const LoginPath = "/login"

// Router переходы между страницами. Текущий путь переживает перезапуск процесса.
type Router struct {
	kv     storage.KVStore
	out    io.Writer
	logger *slog.Logger
}

// New создает роутер. out получает строку на каждый переход, может быть nil.
func New(kv storage.KVStore, out io.Writer, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{kv: kv, out: out, logger: logger}
}

// Navigate переходит на path и запоминает его как текущий
func (r *Router) Navigate(ctx context.Context, path string) error {
	path = Normalize(path)
	if err := r.kv.Set(ctx, storage.KeyLocation, []byte(path)); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	r.logger.Debug("navigate", "path", path)
	if r.out != nil {
		_, _ = fmt.Fprintf(r.out, "→ %s\n", path)
	}
	return nil
}

// Current возвращает текущий путь или "/"
func (r *Router) Current(ctx context.Context) string {
	data, err := r.kv.Get(ctx, storage.KeyLocation)
	if err != nil {
		if !storage.IsNotFound(err) {
			r.logger.Warn("failed to read location", "error", err)
		}
		return Home
	}
	if len(data) == 0 {
		return Home
	}
	return string(data)
}

// Normalize приводит путь к виду "/a/b?q"
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return Home
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// IsLogin сообщает, что path указывает на страницу входа
func IsLogin(path string) bool {
	p, _, _ := strings.Cut(path, "?")
	return strings.TrimSuffix(p, "/") == LoginPath
}
