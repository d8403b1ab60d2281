// Package actions выполняет действия, которые требуют входа.
// Без сессии действие откладывается и пользователь отправляется на /login.
package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/iudanet/carscope/internal/client/pending"
	"github.com/iudanet/carscope/internal/client/router"
)

//go:generate moq -out intents_mock.go . Intents

// GatedPaths страницы, доступные только после входа
var GatedPaths = []string{"/favorites", "/dashboard", "/get-estimation"}

// ErrEmptyQuery пустой поисковый запрос
var ErrEmptyQuery = errors.New("search query is empty")

// Result результат действия
type Result int

const (
	// Done действие выполнено сразу
	Done Result = iota
	// LoginRequired действие отложено до входа
	LoginRequired
)

func (r Result) String() string {
	if r == LoginRequired {
		return "login_required"
	}
	return "done"
}

// Intents сохраняет отложенные действия
type Intents interface {
	SaveFavoriteIntent(ctx context.Context, carID int64, dir pending.Direction, returnURL string)
	SaveSearchIntent(ctx context.Context, query, returnURL string)
	SaveNavigationIntent(ctx context.Context, targetPath string)
}

// Service действия пользователя
type Service struct {
	api      pending.API
	sessions pending.Sessions
	intents  Intents
	nav      pending.Navigator
	logger   *slog.Logger
}

// NewService создает сервис действий
func NewService(apiClient pending.API, sessions pending.Sessions, intents Intents, nav pending.Navigator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:      apiClient,
		sessions: sessions,
		intents:  intents,
		nav:      nav,
		logger:   logger,
	}
}

// deferToLogin отправляет пользователя на страницу входа
func (s *Service) deferToLogin(ctx context.Context) (Result, error) {
	if err := s.nav.Navigate(ctx, router.LoginPath); err != nil {
		return LoginRequired, fmt.Errorf("failed to open login page: %w", err)
	}
	return LoginRequired, nil
}

// ToggleFavorite добавляет автомобиль в избранное или убирает его оттуда.
// isFavorite - текущее состояние. Ошибку backend возвращает вызывающему.
func (s *Service) ToggleFavorite(ctx context.Context, carID int64, isFavorite bool) (Result, error) {
	dir := pending.DirectionAdd
	if isFavorite {
		dir = pending.DirectionRemove
	}

	sess, err := s.sessions.Current(ctx)
	if err != nil {
		s.logger.Info("favorite requires login, deferring", "car_id", carID, "direction", dir, "reason", err)
		s.intents.SaveFavoriteIntent(ctx, carID, dir, s.nav.Current(ctx))
		return s.deferToLogin(ctx)
	}

	if dir == pending.DirectionRemove {
		err = s.api.RemoveFavorite(ctx, sess.Token, carID)
	} else {
		err = s.api.AddFavorite(ctx, sess.Token, sess.User.ID, carID)
	}
	if err != nil {
		return Done, fmt.Errorf("failed to update favorites: %w", err)
	}

	s.logger.Info("favorites updated", "car_id", carID, "direction", dir)
	return Done, nil
}

// SaveSearch сохраняет поисковый запрос
func (s *Service) SaveSearch(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Done, ErrEmptyQuery
	}

	sess, err := s.sessions.Current(ctx)
	if err != nil {
		s.logger.Info("saved search requires login, deferring", "reason", err)
		s.intents.SaveSearchIntent(ctx, query, s.nav.Current(ctx))
		return s.deferToLogin(ctx)
	}

	if err := s.api.SaveSearch(ctx, sess.Token, sess.User.ID, query); err != nil {
		return Done, fmt.Errorf("failed to save search: %w", err)
	}
	return Done, nil
}

// Open открывает страницу. Закрытые страницы без сессии откладываются.
func (s *Service) Open(ctx context.Context, path string) (Result, error) {
	path = router.Normalize(path)

	if IsGated(path) && !s.authenticated(ctx) {
		s.intents.SaveNavigationIntent(ctx, path)
		return s.deferToLogin(ctx)
	}

	if err := s.nav.Navigate(ctx, path); err != nil {
		return Done, err
	}
	return Done, nil
}

func (s *Service) authenticated(ctx context.Context) bool {
	_, err := s.sessions.Current(ctx)
	return err == nil
}

// IsGated сообщает, требует ли путь входа
func IsGated(path string) bool {
	p, _, _ := strings.Cut(path, "?")
	p = strings.TrimSuffix(p, "/")
	return slices.ContainsFunc(GatedPaths, func(g string) bool {
		return p == g || strings.HasPrefix(p, g+"/")
	})
}
