package pending

import (
	"context"

	"github.com/iudanet/carscope/internal/client/session"
)

//go:generate moq -out api_mock.go . API
//go:generate moq -out sessions_mock.go . Sessions
//go:generate moq -out navigator_mock.go . Navigator

// API вызовы backend, которые нужны для повтора действия
type API interface {
	AddFavorite(ctx context.Context, token string, userID, carID int64) error
	RemoveFavorite(ctx context.Context, token string, carID int64) error
	SaveSearch(ctx context.Context, token string, userID int64, query string) error
}

// Sessions источник текущей сессии
type Sessions interface {
	// Current возвращает сессию или ошибку, если пользователь не авторизован
	Current(ctx context.Context) (*session.Session, error)
}

// Navigator клиентская навигация
type Navigator interface {
	Navigate(ctx context.Context, path string) error
	Current(ctx context.Context) string
}
