package auth

import (
	"context"

	"github.com/iudanet/carscope/internal/client/pending"
	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/pkg/api"
)

//go:generate moq -out api_mock.go . API
//go:generate moq -out pending_mock.go . PendingRunner

// API эндпоинты авторизации backend
type API interface {
	// Register регистрирует пользователя и возвращает токен
	Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error)

	// Login выполняет вход и возвращает токен
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}

// SessionStore хранилище сессии
type SessionStore interface {
	Save(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
}

// PendingRunner отложенные действия, выполняемые после входа
type PendingRunner interface {
	Has(ctx context.Context) bool
	Execute(ctx context.Context) pending.Outcome
}

// Navigator клиентская навигация
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}
