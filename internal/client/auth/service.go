// Package auth выполняет вход, регистрацию и выход.
// После входа выполняется отложенное действие, если оно есть.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/carscope/internal/client/pending"
	"github.com/iudanet/carscope/internal/client/router"
	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/internal/validation"
	"github.com/iudanet/carscope/pkg/api"
)

// Service предоставляет функции авторизации
type Service struct {
	api      API
	sessions SessionStore
	pending  PendingRunner
	nav      Navigator
	logger   *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient API, sessions SessionStore, runner PendingRunner, nav Navigator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:      apiClient,
		sessions: sessions,
		pending:  runner,
		nav:      nav,
		logger:   logger,
	}
}

// LoginResult содержит результат входа
type LoginResult struct {
	User    models.User
	Pending pending.Outcome // результат отложенного действия (OutcomeNone, если его не было)
}

// Login выполняет вход по email и паролю
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.completeLogin(ctx, resp, email, "")
}

// Register регистрирует пользователя и сразу выполняет вход
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{Email: email, Password: password, FullName: fullName})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.completeLogin(ctx, resp, email, fullName)
}

// completeLogin сохраняет сессию и выполняет действия после входа
func (s *Service) completeLogin(ctx context.Context, resp *api.TokenResponse, email, fullName string) (*LoginResult, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("server returned empty access token")
	}

	// Пользователь из ответа, иначе из claim sub
	var user models.User
	if resp.User.Valid() {
		user = *resp.User
	} else {
		u, err := session.UserFromToken(resp.AccessToken, email, fullName)
		if err != nil {
			return nil, fmt.Errorf("failed to read user from token: %w", err)
		}
		user = u
	}

	if err := s.sessions.Save(ctx, resp.AccessToken, user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Info("logged in", "user_id", user.ID, "email", user.Email)

	return &LoginResult{User: user, Pending: s.HandleSuccessfulLogin(ctx)}, nil
}

// HandleSuccessfulLogin выполняет отложенное действие или открывает главную страницу
func (s *Service) HandleSuccessfulLogin(ctx context.Context) pending.Outcome {
	if s.pending.Has(ctx) {
		return s.pending.Execute(ctx)
	}

	if err := s.nav.Navigate(ctx, router.Home); err != nil {
		s.logger.Error("failed to navigate home", "error", err)
	}
	return pending.OutcomeNone
}

// Logout удаляет токен и пользователя.
// История и отложенное действие остаются.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}
