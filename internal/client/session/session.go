// Package session хранит токен и профиль пользователя в локальном KV хранилище.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/models"
)

var (
	// ErrNoSession сессия отсутствует или повреждена
	ErrNoSession = errors.New("not authenticated")
	// ErrInvalidToken токен не удалось разобрать
	ErrInvalidToken = errors.New("invalid access token")
)

// Session текущая сессия пользователя
type Session struct {
	ExpiresAt time.Time // нулевое значение - токен без exp
	User      models.User
	Token     string
}

// Store читает и пишет сессию. Состояние не кэшируется:
// каждое обращение читает хранилище заново.
type Store struct {
	kv  storage.KVStore
	now func() time.Time
}

// Option настраивает Store
type Option func(*Store)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore создает хранилище сессии поверх kv
func NewStore(kv storage.KVStore, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token возвращает сохраненный access token
func (s *Store) Token(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		if storage.IsNotFound(err) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoSession
	}
	return string(data), nil
}

// User возвращает сохраненного пользователя.
// Поврежденный JSON и пользователь без id дают ErrNoSession.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	data, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: corrupt user data: %v", ErrNoSession, err)
	}
	if !user.Valid() {
		return nil, ErrNoSession
	}
	return &user, nil
}

// Current возвращает действующую сессию или ErrNoSession
func (s *Store) Current(ctx context.Context) (*Session, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.User(ctx)
	if err != nil {
		return nil, err
	}

	sess := &Session{Token: token, User: *user}
	if exp, ok := ExpiresAt(token); ok {
		sess.ExpiresAt = exp
		if !s.now().Before(exp) {
			return nil, fmt.Errorf("%w: token expired at %s", ErrNoSession, exp.Format(time.RFC3339))
		}
	}
	return sess, nil
}

// IsAuthenticated сообщает, есть ли действующая сессия
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, err := s.Current(ctx)
	return err == nil
}

// Save сохраняет токен и пользователя
func (s *Store) Save(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}
	if err := s.kv.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := storage.SetJSON(ctx, s.kv, storage.KeyUser, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Clear удаляет токен и пользователя
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, storage.KeyToken); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	if err := s.kv.Remove(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	return nil
}

// parseClaims разбирает токен без проверки подписи: ключа на клиенте нет,
// подпись проверяет backend при каждом запросе.
func parseClaims(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// ExpiresAt возвращает exp токена, если он есть
func ExpiresAt(token string) (time.Time, bool) {
	claims, err := parseClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// UserFromToken строит пользователя из claim sub (id пользователя)
func UserFromToken(token, email, fullName string) (models.User, error) {
	claims, err := parseClaims(token)
	if err != nil {
		return models.User{}, err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return models.User{}, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, claims.Subject)
	}
	return models.User{ID: id, Email: email, FullName: fullName}, nil
}
