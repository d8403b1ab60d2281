package history

import (
	"context"

	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/pkg/api"
)

//go:generate moq -out remote_mock.go . RemoteAPI
//go:generate moq -out sessions_mock.go . Sessions

// RemoteAPI серверная история оценок
type RemoteAPI interface {
	ListHistory(ctx context.Context, token string) ([]api.HistoryRecord, error)
	CreateHistory(ctx context.Context, token string, req api.HistoryCreateRequest) (*api.HistoryRecord, error)
	UpdateHistoryNotes(ctx context.Context, token string, id int64, notes string) error
	DeleteHistory(ctx context.Context, token string, id int64) error
	ClearHistory(ctx context.Context, token string) error
}

// Sessions источник текущего пользователя
type Sessions interface {
	// Current возвращает действующую сессию или ошибку
	Current(ctx context.Context) (*session.Session, error)
	// User возвращает сохраненного пользователя, даже если токен истек
	User(ctx context.Context) (*models.User, error)
}
