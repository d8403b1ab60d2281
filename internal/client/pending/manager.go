// Package pending реализует отложенные действия: намерение анонимного пользователя
// сохраняется, пользователь уходит на /login, после входа действие выполняется один раз.
package pending

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/carscope/internal/client/router"
	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/models"
)

// DefaultReturnDelay пауза перед возвратом на исходную страницу
const DefaultReturnDelay = 100 * time.Millisecond

// Direction направление изменения избранного
type Direction string

const (
	DirectionAdd    Direction = "add"
	DirectionRemove Direction = "remove"
)

// Outcome результат Execute
type Outcome int

const (
	// OutcomeNone отложенного действия нет или оно истекло
	OutcomeNone Outcome = iota
	// OutcomeCompleted действие выполнено, действие удалено
	OutcomeCompleted
	// OutcomeFailed запрос не удался, действие все равно удалено
	OutcomeFailed
	// OutcomeNavigated выполнен переход navigation-действия
	OutcomeNavigated
	// OutcomeAwaitingAuth нет сессии, действие оставлено в хранилище
	OutcomeAwaitingAuth
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeNavigated:
		return "navigated"
	case OutcomeAwaitingAuth:
		return "awaiting_auth"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Manager хранит единственное отложенное действие и выполняет его после входа.
// Не рассчитан на одновременный вызов из нескольких горутин.
type Manager struct {
	kv          storage.KVStore
	api         API
	sessions    Sessions
	nav         Navigator
	logger      *slog.Logger
	now         func() time.Time
	returnDelay time.Duration
}

// Option настраивает Manager
type Option func(*Manager)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithReturnDelay задает паузу перед возвратом на returnUrl
func WithReturnDelay(d time.Duration) Option {
	return func(m *Manager) {
		m.returnDelay = d
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager создает менеджер отложенных действий
func NewManager(kv storage.KVStore, api API, sessions Sessions, nav Navigator, opts ...Option) *Manager {
	m := &Manager{
		kv:          kv,
		api:         api,
		sessions:    sessions,
		nav:         nav,
		logger:      slog.Default(),
		now:         time.Now,
		returnDelay: DefaultReturnDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SaveFavoriteIntent запоминает добавление/удаление автомобиля из избранного.
// Ошибки хранилища только логируются.
func (m *Manager) SaveFavoriteIntent(ctx context.Context, carID int64, dir Direction, returnURL string) {
	kind := models.ActionAddFavorite
	if dir == DirectionRemove {
		kind = models.ActionRemoveFavorite
	}
	m.save(ctx, models.PendingAction{
		Type:      kind,
		Data:      models.PendingActionData{CarID: carID},
		ReturnURL: returnURL,
	})
}

// SaveSearchIntent запоминает сохранение поискового запроса
func (m *Manager) SaveSearchIntent(ctx context.Context, query, returnURL string) {
	m.save(ctx, models.PendingAction{
		Type:      models.ActionSaveSearch,
		Data:      models.PendingActionData{SearchQuery: query},
		ReturnURL: returnURL,
	})
}

// SaveNavigationIntent запоминает переход на закрытую страницу.
// returnUrl - текущее местоположение.
func (m *Manager) SaveNavigationIntent(ctx context.Context, targetPath string) {
	m.save(ctx, models.PendingAction{
		Type:      models.ActionNavigation,
		Data:      models.PendingActionData{TargetPath: targetPath},
		ReturnURL: m.nav.Current(ctx),
	})
}

func (m *Manager) save(ctx context.Context, action models.PendingAction) {
	action.Timestamp = m.now().UnixMilli()
	if err := storage.SetJSON(ctx, m.kv, storage.KeyPendingAction, action); err != nil {
		m.logger.Error("failed to save pending action", "type", action.Type, "error", err)
		return
	}
	m.logger.Info("saved pending action",
		"type", action.Type,
		"return_url", action.ReturnURL,
		"timestamp", action.Timestamp)
}

// Peek возвращает текущее действие или nil.
// Истекшие и поврежденные записи удаляются.
func (m *Manager) Peek(ctx context.Context) *models.PendingAction {
	data, err := m.kv.Get(ctx, storage.KeyPendingAction)
	if err != nil {
		if !storage.IsNotFound(err) {
			m.logger.Error("failed to read pending action", "error", err)
		}
		return nil
	}

	var action models.PendingAction
	if err := json.Unmarshal(data, &action); err != nil {
		m.logger.Warn("corrupt pending action, discarding", "error", err)
		m.Clear(ctx)
		return nil
	}

	if action.Expired(m.now()) {
		m.logger.Info("pending action expired", "type", action.Type, "created_at", action.CreatedAt())
		m.Clear(ctx)
		return nil
	}

	return &action
}

// Has сообщает, есть ли действующее отложенное действие
func (m *Manager) Has(ctx context.Context) bool {
	return m.Peek(ctx) != nil
}

// Clear удаляет отложенное действие. Повторный вызов безопасен.
func (m *Manager) Clear(ctx context.Context) {
	if err := m.kv.Remove(ctx, storage.KeyPendingAction); err != nil {
		m.logger.Error("failed to clear pending action", "error", err)
		return
	}
	m.logger.Debug("cleared pending action")
}

// Execute выполняет отложенное действие после успешного входа.
// Сбой запроса не повторяется: действие удаляется в любом случае,
// кроме отсутствия сессии.
func (m *Manager) Execute(ctx context.Context) Outcome {
	action := m.Peek(ctx)
	if action == nil {
		return OutcomeNone
	}

	m.logger.Info("executing pending action", "type", action.Type, "return_url", action.ReturnURL)

	switch action.Type {
	case models.ActionNavigation:
		return m.executeNavigation(ctx, action)
	case models.ActionAddFavorite, models.ActionRemoveFavorite, models.ActionSaveSearch:
		outcome := m.executeRemote(ctx, action)
		if outcome == OutcomeAwaitingAuth {
			return outcome
		}
		if outcome == OutcomeCompleted {
			m.returnTo(ctx, action.ReturnURL)
		}
		m.Clear(ctx)
		return outcome
	default:
		m.logger.Error("unknown pending action type", "type", action.Type)
		m.Clear(ctx)
		return OutcomeFailed
	}
}

func (m *Manager) executeNavigation(ctx context.Context, action *models.PendingAction) Outcome {
	defer m.Clear(ctx)

	if action.Data.TargetPath == "" {
		m.logger.Warn("navigation action without target path")
		return OutcomeFailed
	}
	if err := m.nav.Navigate(ctx, action.Data.TargetPath); err != nil {
		m.logger.Error("failed to navigate", "path", action.Data.TargetPath, "error", err)
		return OutcomeFailed
	}
	return OutcomeNavigated
}

// executeRemote отправляет действие на backend.
// Токен и пользователь читаются сейчас: при сохранении намерения их еще не было.
func (m *Manager) executeRemote(ctx context.Context, action *models.PendingAction) Outcome {
	sess, err := m.sessions.Current(ctx)
	if err != nil {
		m.logger.Warn("no session for pending action, keeping it", "type", action.Type, "error", err)
		return OutcomeAwaitingAuth
	}

	switch action.Type {
	case models.ActionAddFavorite, models.ActionRemoveFavorite:
		carID := action.Data.CarID
		if carID <= 0 {
			m.logger.Warn("favorite action without car id", "type", action.Type)
			return OutcomeFailed
		}
		if action.Type == models.ActionAddFavorite {
			err = m.api.AddFavorite(ctx, sess.Token, sess.User.ID, carID)
		} else {
			err = m.api.RemoveFavorite(ctx, sess.Token, carID)
		}
		if err != nil {
			m.logger.Error("failed to execute favorite action", "type", action.Type, "car_id", carID, "error", err)
			return OutcomeFailed
		}
		m.logger.Info("favorite action completed", "type", action.Type, "car_id", carID)

	case models.ActionSaveSearch:
		query := action.Data.SearchQuery
		if query == "" {
			m.logger.Warn("save_search action without query")
			return OutcomeFailed
		}
		if err := m.api.SaveSearch(ctx, sess.Token, sess.User.ID, query); err != nil {
			m.logger.Error("failed to save search", "error", err)
			return OutcomeFailed
		}
		m.logger.Info("search saved", "query", query)
	}

	return OutcomeCompleted
}

// returnTo возвращает пользователя на returnURL после паузы.
// Возврат на /login пропускается, чтобы не зациклиться.
func (m *Manager) returnTo(ctx context.Context, returnURL string) {
	if returnURL == "" || router.IsLogin(returnURL) {
		return
	}

	if m.returnDelay > 0 {
		timer := time.NewTimer(m.returnDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			m.logger.Warn("return navigation canceled", "return_url", returnURL, "error", ctx.Err())
			return
		case <-timer.C:
		}
	}

	if err := m.nav.Navigate(ctx, returnURL); err != nil {
		m.logger.Error("failed to navigate back", "return_url", returnURL, "error", err)
	}
}
