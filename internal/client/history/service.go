// Package history ведет историю оценок: сервер, когда пользователь авторизован,
// и локальное хранилище (не больше LocalLimit записей) в остальных случаях.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/pkg/api"
)

// LocalLimit максимальное число записей в локальной истории
const LocalLimit = 20

// Source откуда загружен текущий список
type Source string

const (
	SourceNone   Source = ""
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Service держит текущий список истории.
// Не рассчитан на одновременные изменения одной области из нескольких горутин.
type Service struct {
	kv       storage.KVStore
	remote   RemoteAPI
	sessions Sessions
	logger   *slog.Logger
	now      func() time.Time
	source   Source
	entries  []models.HistoryEntry
}

// Option настраивает Service
type Option func(*Service)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService создает сервис истории оценок
func NewService(kv storage.KVStore, remote RemoteAPI, sessions Sessions, opts ...Option) *Service {
	s := &Service{
		kv:       kv,
		remote:   remote,
		sessions: sessions,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entries возвращает копию текущего списка
func (s *Service) Entries() []models.HistoryEntry {
	return slices.Clone(s.entries)
}

// Source сообщает, откуда получен текущий список
func (s *Service) Source() Source {
	return s.source
}

// scope определяет сессию и ключ локальной истории.
// Ключ зависит от сохраненного пользователя, а не от срока токена.
func (s *Service) scope(ctx context.Context) (*session.Session, string) {
	sess, err := s.sessions.Current(ctx)
	if err == nil {
		return sess, storage.HistoryKey(sess.User.ID)
	}

	user, err := s.sessions.User(ctx)
	if err != nil {
		return nil, storage.HistoryKey(0)
	}
	return nil, storage.HistoryKey(user.ID)
}

// Load загружает историю с сервера, при ошибке или без сессии - из локального хранилища
func (s *Service) Load(ctx context.Context) {
	sess, key := s.scope(ctx)
	if sess == nil {
		s.loadLocal(ctx, key)
		return
	}

	records, err := s.remote.ListHistory(ctx, sess.Token)
	if err != nil {
		s.logger.Error("failed to load estimation history, using local copy", "error", err)
		s.loadLocal(ctx, key)
		return
	}

	entries := make([]models.HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.Entry())
	}
	s.entries = entries
	s.source = SourceRemote
}

// LoadLocal загружает историю из локального хранилища текущей области
func (s *Service) LoadLocal(ctx context.Context) {
	_, key := s.scope(ctx)
	s.loadLocal(ctx, key)
}

func (s *Service) loadLocal(ctx context.Context, key string) {
	entries, err := s.readLocal(ctx, key)
	if err != nil {
		s.logger.Error("failed to read local history", "key", key, "error", err)
		entries = []models.HistoryEntry{}
	}
	s.entries = entries
	s.source = SourceLocal
}

// readLocal читает список по ключу.
// Отсутствие ключа и поврежденный JSON дают пустой список, записи с неверным id пропускаются.
// Остальные ошибки хранилища возвращаются: по ним нельзя судить о сохраненном состоянии.
func (s *Service) readLocal(ctx context.Context, key string) ([]models.HistoryEntry, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if storage.IsNotFound(err) {
			return []models.HistoryEntry{}, nil
		}
		return nil, err
	}

	var stored []models.StoredHistoryEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Error("failed to parse local history", "key", key, "error", err)
		return []models.HistoryEntry{}, nil
	}

	entries := make([]models.HistoryEntry, 0, len(stored))
	for _, st := range stored {
		entry, err := models.FromStored(st)
		if err != nil {
			s.logger.Warn("skipping local history entry", "key", key, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// persistLocal применяет mutate к локальному списку области и сохраняет результат.
// Чтение, изменение и запись выполняются одним шагом от сохраненного состояния.
// Если сохраненное состояние прочитать не удалось, ничего не записывается.
func (s *Service) persistLocal(ctx context.Context, key string, mutate func([]models.HistoryEntry) []models.HistoryEntry) error {
	current, err := s.readLocal(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read local history: %w", err)
	}

	entries := mutate(current)
	if len(entries) > LocalLimit {
		entries = entries[:LocalLimit]
	}

	if err := storage.SetJSON(ctx, s.kv, key, models.ToStoredList(entries)); err != nil {
		return fmt.Errorf("failed to persist local history: %w", err)
	}

	s.entries = entries
	s.source = SourceLocal
	return nil
}

// remoteOrLocal выполняет remote при наличии сессии, иначе или при его ошибке - local.
// Выполняется ровно одна из веток: после успешного remote локальное хранилище не трогается.
func (s *Service) remoteOrLocal(
	ctx context.Context,
	op string,
	remote func(sess *session.Session) error,
	local func(key string) error,
) error {
	sess, key := s.scope(ctx)
	if sess != nil {
		err := remote(sess)
		if err == nil {
			return nil
		}
		s.logger.Error("remote history operation failed, falling back to local", "op", op, "error", err)
	}

	if err := local(key); err != nil {
		s.logger.Error("local history operation failed", "op", op, "key", key, "error", err)
		return err
	}
	return nil
}

// Save сохраняет оценку в истории. Пустая notes означает отсутствие заметки.
func (s *Service) Save(ctx context.Context, car models.CarData, result models.EstimationResult, notes string) error {
	return s.remoteOrLocal(ctx, "save",
		func(sess *session.Session) error {
			req := api.HistoryCreateRequest{
				UserID:           sess.User.ID,
				CarData:          car,
				EstimationResult: result,
			}
			if notes != "" {
				req.Notes = &notes
			}
			if _, err := s.remote.CreateHistory(ctx, sess.Token, req); err != nil {
				return err
			}
			// id и порядок назначает сервер
			s.Load(ctx)
			return nil
		},
		func(key string) error {
			now := s.now()
			entry := models.HistoryEntry{
				ID:               now.UnixMilli(),
				CarData:          car,
				EstimationResult: result,
				Notes:            notes,
				CreatedAt:        models.FormatHistoryTime(now),
			}
			return s.persistLocal(ctx, key, func(entries []models.HistoryEntry) []models.HistoryEntry {
				return append([]models.HistoryEntry{entry}, entries...)
			})
		},
	)
}

// Delete удаляет запись истории
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.remoteOrLocal(ctx, "delete",
		func(sess *session.Session) error {
			if err := s.remote.DeleteHistory(ctx, sess.Token, id); err != nil {
				return err
			}
			s.Load(ctx)
			return nil
		},
		func(key string) error {
			return s.persistLocal(ctx, key, func(entries []models.HistoryEntry) []models.HistoryEntry {
				return slices.DeleteFunc(entries, func(e models.HistoryEntry) bool {
					return e.ID == id
				})
			})
		},
	)
}

// UpdateNotes меняет заметку к записи истории
func (s *Service) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return s.remoteOrLocal(ctx, "update_notes",
		func(sess *session.Session) error {
			if err := s.remote.UpdateHistoryNotes(ctx, sess.Token, id, notes); err != nil {
				return err
			}
			s.Load(ctx)
			return nil
		},
		func(key string) error {
			return s.persistLocal(ctx, key, func(entries []models.HistoryEntry) []models.HistoryEntry {
				for i := range entries {
					if entries[i].ID == id {
						entries[i].Notes = notes
					}
				}
				return entries
			})
		},
	)
}

// Clear удаляет всю историю текущей области
func (s *Service) Clear(ctx context.Context) error {
	return s.remoteOrLocal(ctx, "clear",
		func(sess *session.Session) error {
			if err := s.remote.ClearHistory(ctx, sess.Token); err != nil {
				return err
			}
			s.entries = []models.HistoryEntry{}
			s.source = SourceRemote
			return nil
		},
		func(key string) error {
			if err := s.kv.Remove(ctx, key); err != nil {
				return fmt.Errorf("failed to remove local history: %w", err)
			}
			s.entries = []models.HistoryEntry{}
			s.source = SourceLocal
			return nil
		},
	)
}
