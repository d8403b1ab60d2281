package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/carscope/internal/client/actions"
	"github.com/iudanet/carscope/internal/client/api"
	"github.com/iudanet/carscope/internal/client/auth"
	"github.com/iudanet/carscope/internal/client/estimation"
	"github.com/iudanet/carscope/internal/client/history"
	"github.com/iudanet/carscope/internal/client/pending"
	"github.com/iudanet/carscope/internal/client/router"
	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/client/storage"
	"github.com/iudanet/carscope/internal/client/storage/boltdb"
	"github.com/iudanet/carscope/internal/client/storage/memory"
	"github.com/iudanet/carscope/internal/client/storage/sqlite"
	"github.com/iudanet/carscope/internal/config"
)

// deps сервисы клиента, собранные по конфигурации
type deps struct {
	kv         storage.KVStore
	closeKV    func() error
	logger     *slog.Logger
	client     *api.Client
	sessions   *session.Store
	nav        *router.Router
	pending    *pending.Manager
	history    *history.Service
	auth       *auth.Service
	actions    *actions.Service
	estimation *estimation.Service
}

// dependencies проверяет конфигурацию, открывает хранилище и собирает сервисы.
// Результат переиспользуется до closeDeps.
func (c *Cli) dependencies() (*deps, error) {
	if c.deps != nil {
		return c.deps, nil
	}

	cfg := c.globals.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	kv, closeKV := c.kv, func() error { return nil }
	if kv == nil {
		var err error
		kv, closeKV, err = openStorage(c.ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	d := &deps{
		kv:      kv,
		closeKV: closeKV,
		logger:  logger,
		client:  api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.Timeout), api.WithLogger(logger)),
	}
	d.sessions = session.NewStore(kv)
	d.nav = router.New(kv, c.io, logger)
	d.pending = pending.NewManager(kv, d.client, d.sessions, d.nav,
		pending.WithReturnDelay(cfg.ReturnDelay),
		pending.WithLogger(logger),
	)
	d.history = history.NewService(kv, d.client, d.sessions, history.WithLogger(logger))
	d.auth = auth.NewService(d.client, d.sessions, d.pending, d.nav, logger)
	d.actions = actions.NewService(d.client, d.sessions, d.pending, d.nav, logger)
	d.estimation = estimation.NewService(d.client, d.sessions, d.history, logger)

	c.deps = d
	return d, nil
}

func (c *Cli) closeDeps() {
	if c.deps == nil {
		return
	}
	if err := c.deps.closeKV(); err != nil {
		c.deps.logger.Error("failed to close storage", "error", err)
	}
	c.deps = nil
}

// openStorage открывает локальное хранилище выбранного драйвера
func openStorage(ctx context.Context, cfg config.Config) (storage.KVStore, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverBolt:
		s, err := boltdb.New(ctx, cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, s.Close, nil
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, s.Close, nil
	case config.DriverMemory:
		s := memory.New()
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
