package db

import (
	"context"
	"database/sql"
	"log/slog"

	"luctreport/config"
	"luctreport/store"
	"luctreport/store/memory"
	"luctreport/store/postgres"
)

// Select picks the storage backend for the lifetime of the process. It tries
// Bootstrap exactly once and falls back to the seeded in-memory store on any
// failure. The only error it returns comes from seeding the fallback.
func Select(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Store, error) {
	return selectWith(ctx, cfg, logger, func(ctx context.Context) (*sql.DB, error) {
		return Bootstrap(ctx, cfg, logger)
	})
}

func selectWith(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, bootstrap func(context.Context) (*sql.DB, error)) (store.Store, error) {
	if cfg.Disabled {
		logger.Info("database disabled, using demo storage")
		return demoStore()
	}

	db, err := bootstrap(ctx)
	if err != nil {
		logger.Warn("database unavailable, using demo storage", "error", err)
		return demoStore()
	}

	logger.Info("storage selected", "mode", store.ModeDatabase)
	return postgres.New(db), nil
}

func demoStore() (store.Store, error) {
	s, err := memory.NewSeeded()
	if err != nil {
		return nil, err
	}
	return s, nil
}
