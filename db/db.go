package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"luctreport/config"
)

// opener opens and verifies a connection pool for a DSN
type opener func(ctx context.Context, dsn string) (*sql.DB, error)

// Bootstrap prepares the reporting database: it creates the database through the
// admin connection when missing, reconnects to it and creates every table.
// A failing table is logged and skipped; any connection failure aborts.
func Bootstrap(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	return bootstrap(ctx, cfg, logger, connect(cfg.ConnectTimeout))
}

func bootstrap(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, open opener) (*sql.DB, error) {
	admin, err := open(ctx, cfg.DSN(cfg.AdminName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to admin database %q: %w", cfg.AdminName, err)
	}
	created, err := ensureDatabase(ctx, admin, cfg.Name)
	admin.Close()
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info("database created", "database", cfg.Name)
	} else {
		logger.Info("database already exists", "database", cfg.Name)
	}

	db, err := open(ctx, cfg.DSN(cfg.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", cfg.Name, err)
	}
	logger.Info("database connection established", "database", cfg.Name)

	createTables(ctx, db, logger)
	return db, nil
}

func ensureDatabase(ctx context.Context, admin *sql.DB, name string) (bool, error) {
	var existing string
	err := admin.QueryRowContext(ctx,
		`SELECT datname FROM pg_catalog.pg_database WHERE datname = $1`, name,
	).Scan(&existing)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("failed to look up database %q: %w", name, err)
	}

	// CREATE DATABASE takes no bind parameters.
	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		return false, fmt.Errorf("failed to create database %q: %w", name, err)
	}
	return true, nil
}

func createTables(ctx context.Context, db *sql.DB, logger *slog.Logger) {
	for _, t := range tables {
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			logger.Error("table creation failed", "table", t.name, "error", err)
			continue
		}
		logger.Debug("table ready", "table", t.name)
	}
}

// connect opens a lib/pq pool with the service's pool settings and pings it
func connect(timeout time.Duration) opener {
	return func(ctx context.Context, dsn string) (*sql.DB, error) {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Minute * 3)

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return db, nil
	}
}
