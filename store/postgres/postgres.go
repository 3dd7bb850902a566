// Package postgres implements the store repositories on top of database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"luctreport/store"
)

// PostgreSQLStore implements store.Store against the reporting database
type PostgreSQLStore struct {
	db *sql.DB
}

var _ store.Store = (*PostgreSQLStore)(nil)

// New wraps an already bootstrapped connection pool
func New(db *sql.DB) *PostgreSQLStore {
	return &PostgreSQLStore{db: db}
}

func (s *PostgreSQLStore) Mode() store.Mode { return store.ModeDatabase }

func (s *PostgreSQLStore) Users() store.UserRepository         { return &userPostgreSQL{db: s.db} }
func (s *PostgreSQLStore) Courses() store.CourseRepository     { return &coursePostgreSQL{db: s.db} }
func (s *PostgreSQLStore) Lecturers() store.LecturerRepository { return &lecturerPostgreSQL{db: s.db} }
func (s *PostgreSQLStore) Reports() store.ReportRepository     { return &reportPostgreSQL{db: s.db} }
func (s *PostgreSQLStore) Ratings() store.RatingRepository     { return &ratingPostgreSQL{db: s.db} }

// Ping checks the health of the database connection
func (s *PostgreSQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgreSQLStore) Close() error {
	return s.db.Close()
}

// withTransaction runs fn inside a transaction, rolling back when fn fails
func withTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // Will be ignored if tx.Commit() is called

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	classDataException      = "22"
)

// translate maps constraint violations onto the store sentinels. notFound is
// returned for a missing row; foreign key failures on insert also mean the
// referenced row is missing.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch {
	case pqErr.Code == codeUniqueViolation:
		return fmt.Errorf("%s: %w", pqErr.Constraint, store.ErrConflict)
	case pqErr.Code == codeForeignKeyViolation:
		return fmt.Errorf("%s: %w", pqErr.Constraint, notFound)
	case pqErr.Code == codeCheckViolation, pqErr.Code == codeNotNullViolation:
		return fmt.Errorf("%s: %w", pqErr.Message, store.ErrInvalid)
	case pqErr.Code.Class() == classDataException:
		return fmt.Errorf("%s: %w", pqErr.Message, store.ErrInvalid)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation
}
