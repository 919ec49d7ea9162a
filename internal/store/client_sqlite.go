package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

const (
	ownerColumn = "owner_id"
	tokenColumn = "token"
)

// sessionSQLiteStore persists the session in the single row of the sessions
// table of the local SQLite file.
type sessionSQLiteStore struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionSQLiteStore returns a [SessionStore] backed by db. The schema must
// already be migrated.
func NewSessionSQLiteStore(db *DB, logger *logger.Logger) SessionStore {
	return &sessionSQLiteStore{db: db, now: time.Now, logger: logger}
}

func (s *sessionSQLiteStore) SetOwner(ctx context.Context, ownerID string) error {
	return s.setColumn(ctx, ownerColumn, ownerID)
}

func (s *sessionSQLiteStore) Owner(ctx context.Context) (string, error) {
	owner, err := s.getColumn(ctx, ownerColumn)
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", ErrLocalSessionNotFound
	}

	return owner, nil
}

func (s *sessionSQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.setColumn(ctx, tokenColumn, token)
}

func (s *sessionSQLiteStore) Token(ctx context.Context) (string, error) {
	return s.getColumn(ctx, tokenColumn)
}

func (s *sessionSQLiteStore) Clear(ctx context.Context) error {
	query, args, err := deleteSession()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Debug().Msg("session cleared")
	return nil
}

func (s *sessionSQLiteStore) setColumn(ctx context.Context, column, value string) error {
	query, args, err := upsertSessionColumn(column, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("column", column).Msg("error writing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// getColumn returns the value of column of the session row; a missing row
// reads as an empty value.
func (s *sessionSQLiteStore) getColumn(ctx context.Context, column string) (string, error) {
	query, args, err := selectSessionColumn(column)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("column", column).Msg("error reading session")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}
