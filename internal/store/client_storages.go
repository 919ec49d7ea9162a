package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Session keeps the identity of the signed-in user.
	Session SessionStore
	// Handoff carries the selected vault from the list page to its detail page.
	Handoff HandoffCache

	db      *DB
	handoff *HandoffBigCache
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens the SQLite session file at cfg.SessionDSN, creating it if it does
//     not yet exist, and runs pending migrations. With inMemory set this step
//     is skipped and the session lives in memory only.
//  2. Creates the in-process handoff cache with cfg.HandoffTTL lifetime.
//
// Returns an error if the database connection cannot be established, if
// migration fails or if the cache cannot be created.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, inMemory bool, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Bool("in_memory", inMemory).Msg("creating new storages...")

	storages := &ClientStorages{}

	if inMemory {
		storages.Session = NewSessionMemoryStore()
	} else {
		db, err := NewConnectSQLite(ctx, cfg.SessionDSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.db = db
		storages.Session = NewSessionSQLiteStore(db, logger)
	}

	handoff, err := NewHandoffCache(ctx, cfg.HandoffTTL, logger)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	storages.handoff = handoff
	storages.Handoff = handoff

	return storages, nil
}

// Close releases the session file and the handoff cache.
func (s *ClientStorages) Close() error {
	var errs []error
	if s.handoff != nil {
		errs = append(errs, s.handoff.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
