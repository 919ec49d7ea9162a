package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		SessionDSN: filepath.Join(t.TempDir(), "session.db"),
		HandoffTTL: time.Minute,
	}

	storages, err := NewClientStorages(ctx, cfg, false, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storages.Session.SetOwner(ctx, "u1"))
	require.NoError(t, storages.Handoff.Put("vault_1", map[string]string{"id": "1"}))
	require.NoError(t, storages.Close())

	again, err := NewClientStorages(ctx, cfg, false, logger.Nop())
	require.NoError(t, err)
	defer again.Close()

	owner, err := again.Session.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)

	var v map[string]string
	assert.False(t, again.Handoff.TakeOnce("vault_1", &v), "handoff does not outlive the process")
}

func TestNewClientStorages_InMemory(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "never-created.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{SessionDSN: dsn, HandoffTTL: time.Minute}, true, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NoError(t, storages.Session.SetOwner(ctx, "u1"))
	assert.NoFileExists(t, dsn)
}

func TestNewClientStorages_BadPath(t *testing.T) {
	dir := t.TempDir()
	_, err := NewClientStorages(context.Background(), config.ClientStorage{SessionDSN: dir, HandoffTTL: time.Minute}, false, logger.Nop())
	assert.Error(t, err)
}
