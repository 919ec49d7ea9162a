package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandoff(t *testing.T) *HandoffBigCache {
	t.Helper()
	h, err := NewHandoffCache(context.Background(), time.Minute, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestVaultHandoffKey(t *testing.T) {
	assert.Equal(t, "vault_42", VaultHandoffKey("42"))
}

func TestHandoff_TakeOnceConsumes(t *testing.T) {
	h := newTestHandoff(t)
	vault := models.Vault{ID: "v1", OwnerUserID: "u1", Name: "Home", Description: "family"}

	require.NoError(t, h.Put(VaultHandoffKey(vault.ID), vault))

	var got models.Vault
	require.True(t, h.TakeOnce(VaultHandoffKey(vault.ID), &got))
	assert.Equal(t, vault, got)

	var again models.Vault
	assert.False(t, h.TakeOnce(VaultHandoffKey(vault.ID), &again))
	assert.Equal(t, models.Vault{}, again)
}

func TestHandoff_Absent(t *testing.T) {
	var got models.Vault
	assert.False(t, newTestHandoff(t).TakeOnce("vault_missing", &got))
}

func TestHandoff_PutOverwrites(t *testing.T) {
	h := newTestHandoff(t)
	require.NoError(t, h.Put("vault_1", models.Vault{ID: "1", Name: "old"}))
	require.NoError(t, h.Put("vault_1", models.Vault{ID: "1", Name: "new"}))

	var got models.Vault
	require.True(t, h.TakeOnce("vault_1", &got))
	assert.Equal(t, "new", got.Name)
}

func TestHandoff_MalformedIsRemovedAndAbsent(t *testing.T) {
	h := newTestHandoff(t)
	require.NoError(t, h.cache.Set("vault_1", []byte("{not json")))

	var got models.Vault
	assert.False(t, h.TakeOnce("vault_1", &got))

	_, err := h.cache.Get("vault_1")
	assert.Error(t, err, "malformed entry must be removed")
}

func TestHandoff_PutUnencodable(t *testing.T) {
	err := newTestHandoff(t).Put("vault_1", make(chan int))
	assert.Error(t, err)
}
