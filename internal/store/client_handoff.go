package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/allegro/bigcache/v3"
)

// VaultHandoffKey is the handoff key of the vault with the given id.
func VaultHandoffKey(vaultID string) string {
	return "vault_" + vaultID
}

// HandoffBigCache is a process-scoped [HandoffCache] on top of bigcache.
// Entries are JSON-encoded.
type HandoffBigCache struct {
	cache  *bigcache.BigCache
	logger *logger.Logger
}

// NewHandoffCache creates a handoff cache whose entries expire after ttl.
// The cleanup goroutine stops when ctx is done or Close is called.
func NewHandoffCache(ctx context.Context, ttl time.Duration, logger *logger.Logger) (*HandoffBigCache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.Shards = 16
	cfg.MaxEntriesInWindow = 64
	cfg.MaxEntrySize = 1024
	cfg.Verbose = false

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating handoff cache: %w", err)
	}

	return &HandoffBigCache{cache: cache, logger: logger}, nil
}

func (h *HandoffBigCache) Put(key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding handoff entry %q: %w", key, err)
	}

	if err = h.cache.Set(key, payload); err != nil {
		return fmt.Errorf("error storing handoff entry %q: %w", key, err)
	}

	return nil
}

func (h *HandoffBigCache) TakeOnce(key string, dst any) bool {
	payload, err := h.cache.Get(key)
	if err != nil {
		return false
	}
	_ = h.cache.Delete(key)

	if err = json.Unmarshal(payload, dst); err != nil {
		h.logger.Warn().Err(err).Str("key", key).Msg("discarding malformed handoff entry")
		return false
	}

	return true
}

// Close stops the cleanup goroutine and releases the cache.
func (h *HandoffBigCache) Close() error {
	return h.cache.Close()
}
