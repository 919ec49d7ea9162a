package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore keeps the identity of the signed-in user. At most one owner is
// tracked; setting a new one overwrites the previous.
type SessionStore interface {
	// SetOwner stores ownerID as the current owner.
	SetOwner(ctx context.Context, ownerID string) error
	// Owner returns the current owner or ErrLocalSessionNotFound.
	Owner(ctx context.Context) (string, error)
	// SetToken stores the session token sent as a bearer token.
	SetToken(ctx context.Context, token string) error
	// Token returns the stored session token, empty when none.
	Token(ctx context.Context) (string, error)
	// Clear forgets owner and token.
	Clear(ctx context.Context) error
}

// HandoffCache carries a value from one page to the next one exactly once.
type HandoffCache interface {
	// Put stores value under key, replacing any previous entry.
	Put(key string, value any) error
	// TakeOnce decodes the entry under key into dst and removes it. It
	// reports false when the entry is absent or cannot be decoded.
	TakeOnce(key string, dst any) bool
}
