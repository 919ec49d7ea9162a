package models

import "time"

// Session is the locally persisted identity of the signed-in user.
// Only one session exists at a time.
type Session struct {
	// OwnerID is the opaque identifier of the user received from the OAuth
	// callback. Empty when no user is signed in.
	OwnerID string

	// Token is the opaque session token received from the OAuth callback.
	// When non-empty it is sent as a bearer token on API requests.
	Token string

	// UpdatedAt is the moment the session row was last written.
	UpdatedAt time.Time
}

// CallbackResult describes what the login page learned from an inbound
// OAuth redirect.
type CallbackResult struct {
	// OwnerID is the value of the user_id marker, if any.
	OwnerID string
	// Token is the value of the token marker, if any.
	Token string
}

// HasMarker reports whether the redirect carried at least one of the markers
// that finish the login flow.
func (c CallbackResult) HasMarker() bool {
	return c.OwnerID != "" || c.Token != ""
}

// Paths of the loopback callback listener that receive the OAuth redirect.
const (
	LoginCallbackPath = "/login"
	OAuthCallbackPath = "/auth/callback"
)
