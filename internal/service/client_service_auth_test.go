package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockVaultAPI, *mock.MockSessionStore) {
	t.Helper()
	mockAdapter := mock.NewMockVaultAPI(ctrl)
	mockSession := mock.NewMockSessionStore(ctrl)

	storages := &store.ClientStorages{Session: mockSession}
	svc, err := NewClientAuthService(storages, mockAdapter,
		config.ClientAdapter{APIAddress: "localhost:8080"},
		config.ClientAuth{OAuthPath: "/auth/google", CallbackAddress: "127.0.0.1:8765"},
		logger.Nop(),
	)
	require.NoError(t, err)

	authSvc := svc.(*clientAuthService)
	authSvc.now = func() time.Time { return fixedNow }
	return authSvc, mockAdapter, mockSession
}

func jwtWithExpiry(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

// ── LoginURL ─────────────────────────────────────────────────────────────────

func TestClientAuthService_LoginURL(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		auth     config.ClientAuth
		expected string
	}{
		{
			name:     "with callback listener",
			address:  "localhost:8080",
			auth:     config.ClientAuth{OAuthPath: "/auth/google", CallbackAddress: "127.0.0.1:8765"},
			expected: "http://localhost:8080/auth/google?redirect_uri=http%3A%2F%2F127.0.0.1%3A8765%2Fauth%2Fcallback",
		},
		{
			name:     "without callback listener",
			address:  "https://vault.example.com/",
			auth:     config.ClientAuth{OAuthPath: "/auth/google"},
			expected: "https://vault.example.com/auth/google",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewClientAuthService(&store.ClientStorages{}, nil,
				config.ClientAdapter{APIAddress: tt.address}, tt.auth, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, svc.LoginURL())
		})
	}
}

func TestNewClientAuthService_InvalidAddress(t *testing.T) {
	_, err := NewClientAuthService(&store.ClientStorages{}, nil,
		config.ClientAdapter{APIAddress: "  "}, config.ClientAuth{OAuthPath: "/auth/google"}, logger.Nop())
	assert.Error(t, err)
}

// ── AcceptCallback ───────────────────────────────────────────────────────────

func TestClientAuthService_AcceptCallback_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().SetOwner(ctx, "u-1").Return(nil)

	got, err := svc.AcceptCallback(ctx, models.CallbackResult{OwnerID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, models.CallbackResult{OwnerID: "u-1"}, got)
}

func TestClientAuthService_AcceptCallback_OpaqueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSession.EXPECT().SetOwner(ctx, "u-1").Return(nil),
		mockAdapter.EXPECT().SetToken("opaque-token"),
		mockSession.EXPECT().SetToken(ctx, "opaque-token").Return(nil),
	)

	_, err := svc.AcceptCallback(ctx, models.CallbackResult{OwnerID: "u-1", Token: "opaque-token"})
	require.NoError(t, err)
}

func TestClientAuthService_AcceptCallback_ValidJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := jwtWithExpiry(t, fixedNow.Add(time.Hour))

	mockAdapter.EXPECT().SetToken(token)
	mockSession.EXPECT().SetToken(ctx, token).Return(nil)

	got, err := svc.AcceptCallback(ctx, models.CallbackResult{Token: token})
	require.NoError(t, err)
	assert.Equal(t, token, got.Token)
}

// TestClientAuthService_AcceptCallback_ExpiredJWT verifies an expired token is
// neither attached nor stored while the result still reports it.
func TestClientAuthService_AcceptCallback_ExpiredJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	token := jwtWithExpiry(t, fixedNow.Add(-time.Minute))

	mockSession.EXPECT().SetOwner(ctx, "u-1").Return(nil)

	got, err := svc.AcceptCallback(ctx, models.CallbackResult{OwnerID: "u-1", Token: token})
	require.NoError(t, err)
	assert.True(t, got.HasMarker())
	assert.Equal(t, token, got.Token)
}

func TestClientAuthService_AcceptCallback_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().SetOwner(ctx, "u-1").Return(errors.New("disk full"))
	mockAdapter.EXPECT().SetToken("tok")
	mockSession.EXPECT().SetToken(ctx, "tok").Return(errors.New("disk full"))

	got, err := svc.AcceptCallback(ctx, models.CallbackResult{OwnerID: "u-1", Token: "tok"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store owner")
	assert.Contains(t, err.Error(), "store token")
	assert.Equal(t, models.CallbackResult{OwnerID: "u-1", Token: "tok"}, got)
}

func TestClientAuthService_AcceptCallback_NoMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	got, err := svc.AcceptCallback(context.Background(), models.CallbackResult{})
	require.NoError(t, err)
	assert.False(t, got.HasMarker())
}

// ── CurrentOwner / ResolveOwner ──────────────────────────────────────────────

func TestClientAuthService_CurrentOwner(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		err      error
		expected string
	}{
		{name: "stored owner", owner: "u-1", expected: "u-1"},
		{name: "no session", err: store.ErrLocalSessionNotFound, expected: ""},
		{name: "store failure", err: errors.New("locked"), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockSession := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			mockSession.EXPECT().Owner(ctx).Return(tt.owner, tt.err)
			assert.Equal(t, tt.expected, svc.CurrentOwner(ctx))
		})
	}
}

func TestClientAuthService_ResolveOwner_OverrideWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().SetOwner(ctx, "u-9").Return(nil)
	assert.Equal(t, "u-9", svc.ResolveOwner(ctx, "u-9"))
}

func TestClientAuthService_ResolveOwner_OverrideKeptWhenStoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().SetOwner(ctx, "u-9").Return(errors.New("read only"))
	assert.Equal(t, "u-9", svc.ResolveOwner(ctx, "u-9"))
}

func TestClientAuthService_ResolveOwner_FallsBackToStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Owner(ctx).Return("u-1", nil)
	assert.Equal(t, "u-1", svc.ResolveOwner(ctx, ""))
}

// ── RestoreToken ─────────────────────────────────────────────────────────────

func TestClientAuthService_RestoreToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("stored", nil)
	mockAdapter.EXPECT().SetToken("stored")

	require.NoError(t, svc.RestoreToken(ctx))
}

func TestClientAuthService_RestoreToken_NothingStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("", nil)
	require.NoError(t, svc.RestoreToken(ctx))
}

func TestClientAuthService_RestoreToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return(jwtWithExpiry(t, fixedNow.Add(-time.Hour)), nil)
	require.NoError(t, svc.RestoreToken(ctx))
}

func TestClientAuthService_RestoreToken_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("", errors.New("corrupt"))
	err := svc.RestoreToken(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read stored token")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken(""),
		mockSession.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, svc.Logout(ctx))
}

func TestClientAuthService_Logout_ClearError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockSession.EXPECT().Clear(ctx).Return(errors.New("locked"))

	err := svc.Logout(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear session")
}
