package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestParseTokenClaims_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.Subject)
	assert.True(t, exp.Equal(claims.ExpiresAt))
	assert.False(t, claims.Expired(time.Now()))
}

func TestParseTokenClaims_Expired(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestParseTokenClaims_NoExpiry(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "user-7"})

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now()))
}

func TestParseTokenClaims_Opaque(t *testing.T) {
	_, err := ParseTokenClaims("opaque-session-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestTokenClaims_ExpiredAtBoundary(t *testing.T) {
	now := time.Now()
	assert.True(t, TokenClaims{ExpiresAt: now}.Expired(now))
	assert.False(t, TokenClaims{ExpiresAt: now.Add(time.Second)}.Expired(now))
}
