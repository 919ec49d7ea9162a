package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by ParseTokenClaims for tokens that are not JWTs.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenClaims holds the claims of a session token that the client inspects.
// The signature is never verified on the client; the server does that.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is not after now.
// A token without exp never expires.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseTokenClaims decodes tokenString without verifying its signature and
// extracts the subject and expiry.
//
// Returns ErrNotJWT (wrapped) when tokenString is not a well-formed JWT; the
// caller then treats the token as opaque.
//
// Example usage:
//
//	claims, err := utils.ParseTokenClaims(rawToken)
//	if err == nil && claims.Expired(time.Now()) {
//	    // drop the token
//	}
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("%w: invalid token claims", ErrNotJWT)
	}

	var result TokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		result.Subject = sub
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred during getting expiration from token: %w", err)
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}
