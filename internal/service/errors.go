package service

import "errors"

var (
	// ErrNotLoggedIn is returned by write operations that need an owner when
	// no user is signed in.
	ErrNotLoggedIn = errors.New("you must be logged in (owner id missing)")

	// ErrSessionExpired wraps API errors caused by a rejected session token.
	ErrSessionExpired = errors.New("session expired")

	ErrVaultNameRequired        = errors.New("vault name is required")
	ErrCredentialFieldsRequired = errors.New("username and password are required")
)
