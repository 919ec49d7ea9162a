package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwnerID   = errors.New("owner id is required")
	ErrEmptyVaultName = errors.New("vault name is required")
	ErrEmptyVaultID   = errors.New("vault id is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
)
