package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOwnerUserID targets the owner of a new vault.
	FieldOwnerUserID = "owner_user_id"

	// FieldName targets the vault name. Whitespace-only names are empty.
	FieldName = "name"

	// FieldVaultID targets the vault a new credential is stored in.
	FieldVaultID = "vault_id"

	// FieldUsername targets the credential username.
	FieldUsername = "username"

	// FieldPassword targets the credential password. The value is checked
	// for emptiness only and never trimmed.
	FieldPassword = "password"
)

// VaultValidator implements [Validator] for the vault and credential request
// bodies: CreateVaultRequest, CreateCredentialRequest,
// UpdateCredentialRequest and CredentialInput. Both values and pointers are
// accepted.
type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateVaultRequest:
		return v.validateCreateVault(value, fields...)
	case *models.CreateVaultRequest:
		return v.validateCreateVault(*value, fields...)

	case models.CreateCredentialRequest:
		return v.validateCreateCredential(value, fields...)
	case *models.CreateCredentialRequest:
		return v.validateCreateCredential(*value, fields...)

	case models.UpdateCredentialRequest:
		return v.validateCredentialFields(value.Username, value.Password, fields...)
	case *models.UpdateCredentialRequest:
		return v.validateCredentialFields(value.Username, value.Password, fields...)

	case models.CredentialInput:
		return v.validateCredentialFields(value.Username, value.Password, fields...)
	case *models.CredentialInput:
		return v.validateCredentialFields(value.Username, value.Password, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCreateVault(request models.CreateVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerUserID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerUserID:
			if isBlank(request.OwnerUserID) {
				return ErrEmptyOwnerID
			}
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyVaultName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateCreateCredential(request models.CreateCredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVaultID, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		if f == FieldVaultID {
			if isBlank(request.VaultID) {
				return ErrEmptyVaultID
			}
			continue
		}
		if err := v.validateCredentialFields(request.Username, request.Password, f); err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateCredentialFields(username, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if isBlank(password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
