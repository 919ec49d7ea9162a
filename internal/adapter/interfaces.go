// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote vault API.
//
// The primary abstraction is [VaultAPI], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPVaultAdapter]) that unwraps the {"data": ...} success envelope.
//
// Non-2xx responses are returned as [*StatusError], which unwraps to the
// sentinel values defined in errors.go so that callers can use [errors.Is]
// for transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). Failures to reach the server wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_api_mock.go -package=mock

// VaultAPI defines communication with the vault API. Implementations are
// responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type VaultAPI interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token removes the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set.
	Token() string

	// ListVaults returns the vaults of ownerID in server order. An empty
	// ownerID yields an empty list without a network call.
	ListVaults(ctx context.Context, ownerID string) ([]models.Vault, error)

	// CreateVault creates a vault owned by req.OwnerUserID and returns the
	// server record. An empty owner fails with [ErrOwnerRequired] before any
	// network call.
	CreateVault(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error)

	// DeleteVault deletes the vault with the given id.
	DeleteVault(ctx context.Context, vaultID string) error

	// GetVault fetches a single vault by id.
	GetVault(ctx context.Context, vaultID string) (models.Vault, error)

	// ListCredentials returns the credentials stored in the vault.
	ListCredentials(ctx context.Context, vaultID string) ([]models.Credential, error)

	// CreateCredential stores a new credential in req.VaultID and returns the
	// server record.
	CreateCredential(ctx context.Context, req models.CreateCredentialRequest) (models.Credential, error)

	// UpdateCredential replaces username, password and url of the credential
	// and returns the server record.
	UpdateCredential(ctx context.Context, credentialID string, req models.UpdateCredentialRequest) (models.Credential, error)

	// DeleteCredential deletes the credential with the given id.
	DeleteCredential(ctx context.Context, credentialID string) error
}
