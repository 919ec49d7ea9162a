package service

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for the OAuth login flow
// and the locally stored identity.
type ClientAuthService interface {
	// LoginURL returns the OAuth initiation URL. When the callback listener
	// is enabled the URL names it in a redirect_uri query parameter.
	LoginURL() string

	// AcceptCallback interprets the markers of an inbound OAuth redirect.
	// A user_id is committed to the session store. A token is stored and
	// attached to API requests unless it is a JWT that has already expired.
	// The returned result always reflects the markers that were present, so
	// callers can finish the login flow even when persisting failed.
	AcceptCallback(ctx context.Context, cb models.CallbackResult) (models.CallbackResult, error)

	// CurrentOwner returns the stored owner id, or an empty string when no
	// user is signed in. Store failures are logged and read as signed out.
	CurrentOwner(ctx context.Context) string

	// ResolveOwner returns override when it is non-empty, persisting it as
	// the current owner; otherwise it returns CurrentOwner.
	ResolveOwner(ctx context.Context, override string) string

	// RestoreToken loads the stored token into the API adapter.
	RestoreToken(ctx context.Context) error

	// Logout forgets owner and token locally and in the API adapter.
	Logout(ctx context.Context) error
}

// ClientVaultService defines the client-side contract for vault management.
// Reads on the list path return their errors; the single vault fetch fails
// soft.
type ClientVaultService interface {
	// List returns the vaults of ownerID in server order. An empty ownerID
	// yields an empty list without a network call.
	List(ctx context.Context, ownerID string) ([]models.Vault, error)

	// Create creates a vault for ownerID. Returns ErrNotLoggedIn for an empty
	// owner and ErrVaultNameRequired for a blank name, both before any
	// network call.
	Create(ctx context.Context, ownerID, name, description string) (models.Vault, error)

	// Delete deletes the vault.
	Delete(ctx context.Context, vaultID string) error

	// Get fetches the vault by id. Failures are logged and reported as
	// absent.
	Get(ctx context.Context, vaultID string) (models.Vault, bool)

	// HandOff stores vault for the detail page of the same vault.
	HandOff(vault models.Vault) error

	// TakeHandOff returns the vault stored by HandOff for vaultID and
	// removes it.
	TakeHandOff(vaultID string) (models.Vault, bool)
}

// ClientCredentialService defines the client-side contract for credentials
// inside one vault.
type ClientCredentialService interface {
	// List returns the credentials of the vault. Failures are logged and
	// yield an empty list.
	List(ctx context.Context, vaultID string) []models.Credential

	// Create stores a new credential. Returns ErrCredentialFieldsRequired
	// when username or password is blank.
	Create(ctx context.Context, vaultID string, input models.CredentialInput) (models.Credential, error)

	// Update replaces the fields of the credential and returns the server
	// record.
	Update(ctx context.Context, credentialID string, input models.CredentialInput) (models.Credential, error)

	// Delete deletes the credential.
	Delete(ctx context.Context, credentialID string) error
}
