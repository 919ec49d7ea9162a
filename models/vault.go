package models

// Vault is a named container of credentials owned by a single user.
// Vaults are created and deleted through the remote API; the client never
// edits them.
type Vault struct {
	// ID is the server-assigned identifier of the vault.
	ID string `json:"id"`

	// OwnerUserID is the identifier of the user that owns the vault.
	// Every vault returned by a list call belongs to the requested owner.
	OwnerUserID string `json:"owner_user_id"`

	// Name is the human readable vault name. Required on creation.
	Name string `json:"name"`

	// Description is an optional free-form text shown under the name.
	Description string `json:"description"`
}

// CreateVaultRequest is the body of POST /api/v1/vaults.
type CreateVaultRequest struct {
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
