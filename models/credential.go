package models

import "strings"

// Credential is a username/password/URL triple stored inside exactly one
// vault. VaultID is fixed at creation and never changes afterwards.
type Credential struct {
	// ID is the server-assigned identifier of the credential.
	ID string `json:"id"`

	// VaultID references the vault the credential belongs to.
	VaultID string `json:"vault_id"`

	// Username is the login part of the credential. Required.
	Username string `json:"username"`

	// Password is the secret part of the credential. Required.
	// It is rendered masked unless explicitly revealed by the user.
	Password string `json:"password"`

	// URL is an optional address the credential is used for.
	URL string `json:"url,omitempty"`

	// CreatedAt and UpdatedAt are server timestamps, kept verbatim.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CredentialInput holds the user-editable fields of a credential. It is the
// payload of both the create and the update forms.
type CredentialInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
}

// Validate reports whether the required fields are filled in. Whitespace-only
// values count as empty.
func (c CredentialInput) Validate() bool {
	return strings.TrimSpace(c.Username) != "" && strings.TrimSpace(c.Password) != ""
}

// CreateCredentialRequest is the body of POST /api/v1/credentials.
type CreateCredentialRequest struct {
	VaultID  string `json:"vault_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
}

// UpdateCredentialRequest is the body of PUT /api/v1/credentials/{id}.
// The vault of a credential cannot be changed, so it is not part of the body.
type UpdateCredentialRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
}
