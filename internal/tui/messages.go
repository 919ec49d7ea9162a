package tui

import (
	"net/url"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// NavigateTo mounts a fresh page for URL and makes it the current location.
type NavigateTo struct {
	URL string
}

// ReplaceLocation rewrites the current location without remounting the page.
type ReplaceLocation struct {
	URL string
}

// callbackReceivedMsg carries the query of a redirect delivered by the
// loopback listener.
type callbackReceivedMsg struct {
	query url.Values
}

type callbackAcceptedMsg struct {
	result models.CallbackResult
	err    error
}

type browserOpenedMsg struct {
	err error
}

type ownerResolvedMsg struct {
	ownerID string
}

// Results of the vault list page carry the owner they were requested for; a
// page drops results of another owner.
type vaultsLoadedMsg struct {
	ownerID string
	vaults  []models.Vault
	err     error
}

type vaultCreatedMsg struct {
	ownerID string
	vault   models.Vault
	err     error
}

type vaultDeletedMsg struct {
	ownerID string
	err     error
}

type loggedOutMsg struct {
	err error
}

// Results of the vault detail page carry the vault they were requested for;
// a page drops results of another vault.
type vaultLoadedMsg struct {
	vaultID string
	vault   models.Vault
	ok      bool
}

type credentialsLoadedMsg struct {
	vaultID     string
	credentials []models.Credential
}

type credentialCreatedMsg struct {
	vaultID    string
	credential models.Credential
	err        error
}

type credentialUpdatedMsg struct {
	vaultID    string
	credential models.Credential
	err        error
}

type credentialDeletedMsg struct {
	vaultID      string
	credentialID string
	err          error
}
