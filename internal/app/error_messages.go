// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// terminal pages and the loopback callback listener.
//
// Keeping them in one place ensures consistent wording between the pages and
// the browser window that receives the login redirect.
package app

const (
	// MsgMustBeLoggedIn is shown when a vault is created without a signed-in
	// owner. No request is sent in that case.
	MsgMustBeLoggedIn = "Cannot create vault: you must be logged in (owner id missing). Please login first."

	// MsgFailedToLoadVaults prefixes the status line of a failed vault list load.
	MsgFailedToLoadVaults = "failed to load vaults"

	// MsgServerUnavailable replaces dial and timeout failures.
	MsgServerUnavailable = "No network connection or the server is unavailable"

	// MsgSessionExpired is shown when the API rejects the session token.
	MsgSessionExpired = "Your session has expired. Please login again."

	MsgNoVaults      = "No vaults yet. Create one to get started!"
	MsgNoCredentials = "No credentials yet. Create one to get started!"

	MsgVaultNameRequired        = "Vault name is required"
	MsgCredentialFieldsRequired = "Username and password are required"

	// MsgNoLoginMarkers is shown when a pasted callback URL carries neither
	// token nor user_id.
	MsgNoLoginMarkers = "No token or user_id found in the pasted URL"

	// MsgLoginComplete is the body of the page served to the browser after
	// the redirect has been forwarded to the terminal.
	MsgLoginComplete = "Login complete. You can close this window and return to the terminal."

	// MsgLoginMissingParams is served when the redirect carries no markers.
	MsgLoginMissingParams = "The login redirect did not carry a token or user_id."

	// MsgLoginBusy is served when the terminal has not consumed the previous
	// redirect yet.
	MsgLoginBusy = "The terminal is still processing a previous login. Please retry."
)
