// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrNotLoggedIn):
		return app.MsgMustBeLoggedIn
	case errors.Is(err, service.ErrVaultNameRequired):
		return app.MsgVaultNameRequired
	case errors.Is(err, service.ErrCredentialFieldsRequired):
		return app.MsgCredentialFieldsRequired
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}
