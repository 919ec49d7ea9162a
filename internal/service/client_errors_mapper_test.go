package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	plain := errors.New("plain")

	tests := []struct {
		name  string
		input error
		want  []error
	}{
		{name: "owner required", input: adapter.ErrOwnerRequired, want: []error{ErrNotLoggedIn, adapter.ErrOwnerRequired}},
		{name: "unauthorized", input: &adapter.StatusError{Op: "list vaults", Code: 401}, want: []error{ErrSessionExpired, adapter.ErrUnauthorized}},
		{name: "passthrough", input: plain, want: []error{plain}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.input)
			for _, w := range tt.want {
				assert.ErrorIs(t, got, w)
			}
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
