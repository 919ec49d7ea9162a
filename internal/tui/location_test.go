package tui

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantOK   bool
		want     route
	}{
		{name: "login", location: "/login", wantOK: true, want: route{kind: loginPage, query: url.Values{}}},
		{
			name:     "login with markers",
			location: "/login?token=t&user_id=u",
			wantOK:   true,
			want:     route{kind: loginPage, query: url.Values{"token": {"t"}, "user_id": {"u"}}},
		},
		{name: "vault list", location: "/vault", wantOK: true, want: route{kind: vaultListPage, query: url.Values{}}},
		{name: "vault list trailing slash", location: "/vault/", wantOK: true, want: route{kind: vaultListPage, query: url.Values{}}},
		{name: "vault detail", location: "/vault/42", wantOK: true, want: route{kind: vaultDetailPage, vaultID: "42", query: url.Values{}}},
		{name: "escaped vault id", location: "/vault/a%20b", wantOK: true, want: route{kind: vaultDetailPage, vaultID: "a b", query: url.Values{}}},
		{name: "nested path", location: "/vault/42/credentials"},
		{name: "unknown", location: "/settings"},
		{name: "malformed", location: "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLocation(tt.location)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestVaultLocation(t *testing.T) {
	assert.Equal(t, "/vault/42", vaultLocation("42"))

	rt, ok := parseLocation(vaultLocation("a/b c"))
	assert.True(t, ok)
	assert.Equal(t, "a/b c", rt.vaultID)
}

func TestLoginLocationWith(t *testing.T) {
	assert.Equal(t, "/login", loginLocationWith(nil))
	assert.Equal(t, "/login?token=t&user_id=u", loginLocationWith(url.Values{"user_id": {"u"}, "token": {"t"}}))
}
