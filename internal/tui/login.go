// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login page. On mount it inspects
// the query of its location for the token and user_id markers of an OAuth
// redirect. When either is present the session is established once and the
// page navigates to the vault list; otherwise it offers to open the OAuth
// page in the browser or to paste the callback URL.
type LoginModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	query   url.Values
	openURL func(string) error

	// processed guards the one-time transition to the vault list.
	processed  bool
	redirected bool

	paste   textinput.Model
	pasting bool
	status  string
	errMsg  string
}

// NewLoginModel creates a [LoginModel] for a location with the given query.
// A nil openURL leaves opening the login URL to the user.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, query url.Values, openURL func(string) error) *LoginModel {
	paste := textinput.New()
	paste.Placeholder = "http://127.0.0.1:8765/login?token=...&user_id=..."
	paste.CharLimit = 4096
	paste.Width = 60

	return &LoginModel{
		ctx:     ctx,
		auth:    auth,
		query:   query,
		openURL: openURL,
		paste:   paste,
	}
}

// Init implements [tea.Model]. Processes the markers of the mount location.
func (m *LoginModel) Init() tea.Cmd {
	return m.processNavigation(m.query)
}

// Update implements [tea.Model]. Handled messages:
//   - [callbackAcceptedMsg] - finishes the flow and navigates to the vault list.
//   - [browserOpenedMsg]    - reports whether the browser could be launched.
//   - enter                 - opens the login URL, or submits the pasted URL.
//   - p                     - starts pasting a callback URL.
//   - esc                   - cancels pasting.
//
// Nothing is handled after the transition to the vault list.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.redirected {
		return m, nil
	}

	switch msg := msg.(type) {
	case callbackAcceptedMsg:
		m.redirected = true
		return m, navigate(vaultsLocation)
	case browserOpenedMsg:
		if msg.err != nil {
			m.status = "Could not open the browser. Open the URL above manually."
		} else {
			m.status = "Browser opened. Finish signing in there."
		}
		return m, nil
	case tea.KeyMsg:
		if m.pasting {
			return m.updatePaste(msg)
		}

		switch {
		case key.Matches(msg, keys.enter):
			if m.processed {
				return m, nil
			}
			m.errMsg = ""
			if m.openURL == nil {
				m.status = "Open the URL above in your browser."
				return m, nil
			}
			return m, m.cmdOpenBrowser()
		case key.Matches(msg, keys.paste):
			m.pasting = true
			m.errMsg = ""
			m.paste.SetValue("")
			return m, m.paste.Focus()
		}
		return m, nil
	}

	if m.pasting {
		var cmd tea.Cmd
		m.paste, cmd = m.paste.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *LoginModel) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.pasting = false
		m.errMsg = ""
		m.paste.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		query := parseCallbackInput(m.paste.Value())
		if !callbackFromQuery(query).HasMarker() {
			m.errMsg = app.MsgNoLoginMarkers
			return m, nil
		}
		m.pasting = false
		m.paste.Blur()
		return m, navigate(loginLocationWith(query))
	}

	var cmd tea.Cmd
	m.paste, cmd = m.paste.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.processed {
		b.WriteString("Signing in...\n")
		return renderPage("LOGIN", b.String(), "")
	}

	b.WriteString("Sign in with your Google account to open your vaults.\n\n")
	b.WriteString("Login URL:\n")
	b.WriteString(m.auth.LoginURL())
	b.WriteString("\n")

	if m.pasting {
		b.WriteString("\nCallback URL: [")
		b.WriteString(m.paste.View())
		b.WriteString("]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: open browser │ p: paste callback URL │ v: about"
	if m.pasting {
		hotKeys = "enter: submit │ esc: cancel"
	}
	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LoginModel) capturesInput() bool {
	return m.pasting
}

// processNavigation starts establishing the session for a location carrying
// login markers. Only the first such location is processed.
func (m *LoginModel) processNavigation(query url.Values) tea.Cmd {
	if m.processed {
		return nil
	}

	cb := callbackFromQuery(query)
	if !cb.HasMarker() {
		return nil
	}

	m.processed = true
	return m.cmdAcceptCallback(cb)
}

func (m *LoginModel) cmdAcceptCallback(cb models.CallbackResult) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		result, err := auth.AcceptCallback(ctx, cb)
		return callbackAcceptedMsg{result: result, err: err}
	}
}

func (m *LoginModel) cmdOpenBrowser() tea.Cmd {
	openURL := m.openURL
	loginURL := m.auth.LoginURL()

	return func() tea.Msg {
		return browserOpenedMsg{err: openURL(loginURL)}
	}
}

func callbackFromQuery(query url.Values) models.CallbackResult {
	return models.CallbackResult{
		OwnerID: strings.TrimSpace(query.Get("user_id")),
		Token:   strings.TrimSpace(query.Get("token")),
	}
}

// parseCallbackInput accepts a full callback URL or a bare query string.
func parseCallbackInput(raw string) url.Values {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.RawQuery != "" {
		return u.Query()
	}

	query, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return url.Values{}
	}
	return query
}

func navigate(location string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{URL: location}
	}
}
