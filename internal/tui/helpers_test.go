package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type testServices struct {
	auth        *mock.MockClientAuthService
	vaults      *mock.MockClientVaultService
	credentials *mock.MockClientCredentialService
	services    *service.ClientServices
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := testServices{
		auth:        mock.NewMockClientAuthService(ctrl),
		vaults:      mock.NewMockClientVaultService(ctrl),
		credentials: mock.NewMockClientCredentialService(ctrl),
	}
	s.services = &service.ClientServices{
		AuthService:       s.auth,
		VaultService:      s.vaults,
		CredentialService: s.credentials,
	}
	return s
}

func newTestPageFactory(s testServices, openURL func(string) error) pageFactory {
	return pageFactory{
		ctx:      context.Background(),
		services: s.services,
		openURL:  openURL,
		logger:   logger.Nop(),
	}
}

// collectMsgs runs cmd and every command of a batch it returns. Spinner ticks
// are dropped.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collectMsgs(c)...)
		}
		return out
	case spinner.TickMsg, nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
