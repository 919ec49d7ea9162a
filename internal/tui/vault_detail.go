package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	mapset "github.com/deckarep/golang-set/v2"
)

var writeClipboard = clipboard.WriteAll

// VaultDetailModel shows one vault and manages its credentials.
type VaultDetailModel struct {
	ctx         context.Context
	vaults      service.ClientVaultService
	credentials service.ClientCredentialService
	vaultID     string

	vault   *models.Vault
	items   []models.Credential
	idx     int
	loading bool
	spinner spinner.Model
	status  string

	// visible holds the ids of credentials whose password is shown.
	visible mapset.Set[string]

	form          *credentialFormModel
	confirmDelete *confirmModel
	deleteID      string
	errOverlay    *errorOverlayModel

	logger *logger.Logger
}

func NewVaultDetailModel(ctx context.Context, vaults service.ClientVaultService, credentials service.ClientCredentialService, vaultID string, logger *logger.Logger) *VaultDetailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &VaultDetailModel{
		ctx:         ctx,
		vaults:      vaults,
		credentials: credentials,
		vaultID:     vaultID,
		loading:     true,
		spinner:     s,
		visible:     mapset.NewThreadUnsafeSet[string](),
		logger:      logger,
	}
}

func (m *VaultDetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadVault(), m.cmdLoadCredentials())
}

func (m *VaultDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ownsResult(msg) {
		m.logger.Debug().Str("vault_id", m.vaultID).Msgf("dropping %T of another vault", msg)
		return m, nil
	}

	switch msg := msg.(type) {
	case vaultLoadedMsg:
		if msg.ok {
			v := msg.vault
			m.vault = &v
		}
		return m, nil
	case credentialsLoadedMsg:
		m.loading = false
		m.items = msg.credentials
		m.visible = mapset.NewThreadUnsafeSet[string]()
		m.clampIdx()
		return m, nil
	case credentialCreatedMsg:
		if m.form == nil {
			return m, nil
		}
		m.form.submitting = false
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.items = append([]models.Credential{msg.credential}, m.items...)
		m.idx = 0
		m.form = nil
		m.status = "Credential created"
		return m, nil
	case credentialUpdatedMsg:
		if m.form == nil {
			return m, nil
		}
		m.form.submitting = false
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.items = replaceCredential(m.items, msg.credential)
		m.form = nil
		m.status = "Credential updated"
		return m, nil
	case credentialDeletedMsg:
		m.confirmDelete = nil
		m.deleteID = ""
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.items = removeCredential(m.items, msg.credentialID)
		if m.visible.Contains(msg.credentialID) {
			next := m.visible.Clone()
			next.Remove(msg.credentialID)
			m.visible = next
		}
		m.clampIdx()
		m.status = "Credential deleted"
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.form != nil {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *VaultDetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.confirmDelete != nil {
		if m.confirmDelete.pending {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete.pending = true
			return m, m.cmdDelete(m.deleteID)
		case key.Matches(msg, keys.no):
			m.confirmDelete = nil
			m.deleteID = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(vaultsLocation)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.form = newCredentialFormModel(nil)
	case key.Matches(msg, keys.edit):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.form = newCredentialFormModel(&item)
	case key.Matches(msg, keys.delete):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.deleteID = item.ID
		m.confirmDelete = &confirmModel{message: fmt.Sprintf("Delete credential %q?", item.Username)}
	case key.Matches(msg, keys.reveal):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.toggleVisible(item.ID)
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := writeClipboard(item.Password); err != nil {
			m.logger.Warn().Err(err).Msg("clipboard write failed")
			m.status = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = "Password copied"
	}

	return m, nil
}

func (m *VaultDetailModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if !m.form.submitting {
			m.form = nil
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		input := m.form.input()
		if !input.Validate() {
			m.form.errMsg = app.MsgCredentialFieldsRequired
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		if m.form.editing {
			return m, m.cmdUpdate(m.form.credentialID, input)
		}
		return m, m.cmdCreate(input)
	}

	if m.form.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *VaultDetailModel) View() string {
	if m.errOverlay != nil {
		return m.errOverlay.View()
	}
	if m.form != nil {
		return renderPage(m.title(), m.form.View(), "")
	}
	if m.confirmDelete != nil {
		return m.confirmDelete.View()
	}

	var b strings.Builder
	if m.vault != nil && m.vault.Description != "" {
		b.WriteString(helpStyle.Render(m.vault.Description))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading credentials...\n")
	case len(m.items) == 0:
		b.WriteString(app.MsgNoCredentials)
		b.WriteString("\n")
	default:
		b.WriteString("  Username                 │ Password         │ URL\n")
		for i, c := range m.items {
			line := fmt.Sprintf("%s%-24s │ %-16s │ %s",
				cursor(i == m.idx),
				fitText(c.Username, 24),
				m.passwordText(c),
				valueOrDash(c.URL),
			)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ space: show/hide │ c: copy password │ esc: back")
}

func (m *VaultDetailModel) capturesInput() bool {
	return m.form != nil
}

// ownsResult reports whether msg is not a result requested for another vault.
func (m *VaultDetailModel) ownsResult(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case vaultLoadedMsg:
		return msg.vaultID == m.vaultID
	case credentialsLoadedMsg:
		return msg.vaultID == m.vaultID
	case credentialCreatedMsg:
		return msg.vaultID == m.vaultID
	case credentialUpdatedMsg:
		return msg.vaultID == m.vaultID
	case credentialDeletedMsg:
		return msg.vaultID == m.vaultID
	}
	return true
}

func (m *VaultDetailModel) title() string {
	if m.vault == nil || m.vault.Name == "" {
		return "Vault"
	}
	return m.vault.Name
}

// passwordText returns the stored password when revealed and the fixed mask
// otherwise. A revealed password is never shortened.
func (m *VaultDetailModel) passwordText(c models.Credential) string {
	if m.visible.Contains(c.ID) {
		return c.Password
	}
	return passwordMask
}

// toggleVisible replaces the visibility set with one where id is flipped.
func (m *VaultDetailModel) toggleVisible(id string) {
	next := m.visible.Clone()
	if next.Contains(id) {
		next.Remove(id)
	} else {
		next.Add(id)
	}
	m.visible = next
}

func (m *VaultDetailModel) current() (models.Credential, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func (m *VaultDetailModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// cmdLoadVault adopts the vault handed off by the list page, or fetches it.
func (m *VaultDetailModel) cmdLoadVault() tea.Cmd {
	ctx := m.ctx
	vaults := m.vaults
	vaultID := m.vaultID

	return func() tea.Msg {
		if vault, ok := vaults.TakeHandOff(vaultID); ok {
			return vaultLoadedMsg{vaultID: vaultID, vault: vault, ok: true}
		}
		vault, ok := vaults.Get(ctx, vaultID)
		return vaultLoadedMsg{vaultID: vaultID, vault: vault, ok: ok}
	}
}

func (m *VaultDetailModel) cmdLoadCredentials() tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials
	vaultID := m.vaultID

	return func() tea.Msg {
		return credentialsLoadedMsg{vaultID: vaultID, credentials: credentials.List(ctx, vaultID)}
	}
}

func (m *VaultDetailModel) cmdCreate(input models.CredentialInput) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials
	vaultID := m.vaultID

	return func() tea.Msg {
		created, err := credentials.Create(ctx, vaultID, input)
		return credentialCreatedMsg{vaultID: vaultID, credential: created, err: err}
	}
}

func (m *VaultDetailModel) cmdUpdate(credentialID string, input models.CredentialInput) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials
	vaultID := m.vaultID

	return func() tea.Msg {
		updated, err := credentials.Update(ctx, credentialID, input)
		return credentialUpdatedMsg{vaultID: vaultID, credential: updated, err: err}
	}
}

func (m *VaultDetailModel) cmdDelete(credentialID string) tea.Cmd {
	ctx := m.ctx
	credentials := m.credentials
	vaultID := m.vaultID

	return func() tea.Msg {
		return credentialDeletedMsg{vaultID: vaultID, credentialID: credentialID, err: credentials.Delete(ctx, credentialID)}
	}
}

// replaceCredential returns a copy of items with the record of updated.ID
// replaced in place.
func replaceCredential(items []models.Credential, updated models.Credential) []models.Credential {
	out := make([]models.Credential, len(items))
	for i, c := range items {
		if c.ID == updated.ID {
			out[i] = updated
			continue
		}
		out[i] = c
	}
	return out
}

func removeCredential(items []models.Credential, id string) []models.Credential {
	out := make([]models.Credential, 0, len(items))
	for _, c := range items {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
