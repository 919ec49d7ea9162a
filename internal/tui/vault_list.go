package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// VaultListModel lists the vaults of the current owner and creates, deletes
// and opens them.
type VaultListModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	vaults service.ClientVaultService
	query  url.Values

	ownerID string
	items   []models.Vault
	idx     int
	loading bool
	spinner spinner.Model
	status  string

	form          *vaultFormModel
	confirmDelete *confirmModel
	deleteID      string
	confirmLogout *confirmModel
	errOverlay    *errorOverlayModel

	logger *logger.Logger
}

// NewVaultListModel creates the page for a location with the given query. A
// user_id in the query overrides the stored owner.
func NewVaultListModel(ctx context.Context, auth service.ClientAuthService, vaults service.ClientVaultService, query url.Values, logger *logger.Logger) *VaultListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	if query == nil {
		query = url.Values{}
	}

	return &VaultListModel{
		ctx:     ctx,
		auth:    auth,
		vaults:  vaults,
		query:   query,
		loading: true,
		spinner: s,
		logger:  logger,
	}
}

func (m *VaultListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdResolveOwner())
}

func (m *VaultListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ownerResolvedMsg:
		m.ownerID = msg.ownerID
		cmds := []tea.Cmd{m.cmdLoad()}
		if m.query.Has("user_id") {
			cmds = append(cmds, m.cmdStripOwnerFromLocation())
		}
		return m, tea.Batch(cmds...)
	case vaultsLoadedMsg:
		if msg.ownerID != m.ownerID {
			m.logger.Debug().Str("owner_id", msg.ownerID).Msg("dropping vaults of another owner")
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.status = app.MsgFailedToLoadVaults + ": " + humanizeError(msg.err)
			return m, nil
		}
		m.status = ""
		m.items = msg.vaults
		m.clampIdx()
		return m, nil
	case vaultCreatedMsg:
		if m.form == nil || msg.ownerID != m.ownerID {
			return m, nil
		}
		m.form.submitting = false
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.items = append([]models.Vault{msg.vault}, m.items...)
		m.idx = 0
		m.form = nil
		m.status = "Vault created"
		return m, nil
	case vaultDeletedMsg:
		if msg.ownerID != m.ownerID {
			return m, nil
		}
		m.confirmDelete = nil
		m.deleteID = ""
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = "Vault deleted"
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case loggedOutMsg:
		m.confirmLogout = nil
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		return m, navigate(loginLocation)
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

func (m *VaultListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	if m.confirmLogout != nil {
		if m.confirmLogout.pending {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmLogout.pending = true
			return m, m.cmdLogout()
		case key.Matches(msg, keys.no):
			m.confirmLogout = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		vault, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpen(vault)
	case key.Matches(msg, keys.newItem):
		if m.ownerID == "" {
			m.errOverlay = &errorOverlayModel{message: app.MsgMustBeLoggedIn}
			return m, nil
		}
		m.form = newVaultFormModel()
		return m, nil
	case key.Matches(msg, keys.delete):
		vault, ok := m.current()
		if !ok {
			return m, nil
		}
		m.deleteID = vault.ID
		m.confirmDelete = &confirmModel{message: fmt.Sprintf("Delete vault %q?", vault.Name)}
	case key.Matches(msg, keys.logout):
		m.confirmLogout = &confirmModel{message: "Log out?"}
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}

	return m, nil
}

func (m *VaultListModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		name, description := m.form.values()
		if strings.TrimSpace(name) == "" {
			m.form.errMsg = app.MsgVaultNameRequired
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdCreate(name, description)
	}

	if m.form.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *VaultListModel) View() string {
	if m.errOverlay != nil {
		return m.errOverlay.View()
	}
	if m.form != nil {
		return renderPage("VAULTS", m.form.View(), "")
	}
	if m.confirmDelete != nil {
		return m.confirmDelete.View()
	}
	if m.confirmLogout != nil {
		return m.confirmLogout.View()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading vaults...\n")
	case len(m.items) == 0:
		b.WriteString(app.MsgNoVaults)
		b.WriteString("\n")
	default:
		for i, v := range m.items {
			line := cursor(i == m.idx) + fitText(v.Name, 40)
			if v.Description != "" {
				line += helpStyle.Render("  " + fitText(v.Description, 60))
			}
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

	title := "VAULTS"
	if m.ownerID != "" {
		title += "  " + helpStyle.Render(m.ownerID)
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ d: delete │ r: reload │ l: logout")
}

func (m *VaultListModel) capturesInput() bool {
	return m.form != nil
}

func (m *VaultListModel) current() (models.Vault, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Vault{}, false
	}
	return m.items[m.idx], true
}

func (m *VaultListModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *VaultListModel) cmdResolveOwner() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	override := strings.TrimSpace(m.query.Get("user_id"))

	return func() tea.Msg {
		return ownerResolvedMsg{ownerID: auth.ResolveOwner(ctx, override)}
	}
}

// cmdStripOwnerFromLocation drops user_id from the visible location without
// remounting the page.
func (m *VaultListModel) cmdStripOwnerFromLocation() tea.Cmd {
	query := url.Values{}
	for k, v := range m.query {
		if k != "user_id" {
			query[k] = v
		}
	}

	location := vaultsLocation
	if len(query) > 0 {
		location += "?" + query.Encode()
	}

	return func() tea.Msg {
		return ReplaceLocation{URL: location}
	}
}

func (m *VaultListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	vaults := m.vaults
	ownerID := m.ownerID

	return func() tea.Msg {
		items, err := vaults.List(ctx, ownerID)
		return vaultsLoadedMsg{ownerID: ownerID, vaults: items, err: err}
	}
}

func (m *VaultListModel) cmdCreate(name, description string) tea.Cmd {
	ctx := m.ctx
	vaults := m.vaults
	ownerID := m.ownerID

	return func() tea.Msg {
		vault, err := vaults.Create(ctx, ownerID, name, description)
		return vaultCreatedMsg{ownerID: ownerID, vault: vault, err: err}
	}
}

func (m *VaultListModel) cmdDelete(vaultID string) tea.Cmd {
	ctx := m.ctx
	vaults := m.vaults
	ownerID := m.ownerID

	return func() tea.Msg {
		return vaultDeletedMsg{ownerID: ownerID, err: vaults.Delete(ctx, vaultID)}
	}
}

// cmdOpen hands the vault off to its detail page and navigates there.
func (m *VaultListModel) cmdOpen(vault models.Vault) tea.Cmd {
	vaults := m.vaults
	log := m.logger

	return func() tea.Msg {
		if err := vaults.HandOff(vault); err != nil {
			log.Warn().Err(err).Str("vault_id", vault.ID).Msg("handoff failed, detail page will fetch the vault")
		}
		return NavigateTo{URL: vaultLocation(vault.ID)}
	}
}

func (m *VaultListModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}
