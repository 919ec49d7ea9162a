package tui

import (
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type credentialFormModel struct {
	inputs       []textinput.Model
	focus        int
	editing      bool
	credentialID string
	submitting   bool
	errMsg       string
}

// newCredentialFormModel returns an empty form, or one prefilled from item
// for editing.
func newCredentialFormModel(item *models.Credential) *credentialFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 512
	}
	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'
	inputs[2].Placeholder = "https:// (optional)"
	inputs[0].Focus()

	m := &credentialFormModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.credentialID = item.ID
	m.inputs[0].SetValue(item.Username)
	m.inputs[1].SetValue(item.Password)
	m.inputs[2].SetValue(item.URL)
	return m
}

func (m *credentialFormModel) input() models.CredentialInput {
	return models.CredentialInput{
		Username: m.inputs[0].Value(),
		Password: m.inputs[1].Value(),
		URL:      m.inputs[2].Value(),
	}
}

func (m *credentialFormModel) focusNext() {
	m.focus = moveFocus(m.inputs, m.focus, 1)
}

func (m *credentialFormModel) focusPrev() {
	m.focus = moveFocus(m.inputs, m.focus, -1)
}

func (m *credentialFormModel) View() string {
	title := "New credential"
	action := "Save"
	if m.editing {
		title = "Edit credential: " + m.inputs[0].Value()
		action = "Update"
	}

	out := title + "\n\n"
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n"
	out += "URL:      [" + m.inputs[2].View() + "]\n\n"

	if m.submitting {
		out += "[" + action + "...]\n"
	} else {
		out += "[" + action + "]\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	out += "\nesc cancel  tab next field  enter " + action
	return out
}
