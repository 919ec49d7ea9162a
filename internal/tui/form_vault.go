package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type vaultFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newVaultFormModel() *vaultFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "name"
	inputs[0].CharLimit = 128
	inputs[1].Placeholder = "description (optional)"
	inputs[1].CharLimit = 512
	inputs[0].Focus()

	return &vaultFormModel{inputs: inputs}
}

func (m *vaultFormModel) values() (name, description string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

func (m *vaultFormModel) focusNext() {
	m.focus = moveFocus(m.inputs, m.focus, 1)
}

func (m *vaultFormModel) focusPrev() {
	m.focus = moveFocus(m.inputs, m.focus, -1)
}

func (m *vaultFormModel) View() string {
	out := "New vault\n\n"
	out += "Name:        [" + m.inputs[0].View() + "]\n"
	out += "Description: [" + m.inputs[1].View() + "]\n\n"

	if m.submitting {
		out += "[Creating...]\n"
	} else {
		out += "[Create]\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	out += "\nesc cancel  tab next field  enter create"
	return out
}

// moveFocus blurs the input at from and focuses the one delta steps away.
func moveFocus(inputs []textinput.Model, from, delta int) int {
	inputs[from].Blur()
	next := (from + delta + len(inputs)) % len(inputs)
	inputs[next].Focus()
	return next
}
