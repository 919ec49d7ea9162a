package tui

type confirmModel struct {
	message string
	pending bool
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	if m.pending {
		content += "[working...]"
	} else {
		content += "y yes    n no"
	}
	return overlayBoxStyle.Render(content)
}
