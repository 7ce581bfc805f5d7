package ui

import "github.com/charmbracelet/lipgloss"

// renderError renders the error screen centered in the content area.
func (m Model) renderError(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	text := m.errText
	if text == "" {
		text = "Something went wrong"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Width(max(width-4, 1)).Align(lipgloss.Center).Render(text),
		"",
		styles.FaintText.Render("Press any key to go back"),
	)
	return lipgloss.Place(max(width, 1), max(height, 1), lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.FocusBg)))
}
