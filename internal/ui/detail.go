package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// updateDetailViewport renders the meal detail into its viewport.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(m.detailViewport.Width))
}

func (m Model) renderDetailContent(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	if !m.snapshot.HasDetail {
		return styles.MutedText.Render("No meal selected")
	}
	d := m.snapshot.Detail
	wrap := lipgloss.NewStyle().Width(max(width, 1))

	var b strings.Builder
	b.WriteString(wrap.Inherit(styles.Text).Bold(true).Render(d.Name))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Price  "))
	b.WriteString(styles.AccentText.Render(d.Price))
	if d.Notes != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(styles.Text).Render(d.Notes))
	}
	return b.String()
}
