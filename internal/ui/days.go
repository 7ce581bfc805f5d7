package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const weekdayWidth = 14

// renderDays renders the day list with the selected row highlighted.
func (m Model) renderDays(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	days := m.snapshot.Days
	if len(days) == 0 {
		msg := "Waiting for menu data..."
		if !m.snapshot.DaysUpdated.IsZero() {
			msg = "No days published for this canteen"
		}
		return styles.MutedText.Render(msg)
	}

	start, end := visibleRange(m.daySel, len(days), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		d := days[i]
		closed := strings.Contains(d.Weekday, "closed")
		if i == m.daySel {
			row := padRight(d.Weekday, weekdayWidth) + d.Date
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(truncate(row, width)))
			continue
		}
		weekdayStyle := styles.AccentText
		if closed {
			weekdayStyle = styles.FaintText
		}
		bg := NewBgStyle(m.theme.FocusBg)
		lines = append(lines, bg.FillLine(
			bg.Render(padRight(d.Weekday, weekdayWidth), weekdayStyle)+
				bg.Render(d.Date, styles.Text), width))
	}
	return strings.Join(lines, "\n")
}
