package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mensa/internal/meal"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("mensa", styles.Logo)}

	canteen := 0
	if m.source != nil {
		canteen = m.source.Canteen()
	}
	if canteen > 0 {
		parts = append(parts,
			bg.Render("Canteen:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("#%d", canteen), styles.Text))
	} else {
		parts = append(parts, bg.Render("No canteen", styles.DangerText))
	}

	if m.diet != meal.DietNone {
		parts = append(parts,
			bg.Render(iconGlyph(m.diet.Icon()), styles.Text)+bg.Space()+
				bg.Render(m.diet.String(), styles.DietStyle(m.diet.Icon())))
	}

	switch {
	case m.pending != "":
		parts = append(parts, bg.Render(m.pending+"...", styles.WarningText.Bold(true)))
	case !m.snapshot.DaysUpdated.IsZero():
		parts = append(parts,
			bg.Render("Updated", styles.FaintText)+bg.Space()+
				bg.Render(m.snapshot.DaysUpdated.Format("15:04"), styles.MutedText))
	default:
		parts = append(parts, bg.Render("Waiting for menu...", styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(styles.Header.Render(strings.Join(parts, sep)))
}

// renderCommandBar renders the command hints for the visible view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.top() {
	case ViewMeals:
		commands = []cmd{
			{"enter", "Details"},
			{"j/k", "Navigate"},
			{"d", "Diet"},
			{"esc", "Days"},
			{"?", "More"},
		}
	case ViewDetail:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"esc", "Meals"},
			{"?", "More"},
		}
	case ViewError:
		commands = []cmd{
			{"any key", "Back"},
			{"e", "Quit"},
		}
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"r", "Reload"},
			{"l", "Close"},
			{"?", "More"},
		}
	default: // ViewDays
		commands = []cmd{
			{"enter", "Meals"},
			{"j/k", "Navigate"},
			{"r", "Refresh"},
			{"l", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
