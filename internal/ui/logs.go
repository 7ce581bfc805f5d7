package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/mensa/internal/logtail"
)

// updateLogViewport renders the loaded log lines, newest at the bottom.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	atBottom := m.logViewport.AtBottom()
	m.logViewport.SetContent(m.renderLogContent())
	if atBottom || m.logViewport.YOffset == 0 {
		m.logViewport.GotoBottom()
	}
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	if m.logErr != nil {
		return styles.DangerText.Render(m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		if m.logPath == "" {
			return styles.MutedText.Render("Logging is disabled")
		}
		return styles.MutedText.Render("No log entries in " + m.logPath)
	}

	width := max(m.logViewport.Width, 1)
	lines := make([]string, 0, len(m.logLines))
	for _, raw := range m.logLines {
		lines = append(lines, ansi.Truncate(m.formatLogLine(logtail.ParseLine(raw), styles), width, "…"))
	}
	return strings.Join(lines, "\n")
}

// formatLogLine renders one record as "15:04:05 LEVEL message key=value ...".
func (m Model) formatLogLine(line logtail.Line, styles Styles) string {
	if line.Raw {
		return styles.Text.Render(line.Message)
	}
	var parts []string
	if !line.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(line.Time.Local().Format("15:04:05")))
	}
	if line.Level != "" {
		parts = append(parts, styles.LevelStyle(line.Level).Render(padRight(line.Level, 5)))
	}
	parts = append(parts, styles.Text.Render(line.Message))
	if len(line.Fields) > 0 {
		parts = append(parts, styles.MutedText.Render(strings.Join(line.Fields, " ")))
	}
	return strings.Join(parts, " ")
}
