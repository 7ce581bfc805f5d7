package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given display width, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if lipgloss.Width(value) <= limit {
		return value
	}
	runes := []rune(value)
	if limit <= 3 {
		return cutWidth(runes, limit)
	}
	return cutWidth(runes, limit-3) + "..."
}

// cutWidth returns the longest rune prefix that fits in width cells.
func cutWidth(runes []rune, width int) string {
	out := 0
	for i := range runes {
		if lipgloss.Width(string(runes[:i+1])) > width {
			break
		}
		out = i + 1
	}
	return string(runes[:out])
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// visibleRange returns the slice of rows [start, end) to draw so that the
// selected row stays on screen.
func visibleRange(selected, count, height int) (int, int) {
	if height <= 0 || count <= height {
		return 0, count
	}
	start := selected - height + 1
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > count {
		end = count
		start = end - height
	}
	return start, end
}

// clamp keeps i within [0, n).
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
