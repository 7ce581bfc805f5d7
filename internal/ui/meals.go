package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mensa/internal/meal"
	"github.com/five82/mensa/internal/state"
)

// iconGlyph returns the glyph drawn in front of a meal.
func iconGlyph(icon meal.Icon) string {
	switch icon {
	case meal.IconVegan:
		return "🌱"
	case meal.IconVegetarian:
		return "🥕"
	default:
		return "🍲"
	}
}

// mealsTitle names the meal list after the selected day and the filter.
func (m Model) mealsTitle() string {
	title := ViewMeals.String()
	if day, ok := m.menu.Day(m.daySel); ok {
		title += " · " + day.Date
	}
	if m.diet != meal.DietNone {
		title += " · " + m.diet.String()
	}
	return title
}

// renderMeals renders the filtered meal list: glyph, name, price.
func (m Model) renderMeals(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	meals := m.visibleMeals()
	if len(meals) == 0 {
		if len(m.snapshot.Meals) == 0 {
			return styles.MutedText.Render("No meals for this day")
		}
		return styles.MutedText.Render(fmt.Sprintf("No %s meals (d changes the filter)", m.diet))
	}

	priceWidth := 0
	for _, entry := range meals {
		priceWidth = max(priceWidth, lipgloss.Width(entry.Price))
	}
	nameWidth := max(width-priceWidth-4, 1) // glyph (2) + two spaces

	start, end := visibleRange(m.mealSel, len(meals), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.formatMealRow(meals[i], width, nameWidth, priceWidth, i == m.mealSel, styles))
	}
	return strings.Join(lines, "\n")
}

func (m Model) formatMealRow(entry state.MealEntry, width, nameWidth, priceWidth int, selected bool, styles Styles) string {
	glyph := "  "
	if entry.HasIcon {
		glyph = iconGlyph(entry.Icon)
	}
	name := padRight(truncate(entry.Name, nameWidth), nameWidth)
	price := fmt.Sprintf("%*s", priceWidth, entry.Price)

	if selected {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SelectionBg)).
			Foreground(lipgloss.Color(m.theme.SelectionText)).
			Width(width).
			Render(glyph + " " + name + " " + price)
	}

	bg := NewBgStyle(m.theme.FocusBg)
	return bg.FillLine(
		bg.Render(glyph, styles.DietStyle(entry.Icon))+bg.Space()+
			bg.Render(name, styles.Text)+bg.Space()+
			bg.Render(price, styles.AccentText), width)
}
