// Package ui provides the terminal user interface for mensa.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program styled with lipgloss. Model owns a
// navigation stack of views and renders the menu state it reads from
// state.Menu. Update events never touch the model directly: they arrive as
// UpdateMsg, are applied by dispatch.Dispatcher inside Update, and the
// dispatcher's renderer signals (recorded by a small signals struct) decide
// which view to show next. Because Bubble Tea handles one message at a time,
// events are applied strictly in arrival order.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View, request commands
//   - navigation.go: View type and the push/pop stack
//   - signals.go: renderer implementation recording dispatcher signals
//   - days.go, meals.go, detail.go, errorview.go, logs.go: view bodies
//   - header.go: status bar and command hints
//   - box.go: bordered box with the title embedded in the top border
//   - help.go: help overlay generated from the key map
//   - keys.go: key bindings (bubbles/key)
//   - theme.go, style_helpers.go: themes, styles, background-safe rendering
//
// # Views
//
//   - Days: the day list (weekday, DD.MM.YYYY, closed days dimmed)
//   - Meals: meals of the selected day with a diet glyph (🌱 vegan,
//     🥕 vegetarian, 🍲 other) and the student price
//   - Meal: name, price and notes of one meal, scrollable
//   - Error: the last upstream error; any key returns to Days
//   - Logs: the tail of the application log, re-read every 2 seconds
//
// # Navigation
//
// Enter on a day requests its meals; the meal list is pushed once when it
// arrives. Enter on a meal requests its detail, pushed when it arrives. Esc or
// backspace pops: leaving Meals clears the meal list, leaving Meal clears the
// detail. An error pushes the error view regardless of what is on screen.
//
// # Keys
//
//	enter       open day / meal
//	esc, bksp   back
//	j/k, g/G    move, top, bottom
//	r           refresh days (reload in the log view)
//	d           cycle diet filter (none → vegetarian → vegan), persisted
//	T           cycle theme, persisted
//	l           toggle log view
//	h, ?        help
//	e, ctrl+c   quit
//
// # Themes
//
// Nightfox (default), Kanagawa and Slate. The chosen theme and diet filter
// are written to prefs.toml on every change.
package ui
