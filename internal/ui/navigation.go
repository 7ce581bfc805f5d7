package ui

// View identifies one screen of the navigation stack.
type View int

const (
	ViewDays View = iota
	ViewMeals
	ViewDetail
	ViewError
	ViewLogs
)

// String returns the title shown in the content box.
func (v View) String() string {
	switch v {
	case ViewMeals:
		return "Meals"
	case ViewDetail:
		return "Meal"
	case ViewError:
		return "Error"
	case ViewLogs:
		return "Logs"
	default:
		return "Days"
	}
}

// top returns the visible view.
func (m Model) top() View {
	if len(m.stack) == 0 {
		return ViewDays
	}
	return m.stack[len(m.stack)-1]
}

// push shows v unless it is already on top.
func (m *Model) push(v View) {
	if m.top() == v {
		return
	}
	m.stack = append(m.stack, v)
}

// pop leaves the visible view. Leaving the meal list or the detail drops its
// data from the menu; the days view is never popped.
func (m *Model) pop() {
	if len(m.stack) <= 1 {
		return
	}
	switch m.top() {
	case ViewMeals:
		m.menu.ClearMeals()
	case ViewDetail:
		m.menu.ClearDetail()
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.snapshot = m.menu.Snapshot()
}

// home returns to the days view, dropping everything above it.
func (m *Model) home() {
	for len(m.stack) > 1 {
		m.pop()
	}
	m.errText = ""
}
