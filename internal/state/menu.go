package state

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/five82/mensa/internal/meal"
)

// Capacity bounds for the lists and the detail fields.
const (
	MaxDays  = 10
	MaxMeals = 20

	MaxDetailName  = 127
	MaxDetailPrice = 63
	MaxDetailNotes = 255
)

// DayEntry is one row of the day list.
type DayEntry struct {
	Date    string
	Weekday string
}

// MealEntry is one row of the meal list.
type MealEntry struct {
	ID      int
	Name    string
	Price   string
	Diet    meal.Diet
	Icon    meal.Icon
	HasIcon bool
}

// MealDetail describes the meal currently opened in the detail view.
type MealDetail struct {
	Name  string
	Price string
	Notes string
}

// Snapshot represents the menu data available to the renderer.
type Snapshot struct {
	Days         []DayEntry
	Meals        []MealEntry
	Detail       MealDetail
	HasDetail    bool
	LastError    string
	DaysUpdated  time.Time
	MealsUpdated time.Time
}

// Menu owns the live day list, meal list and meal detail.
type Menu struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// ReplaceDays installs a new day list built from parallel date and weekday
// sequences. Weekdays beyond the date count are dropped; dates without a
// weekday get an empty one.
func (m *Menu) ReplaceDays(dates, weekdays []string) {
	n := min(len(dates), MaxDays)
	days := make([]DayEntry, n)
	for i := 0; i < n; i++ {
		days[i].Date = dates[i]
		if i < len(weekdays) {
			days[i].Weekday = weekdays[i]
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Days = days
	m.snapshot.DaysUpdated = time.Now()
}

// ReplaceMeals installs a new meal list. The entry count is the shortest of
// the three sequences; each name is classified for its diet tag and icon.
func (m *Menu) ReplaceMeals(ids []int, names, prices []string) {
	n := min(len(ids), len(names), len(prices), MaxMeals)
	meals := make([]MealEntry, n)
	for i := 0; i < n; i++ {
		name, diet := meal.Classify(names[i])
		meals[i] = MealEntry{
			ID:      ids[i],
			Name:    name,
			Price:   prices[i],
			Diet:    diet,
			Icon:    diet.Icon(),
			HasIcon: true,
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Meals = meals
	m.snapshot.MealsUpdated = time.Now()
}

// SetDetail stores the detail for one meal, truncating each field to its bound.
func (m *Menu) SetDetail(name, price, notes string) {
	detail := MealDetail{
		Name:  truncateBytes(name, MaxDetailName),
		Price: truncateBytes(price, MaxDetailPrice),
		Notes: truncateBytes(notes, MaxDetailNotes),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Detail = detail
	m.snapshot.HasDetail = true
}

// ClearMeals empties the meal list.
func (m *Menu) ClearMeals() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Meals = nil
	m.snapshot.MealsUpdated = time.Now()
}

// ClearDetail drops the stored detail.
func (m *Menu) ClearDetail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Detail = MealDetail{}
	m.snapshot.HasDetail = false
}

// SetError records the most recent upstream error text.
func (m *Menu) SetError(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.LastError = text
}

// Reset clears all state.
func (m *Menu) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = Snapshot{}
}

// Day returns the day at index i.
func (m *Menu) Day(i int) (DayEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.snapshot.Days) {
		return DayEntry{}, false
	}
	return m.snapshot.Days[i], true
}

// Meal returns the meal at index i.
func (m *Menu) Meal(i int) (MealEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.snapshot.Meals) {
		return MealEntry{}, false
	}
	return m.snapshot.Meals[i], true
}

// Snapshot returns a copy of the current state.
func (m *Menu) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := m.snapshot
	snap.Days = cloneSlice(m.snapshot.Days)
	snap.Meals = cloneSlice(m.snapshot.Meals)
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}

// truncateBytes cuts s to at most limit bytes without splitting a rune.
func truncateBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
