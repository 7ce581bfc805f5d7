package openmensa

import "time"

const dateLayout = "2006-01-02"

// Day mirrors one entry of /canteens/{id}/days.
type Day struct {
	Date   string `json:"date"`
	Closed bool   `json:"closed"`
}

// ParsedDate returns the day's date in local time. The bool is false when the
// API sent something that is not YYYY-MM-DD.
func (d Day) ParsedDate() (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, d.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Meal mirrors one entry of /canteens/{id}/days/{date}/meals.
type Meal struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Prices   Prices   `json:"prices"`
	Notes    []string `json:"notes"`
}

// Prices holds the per-group prices in euros. Nil means the canteen did not
// publish a price for that group.
type Prices struct {
	Students  *float64 `json:"students"`
	Employees *float64 `json:"employees"`
	Pupils    *float64 `json:"pupils"`
	Others    *float64 `json:"others"`
}

// FormatDate renders t the way the API expects it in paths.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
