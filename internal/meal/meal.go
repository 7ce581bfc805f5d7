package meal

import "strings"

// Diet is the dietary tag derived from a meal name.
type Diet int

const (
	DietNone Diet = iota
	DietVegan
	DietVegetarian
)

// String returns the lower-case name used in config and prefs files.
func (d Diet) String() string {
	switch d {
	case DietVegan:
		return "vegan"
	case DietVegetarian:
		return "vegetarian"
	default:
		return "none"
	}
}

// Icon returns the icon category rows of this diet are drawn with.
func (d Diet) Icon() Icon {
	switch d {
	case DietVegan:
		return IconVegan
	case DietVegetarian:
		return IconVegetarian
	default:
		return IconPot
	}
}

// Allows reports whether a meal tagged d passes the given filter.
// DietNone lets everything through, DietVegetarian also admits vegan meals.
func (d Diet) Allows(filter Diet) bool {
	switch filter {
	case DietVegan:
		return d == DietVegan
	case DietVegetarian:
		return d == DietVegan || d == DietVegetarian
	default:
		return true
	}
}

// Next cycles none → vegetarian → vegan → none.
func (d Diet) Next() Diet {
	switch d {
	case DietNone:
		return DietVegetarian
	case DietVegetarian:
		return DietVegan
	default:
		return DietNone
	}
}

// ParseDiet maps a stored diet name back to its Diet.
func ParseDiet(s string) (Diet, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "all":
		return DietNone, true
	case "vegan":
		return DietVegan, true
	case "vegetarian", "vegetarisch":
		return DietVegetarian, true
	default:
		return DietNone, false
	}
}

// Icon is the category of glyph shown next to a meal. Every meal has one.
type Icon int

const (
	IconPot Icon = iota
	IconVegan
	IconVegetarian
)

// String returns the icon's resource name.
func (i Icon) String() string {
	switch i {
	case IconVegan:
		return "vegan"
	case IconVegetarian:
		return "vegetarian"
	default:
		return "pot"
	}
}

const (
	markerVegan       = "vegan"
	markerVegetarian  = "vegetarian"
	markerVegetarisch = "vegetarisch"
)

// Classify tags a raw meal name and strips a leading diet marker.
//
// A name starting with a marker word followed by ':' or ' ' loses the marker
// and the separators after it. A marker anywhere else only tags the meal.
// Vegan wins over vegetarian at each of the two steps, and the prefix step
// always wins over the substring step.
func Classify(raw string) (string, Diet) {
	if rest, ok := stripMarker(raw, markerVegan); ok {
		return rest, DietVegan
	}
	for _, marker := range []string{markerVegetarian, markerVegetarisch} {
		if rest, ok := stripMarker(raw, marker); ok {
			return rest, DietVegetarian
		}
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, markerVegan):
		return raw, DietVegan
	case strings.Contains(lower, markerVegetarian), strings.Contains(lower, markerVegetarisch):
		return raw, DietVegetarian
	}
	return raw, DietNone
}

// stripMarker removes marker and the ':'/' ' run after it when name starts
// with marker (any case) followed by one of those separators.
func stripMarker(name, marker string) (string, bool) {
	n := len(marker)
	if len(name) <= n || !strings.EqualFold(name[:n], marker) {
		return name, false
	}
	if name[n] != ':' && name[n] != ' ' {
		return name, false
	}
	return strings.TrimLeft(name[n:], ": "), true
}
