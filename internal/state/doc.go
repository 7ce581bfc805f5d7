// Package state holds the menu data shown by mensa.
//
// # Overview
//
// A single Menu owns everything the renderer draws: the day list, the meal
// list for the selected day, and the detail of the meal opened last. The
// dispatcher is the only writer; the UI reads snapshots between updates.
//
//	Writer (dispatcher):               Reader (UI):
//	┌──────────────────────┐          ┌──────────────────┐
//	│ ReplaceDays()        │          │                  │
//	│ ReplaceMeals()       │─────────→│ menu.Snapshot()  │
//	│ SetDetail()          │ (mutex)  │      ↓           │
//	│ ClearMeals()         │          │ render rows      │
//	└──────────────────────┘          └──────────────────┘
//
// # Replace Semantics
//
// Every list update builds the complete new list first and swaps it in under
// the write lock. A reader therefore sees either the old list or the new one,
// never a mix. Once swapped out, the old entries (and their icon tags) are no
// longer reachable from the Menu; snapshots handed out earlier are private
// copies and stay valid.
//
// The day list and the meal list are replaced independently. The detail is
// separate again: storing a detail never touches either list.
//
// # Bounds
//
//   - Day list: MaxDays entries, weekdays truncated to the date count
//   - Meal list: MaxMeals entries, count = shortest of ids, names, prices
//   - Detail: name MaxDetailName, price MaxDetailPrice, notes MaxDetailNotes bytes
//
// Anything beyond a bound is dropped silently. No method returns an error.
//
// # Lifecycle
//
// The zero Menu is ready to use and empty. Reset clears it on shutdown.
package state
