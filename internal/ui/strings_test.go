package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Curry", 10, "Curry"},
		{"  Curry  ", 10, "Curry"},
		{"Käsespätzle mit Salat", 10, "Käsespä..."},
		{"Suppe", 3, "Sup"},
		{"Suppe", 0, "Suppe"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Mo", 4); got != "Mo  " {
		t.Fatalf("padRight = %q, want %q", got, "Mo  ")
	}
	if got := padRight("Montag", 4); got != "Montag" {
		t.Fatalf("padRight = %q, want unchanged", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		selected, count, height int
		start, end              int
	}{
		{0, 5, 10, 0, 5},
		{0, 20, 5, 0, 5},
		{7, 20, 5, 3, 8},
		{19, 20, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.selected, tt.count, tt.height)
		if start != tt.start || end != tt.end {
			t.Fatalf("visibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.selected, tt.count, tt.height, start, end, tt.start, tt.end)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 3); got != 2 {
		t.Fatalf("clamp(5, 3) = %d, want 2", got)
	}
	if got := clamp(-1, 3); got != 0 {
		t.Fatalf("clamp(-1, 3) = %d, want 0", got)
	}
	if got := clamp(1, 0); got != 0 {
		t.Fatalf("clamp(1, 0) = %d, want 0", got)
	}
}
