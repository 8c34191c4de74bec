package schedule

import (
	"testing"
	"time"
)

func TestNextOccurrence(t *testing.T) {
	// A Wednesday.
	from := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		rule string
		want time.Time
	}{
		{"hourly", from.Add(time.Hour)},
		{"daily", from.AddDate(0, 0, 1)},
		{"weekdays", from.AddDate(0, 0, 1)},                       // Thu
		{"weekends", time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)}, // Sat
		{"weekly", from.AddDate(0, 0, 7)},
		{"biweekly", from.AddDate(0, 0, 14)},
		{"monthly", from.AddDate(0, 1, 0)},
		{"every 3 months", from.AddDate(0, 3, 0)},
		{"every 6 months", from.AddDate(0, 6, 0)},
		{"yearly", from.AddDate(1, 0, 0)},
		{"  Weekly  ", from.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		got, ok := NextOccurrence(tt.rule, from)
		if !ok {
			t.Errorf("NextOccurrence(%q) reported no occurrence", tt.rule)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("NextOccurrence(%q) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}

func TestNextOccurrenceNever(t *testing.T) {
	from := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	if _, ok := NextOccurrence("never", from); ok {
		t.Error("never should have no next occurrence")
	}
	if _, ok := NextOccurrence("fortnightly", from); ok {
		t.Error("unknown rules should have no next occurrence")
	}
}

func TestNextOccurrenceWeekdaysSkipsWeekend(t *testing.T) {
	friday := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)

	got, ok := NextOccurrence("weekdays", friday)
	if !ok {
		t.Fatal("expected an occurrence")
	}
	want := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC) // Monday
	if !got.Equal(want) {
		t.Errorf("next weekday after Friday = %v, want %v", got, want)
	}
}
