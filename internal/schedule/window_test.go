package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/dstanek/roomly/internal/model"
)

func apiTime(t time.Time) *model.Time {
	return &model.Time{Time: t}
}

func titles(chores []model.Chore) []string {
	out := make([]string, len(chores))
	for i, c := range chores {
		out[i] = c.Title
	}
	return out
}

func TestEffectiveDueDatePrefersDueAt(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := model.Chore{DueAt: apiTime(due), StartDate: "2026-04-01"}

	got, ok := EffectiveDueDate(c)
	if !ok || !got.Equal(due) {
		t.Errorf("effective due = %v, %v; want %v", got, ok, due)
	}
}

func TestEffectiveDueDateFromStartDate(t *testing.T) {
	c := model.Chore{StartDate: "2026-03-15"}

	got, ok := EffectiveDueDate(c)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !ok || !got.Equal(want) {
		t.Errorf("effective due = %v, %v; want %v", got, ok, want)
	}
}

func TestEffectiveDueDateAbsent(t *testing.T) {
	if _, ok := EffectiveDueDate(model.Chore{}); ok {
		t.Error("expected no date for a chore with neither dueAt nor startDate")
	}
	if _, ok := EffectiveDueDate(model.Chore{StartDate: "not-a-date"}); ok {
		t.Error("expected a malformed startDate to count as no date")
	}
}

func TestFilteredChoresWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	chores := []model.Chore{
		{Title: "Dishes", StartDate: "2099-01-01"},
		{Title: "Trash", DueAt: apiTime(now.AddDate(0, 0, 2))},
	}

	got := FilteredChores(chores, Next7Days, now)
	if want := []string{"Trash"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("next7Days = %v, want %v", titles(got), want)
	}

	got = FilteredChores(chores, All, now)
	if want := []string{"Trash", "Dishes"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("all = %v, want %v", titles(got), want)
	}
}

func TestFilteredChoresNoDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	chores := []model.Chore{
		{Title: "Someday"},
		{Title: "Soon", DueAt: apiTime(now.AddDate(0, 0, 1))},
	}

	got := FilteredChores(chores, All, now)
	if want := []string{"Soon", "Someday"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("all = %v, want dated first then undated", titles(got))
	}

	got = FilteredChores(chores, Next7Days, now)
	if want := []string{"Soon"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("next7Days = %v, want undated excluded", titles(got))
	}
}

func TestFilteredChoresExcludesPastDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	chores := []model.Chore{
		{Title: "Yesterday", DueAt: apiTime(now.AddDate(0, 0, -1))},
		{Title: "Tomorrow", DueAt: apiTime(now.AddDate(0, 0, 1))},
	}

	got := FilteredChores(chores, All, now)
	if want := []string{"Tomorrow"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("all = %v, want past-due excluded", titles(got))
	}
}

func TestFilteredChoresBoundaryInclusive(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	chores := []model.Chore{
		{Title: "AtNow", DueAt: apiTime(now)},
		{Title: "AtEnd", DueAt: apiTime(now.AddDate(0, 0, 7))},
		{Title: "PastEnd", DueAt: apiTime(now.AddDate(0, 0, 7).Add(time.Second))},
	}

	got := FilteredChores(chores, Next7Days, now)
	if want := []string{"AtNow", "AtEnd"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("next7Days = %v, want both boundaries included", titles(got))
	}
}

func TestFilteredChoresTitleTiebreak(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	due := apiTime(now.AddDate(0, 0, 1))
	chores := []model.Chore{
		{Title: "vacuum", DueAt: due},
		{Title: "Dishes", DueAt: due},
		{Title: "mop", DueAt: due},
	}

	got := FilteredChores(chores, Next7Days, now)
	if want := []string{"Dishes", "mop", "vacuum"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("tiebreak = %v, want case-insensitive title order", titles(got))
	}
}

func TestFilteredChoresIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	chores := []model.Chore{
		{Title: "B", DueAt: apiTime(now.AddDate(0, 0, 3))},
		{Title: "A", DueAt: apiTime(now.AddDate(0, 0, 1))},
		{Title: "C"},
	}

	once := FilteredChores(chores, All, now)
	twice := FilteredChores(once, All, now)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the sequence: %v vs %v", titles(once), titles(twice))
	}
}

func TestFilteredChoresDoesNotModifyInput(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	chores := []model.Chore{
		{Title: "B", DueAt: apiTime(now.AddDate(0, 0, 3))},
		{Title: "A", DueAt: apiTime(now.AddDate(0, 0, 1))},
	}

	FilteredChores(chores, All, now)
	if chores[0].Title != "B" {
		t.Error("input slice was reordered")
	}
}

func TestRotationEnabled(t *testing.T) {
	tests := []struct {
		rule string
		want bool
	}{
		{"never", false},
		{"NEVER", false},
		{" Never ", false},
		{"daily", true},
		{"weekly", true},
		{"  BIWEEKLY  ", true},
		{"every 3 months", true},
		{"yearly", true},
	}
	for _, tt := range tests {
		if got := RotationEnabled(tt.rule); got != tt.want {
			t.Errorf("RotationEnabled(%q) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}
