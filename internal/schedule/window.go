package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/dstanek/roomly/internal/model"
)

// Window is the horizon for the upcoming-chores view.
type Window int

const (
	Next7Days Window = iota
	NextMonth
	Next6Months
	All
)

func (w Window) String() string {
	switch w {
	case Next7Days:
		return "next 7 days"
	case NextMonth:
		return "next month"
	case Next6Months:
		return "next 6 months"
	default:
		return "all"
	}
}

// end returns the window's end relative to now. The second result is false
// for All, which has no end.
func (w Window) end(now time.Time) (time.Time, bool) {
	switch w {
	case Next7Days:
		return now.AddDate(0, 0, 7), true
	case NextMonth:
		return now.AddDate(0, 1, 0), true
	case Next6Months:
		return now.AddDate(0, 6, 0), true
	default:
		return time.Time{}, false
	}
}

// EffectiveDueDate returns the date used for scheduling comparisons: DueAt
// when present, else StartDate parsed as a UTC yyyy-MM-dd calendar date. The
// second result is false when the chore has no date. Pure; never errors. A
// malformed StartDate counts as no date.
func EffectiveDueDate(c model.Chore) (time.Time, bool) {
	if c.DueAt != nil && !c.DueAt.IsZero() {
		return c.DueAt.Time, true
	}
	if c.StartDate != "" {
		d, err := model.ParseDate(c.StartDate)
		if err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// RotationEnabled reports whether a repeat rule puts a chore in rotation
// mode: anything but "never", trimmed and case-insensitive. This single
// predicate decides which assignment fields are sent to the backend.
func RotationEnabled(repeatRule string) bool {
	return strings.ToLower(strings.TrimSpace(repeatRule)) != "never"
}

// FilteredChores returns the chores due within the window, sorted ascending
// by effective due date. Chores without a date are included only for All and
// sort last; ties break on case-insensitive title order. The input slice is
// not modified.
func FilteredChores(chores []model.Chore, w Window, now time.Time) []model.Chore {
	end, bounded := w.end(now)

	var out []model.Chore
	for _, c := range chores {
		due, ok := EffectiveDueDate(c)
		if !ok {
			if !bounded {
				out = append(out, c)
			}
			continue
		}
		if due.Before(now) {
			continue
		}
		if bounded && due.After(end) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, iok := EffectiveDueDate(out[i])
		dj, jok := EffectiveDueDate(out[j])
		switch {
		case iok && !jok:
			return true
		case !iok && jok:
			return false
		case iok && jok && !di.Equal(dj):
			return di.Before(dj)
		}
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}
