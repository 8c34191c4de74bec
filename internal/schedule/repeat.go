package schedule

import (
	"strings"
	"time"
)

// NextOccurrence steps a due time forward by one period of the repeat rule.
// For "weekdays" and "weekends" it advances day by day to the next qualifying
// day. The second result is false for "never" or an unknown rule.
func NextOccurrence(repeatRule string, from time.Time) (time.Time, bool) {
	switch strings.ToLower(strings.TrimSpace(repeatRule)) {
	case "hourly":
		return from.Add(time.Hour), true
	case "daily":
		return from.AddDate(0, 0, 1), true
	case "weekdays":
		return nextMatchingDay(from, isWeekday), true
	case "weekends":
		return nextMatchingDay(from, isWeekend), true
	case "weekly":
		return from.AddDate(0, 0, 7), true
	case "biweekly":
		return from.AddDate(0, 0, 14), true
	case "monthly":
		return from.AddDate(0, 1, 0), true
	case "every 3 months":
		return from.AddDate(0, 3, 0), true
	case "every 6 months":
		return from.AddDate(0, 6, 0), true
	case "yearly":
		return from.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func nextMatchingDay(from time.Time, match func(time.Weekday) bool) time.Time {
	t := from.AddDate(0, 0, 1)
	for !match(t.Weekday()) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func isWeekday(d time.Weekday) bool {
	return d != time.Saturday && d != time.Sunday
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
