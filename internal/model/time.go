package model

import (
	"fmt"
	"strings"
	"time"
)

// Time is a time.Time that decodes the ISO-8601 variants the backend emits:
// with or without fractional seconds, and with a missing zone treated as UTC.
// It always encodes as RFC 3339.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		// Zone-less layouts parse as UTC, which matches the backend's contract.
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("parse time %q: unrecognized format", s)
}

// ParseDate parses a yyyy-MM-dd string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate formats a time as a yyyy-MM-dd UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
