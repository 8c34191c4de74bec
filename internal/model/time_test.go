package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeDecodeVariants(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
	}{
		{"plain", `"2026-03-01T12:30:45Z"`},
		{"fractional", `"2026-03-01T12:30:45.000Z"`},
		{"microseconds", `"2026-03-01T12:30:45.000000Z"`},
		{"no zone", `"2026-03-01T12:30:45"`},
		{"no zone fractional", `"2026-03-01T12:30:45.123"`},
	}
	for _, tt := range tests {
		var got Time
		if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !got.Truncate(time.Second).Equal(want) {
			t.Errorf("%s: got %v, want %v", tt.name, got.Time, want)
		}
	}
}

func TestTimeDecodeOffset(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte(`"2026-03-01T14:30:45+02:00"`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want the same instant as %v", got.Time, want)
	}
}

func TestTimeDecodeNull(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte(`null`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("got %v, want zero for null", got.Time)
	}
}

func TestTimeDecodeGarbage(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte(`"next tuesday"`), &got); err == nil {
		t.Error("expected error for an unparseable time")
	}
}

func TestTimeEncodeRFC3339(t *testing.T) {
	in := Time{Time: time.Date(2026, 3, 1, 12, 30, 45, 123000000, time.UTC)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-03-01T12:30:45Z"` {
		t.Errorf("encoded = %s, want plain RFC 3339", data)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2099-01-01 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("got %v, want %v", d, want)
	}

	if _, err := ParseDate("01/01/2099"); err == nil {
		t.Error("expected error for a non-ISO date")
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
	if got != "2026-03-01" {
		t.Errorf("got %q", got)
	}
}
