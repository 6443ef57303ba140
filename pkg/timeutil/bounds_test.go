package timeutil

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	start, ok := DayStart("2025-08-03")
	if !ok {
		t.Fatalf("expected start to parse")
	}
	if got := start.Format(time.RFC3339); got != "2025-08-03T00:00:00Z" {
		t.Fatalf("unexpected start %s", got)
	}

	end, ok := DayEnd("2025-08-03")
	if !ok {
		t.Fatalf("expected end to parse")
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("unexpected end %s", end)
	}
	if end.Nanosecond() != int(999*time.Millisecond) {
		t.Fatalf("end should land on .999, got %d", end.Nanosecond())
	}

	if _, ok := DayStart("not-a-date"); ok {
		t.Fatalf("bad input should not parse")
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"2025-08-15", "2025-08-01", "2025-08-31"},
		{"2024-02-10", "2024-02-01", "2024-02-29"},
		{"2025-02-28", "2025-02-01", "2025-02-28"},
		{"2025-12-31", "2025-12-01", "2025-12-31"},
	}
	for _, tc := range cases {
		in, err := ParseDay(tc.in)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.in, err)
		}
		first, last := MonthRange(in)
		if got := first.Format(DayLayout); got != tc.first {
			t.Fatalf("%s: first = %s, want %s", tc.in, got, tc.first)
		}
		if got := last.Format(DayLayout); got != tc.last {
			t.Fatalf("%s: last = %s, want %s", tc.in, got, tc.last)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 8, 3, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, 8, 3, 23, 30, 0, 0, time.UTC)
	c := time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(a, c) {
		t.Fatalf("expected different days")
	}
}
