package scheduling

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.September, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"partial", at(9, 0), at(9, 30), at(9, 15), at(9, 45), true},
		{"contained", at(9, 0), at(10, 0), at(9, 15), at(9, 30), true},
		{"touching end to start", at(9, 0), at(9, 30), at(9, 30), at(10, 0), false},
		{"touching start to end", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"disjoint", at(9, 0), at(9, 30), at(11, 0), at(11, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"12:30": 750,
		"23:59": 1439,
	}
	for clock, want := range valid {
		got, err := ParseClock(clock)
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", clock, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", clock, got, want)
		}
	}

	for _, clock := range []string{"", "9", "24:00", "12:60", "ab:cd", "-1:00"} {
		if _, err := ParseClock(clock); err == nil {
			t.Fatalf("ParseClock(%q) expected error", clock)
		}
	}
}

func TestWeekday(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	if got := Weekday(at(9, 0)); got != "tuesday" {
		t.Fatalf("Weekday = %q, want tuesday", got)
	}
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(at(14, 37))
	if !start.Equal(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
	if MinutesOfDay(at(14, 37)) != 14*60+37 {
		t.Fatal("MinutesOfDay mismatch")
	}
}
