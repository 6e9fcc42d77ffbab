package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time-of-day values throughout this package are minutes from midnight,
// e.g. 540 for 09:00.

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as overlap, so a
// 09:00-09:30 slot and a 09:30-10:00 slot coexist.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// TimeOfDayInRange reports whether t lies within [start, end], inclusive on
// both ends, over minutes-from-midnight values.
func TimeOfDayInRange(t, start, end int) bool {
	return start <= t && t <= end
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return hours*60 + minutes, nil
}

// MinutesOfDay returns t's time of day as minutes from midnight in t's location.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Weekday returns t's lowercase weekday name, matching schedule entry keys.
func Weekday(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// DayBounds returns midnight of t's calendar date and midnight of the next
// day, in t's location.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
