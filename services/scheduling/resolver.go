package scheduling

import (
	"fmt"
	"time"

	"medicore/models"
)

// ResolveDay maps a target date onto the doctor's weekly schedule and returns
// the day's availability. A date whose weekday has no configured entry is
// reported closed, the same as an entry with IsAvailable false: an
// unconfigured day must never be bookable.
//
// The resolver only reads the schedule; it does not consult existing bookings.
func ResolveDay(doctor *models.Doctor, date time.Time) (models.DayAvailability, error) {
	entry := doctor.ScheduleFor(Weekday(date))
	if entry == nil || !entry.IsAvailable {
		return models.DayAvailability{Open: false}, nil
	}

	start, err := ParseClock(entry.StartTime)
	if err != nil {
		return models.DayAvailability{}, fmt.Errorf("doctor %s schedule for %s: %w", doctor.ID, entry.Day, err)
	}
	end, err := ParseClock(entry.EndTime)
	if err != nil {
		return models.DayAvailability{}, fmt.Errorf("doctor %s schedule for %s: %w", doctor.ID, entry.Day, err)
	}
	if end <= start {
		return models.DayAvailability{}, fmt.Errorf("doctor %s schedule for %s: end %q not after start %q", doctor.ID, entry.Day, entry.EndTime, entry.StartTime)
	}

	avail := models.DayAvailability{
		Open:            true,
		Start:           start,
		End:             end,
		MaxAppointments: entry.MaxAppointments,
	}

	if entry.Break != nil {
		breakStart, err := ParseClock(entry.Break.Start)
		if err != nil {
			return models.DayAvailability{}, fmt.Errorf("doctor %s break for %s: %w", doctor.ID, entry.Day, err)
		}
		breakEnd, err := ParseClock(entry.Break.End)
		if err != nil {
			return models.DayAvailability{}, fmt.Errorf("doctor %s break for %s: %w", doctor.ID, entry.Day, err)
		}
		avail.Break = &models.Interval{Start: breakStart, End: breakEnd}
	}

	return avail, nil
}

// FitsOpenInterval reports whether the candidate window [startMin, endMin)
// lies inside the day's open hours without touching the break window.
func FitsOpenInterval(avail models.DayAvailability, startMin, endMin int) bool {
	if !avail.Open {
		return false
	}
	if !TimeOfDayInRange(startMin, avail.Start, avail.End) || !TimeOfDayInRange(endMin, avail.Start, avail.End) {
		return false
	}
	if avail.Break != nil {
		// A candidate touching the break boundary is fine; any overlap is not.
		if startMin < avail.Break.End && avail.Break.Start < endMin {
			return false
		}
	}
	return true
}
