package scheduling

import (
	"time"

	"medicore/models"
)

// HasConflict reports whether the candidate window [candidateStart,
// candidateEnd) for the given doctor overlaps any existing appointment that
// still occupies its slot. Appointments of other doctors, the candidate
// itself (matched by excludeID, for re-checks on update) and cancelled or
// no-show records are ignored.
func HasConflict(doctorID, excludeID string, candidateStart, candidateEnd time.Time, existing []models.Appointment) bool {
	for i := range existing {
		appt := &existing[i]
		if appt.DoctorID != doctorID {
			continue
		}
		if excludeID != "" && appt.ID == excludeID {
			continue
		}
		if !appt.Status.CountsForConflict() {
			continue
		}
		if Overlaps(candidateStart, candidateEnd, appt.StartTime, appt.EndTime()) {
			return true
		}
	}
	return false
}

// CountActive returns how many of the given appointments still occupy the
// doctor's time; used against the day's configured appointment ceiling.
func CountActive(doctorID string, existing []models.Appointment) int {
	count := 0
	for i := range existing {
		if existing[i].DoctorID == doctorID && existing[i].Status.CountsForConflict() {
			count++
		}
	}
	return count
}
