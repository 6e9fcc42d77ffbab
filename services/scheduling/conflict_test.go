package scheduling

import (
	"testing"

	"medicore/models"
)

func appt(id, doctorID string, hour, min, durationMin int, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:              id,
		DoctorID:        doctorID,
		StartTime:       at(hour, min),
		DurationMinutes: durationMin,
		Status:          status,
	}
}

func TestHasConflict(t *testing.T) {
	existing := []models.Appointment{
		appt("a1", "doc-1", 9, 0, 30, models.StatusScheduled),
		appt("a2", "doc-1", 10, 0, 30, models.StatusCancelled),
		appt("a3", "doc-2", 9, 0, 30, models.StatusScheduled),
	}

	t.Run("OverlappingSlot", func(t *testing.T) {
		// 09:15 overlaps the 09:00-09:30 booking.
		if !HasConflict("doc-1", "", at(9, 15), at(9, 45), existing) {
			t.Fatal("expected conflict with 09:00-09:30 booking")
		}
	})

	t.Run("AdjacentSlot", func(t *testing.T) {
		// 09:30 starts exactly when the first booking ends.
		if HasConflict("doc-1", "", at(9, 30), at(10, 0), existing) {
			t.Fatal("back-to-back slot must not conflict")
		}
	})

	t.Run("CancelledReleasesSlot", func(t *testing.T) {
		if HasConflict("doc-1", "", at(10, 0), at(10, 30), existing) {
			t.Fatal("cancelled booking must not hold its slot")
		}
	})

	t.Run("OtherDoctorIgnored", func(t *testing.T) {
		if HasConflict("doc-3", "", at(9, 0), at(9, 30), existing) {
			t.Fatal("other doctors' bookings must not conflict")
		}
	})

	t.Run("ExcludeSelf", func(t *testing.T) {
		if HasConflict("doc-1", "a1", at(9, 0), at(9, 30), existing) {
			t.Fatal("a booking must not conflict with itself")
		}
	})

	t.Run("NoShowReleasesSlot", func(t *testing.T) {
		released := []models.Appointment{appt("a4", "doc-1", 11, 0, 30, models.StatusNoShow)}
		if HasConflict("doc-1", "", at(11, 0), at(11, 30), released) {
			t.Fatal("no-show booking must not hold its slot")
		}
	})
}

func TestCountActive(t *testing.T) {
	existing := []models.Appointment{
		appt("a1", "doc-1", 9, 0, 30, models.StatusScheduled),
		appt("a2", "doc-1", 10, 0, 30, models.StatusConfirmed),
		appt("a3", "doc-1", 11, 0, 30, models.StatusCancelled),
		appt("a4", "doc-1", 12, 0, 30, models.StatusNoShow),
		appt("a5", "doc-2", 9, 0, 30, models.StatusScheduled),
	}
	if got := CountActive("doc-1", existing); got != 2 {
		t.Fatalf("CountActive = %d, want 2", got)
	}
}
