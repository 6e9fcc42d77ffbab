package models

import (
	"testing"
	"time"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to AppointmentStatus
	}{
		{StatusScheduled, StatusConfirmed},
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCancelled},
		{StatusScheduled, StatusNoShow},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusInProgress, StatusCompleted},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransitionTo(tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	denied := []struct {
		from, to AppointmentStatus
	}{
		{StatusScheduled, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusInProgress, StatusNoShow},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusScheduled},
		{StatusNoShow, StatusConfirmed},
	}
	for _, tr := range denied {
		if tr.from.CanTransitionTo(tr.to) {
			t.Errorf("%s -> %s should be rejected", tr.from, tr.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusInProgress} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestCountsForConflict(t *testing.T) {
	holding := []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted}
	for _, s := range holding {
		if !s.CountsForConflict() {
			t.Errorf("%s should hold its slot", s)
		}
	}
	for _, s := range []AppointmentStatus{StatusCancelled, StatusNoShow} {
		if s.CountsForConflict() {
			t.Errorf("%s should release its slot", s)
		}
	}
}

func TestAppointmentEndTime(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	appt := Appointment{StartTime: start, DurationMinutes: 45}
	if got := appt.EndTime(); !got.Equal(start.Add(45 * time.Minute)) {
		t.Fatalf("EndTime = %v", got)
	}

	// Missing duration falls back to the default slot length.
	appt = Appointment{StartTime: start}
	if got := appt.EndTime(); !got.Equal(start.Add(DefaultAppointmentDuration)) {
		t.Fatalf("EndTime with default duration = %v", got)
	}
}
