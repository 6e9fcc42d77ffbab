package scheduling

import "errors"

// Domain errors returned by the scheduling core. Callers classify them with
// errors.Is; the HTTP layer maps each kind to a status code. None are retried
// here.
var (
	// ErrOutsideWorkingHours: the requested interval falls outside the
	// doctor's open hours, or inside the break window, on that date.
	ErrOutsideWorkingHours = errors.New("requested time is outside the doctor's working hours")
	// ErrSlotConflict: the requested interval overlaps an existing
	// appointment of the same doctor that still occupies its slot.
	ErrSlotConflict = errors.New("requested time conflicts with an existing appointment")
	// ErrCapacityExceeded: the doctor's configured per-day appointment
	// ceiling has been reached.
	ErrCapacityExceeded = errors.New("doctor has reached the appointment limit for this day")
	// ErrNotFound: the referenced appointment or doctor does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the requester is neither the owning patient nor staff.
	ErrForbidden = errors.New("not authorized to modify this appointment")
	// ErrInvalidTransition: the requested status change is not defined by
	// the appointment state machine.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
	// ErrValidation: the input shape is malformed (bad times, bad rating
	// range, missing fields).
	ErrValidation = errors.New("invalid input")
	// ErrStorageUnavailable wraps persistence I/O failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrDoctorBusy: the per-doctor booking lock could not be acquired;
	// another booking for this doctor is in flight.
	ErrDoctorBusy = errors.New("another booking for this doctor is in progress, please retry")
)
