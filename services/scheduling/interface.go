package scheduling

import (
	"context"
	"time"

	"medicore/models"
)

// AppointmentService owns the appointment state machine and orchestrates
// booking: schedule resolution, conflict checking, capacity enforcement and
// completion side effects.
type AppointmentService interface {
	// Create books a new appointment in "scheduled" state after validating
	// the slot against the doctor's working hours, existing bookings and
	// day capacity.
	Create(ctx context.Context, input models.BookingInput) (*models.Appointment, error)
	// Cancel soft-deletes: the record is retained in "cancelled" state so
	// historical conflict and billing queries stay correct.
	Cancel(ctx context.Context, appointmentID, requesterID string, requesterRole models.Role) (*models.Appointment, error)
	Confirm(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Complete(ctx context.Context, appointmentID string) (*models.Appointment, error)
	MarkNoShow(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// GetByID loads an appointment, applying the lazy elapsed-time
	// transition before returning it.
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error)
	// Availability resolves a doctor's open interval for a date.
	Availability(ctx context.Context, doctorID string, date time.Time) (models.DayAvailability, error)
	// SubmitFeedback records the patient's rating of a completed visit.
	SubmitFeedback(ctx context.Context, appointmentID, requesterID string, rating int, comment string) (*models.Appointment, error)
}

// ReminderScheduler enqueues the 24-hours-before reminder for an appointment.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error
}

// BillingProcessor is handed the insurance-adjusted amount due when an
// appointment completes.
type BillingProcessor interface {
	ChargeCompleted(ctx context.Context, appt *models.Appointment, amountDue float64) (transactionID string, err error)
}

// Notifier delivers booking mail to the patient.
type Notifier interface {
	SendAppointmentConfirmation(ctx context.Context, patient *models.User, appt *models.Appointment, doctorName string) error
}
