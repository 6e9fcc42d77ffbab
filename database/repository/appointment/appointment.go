package appointmentRepo

import (
	"errors"
	"time"

	"medicore/models"
)

var (
	// ErrNotFound is returned when no appointment matches the given ID.
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateSlot is returned when an insert violates the unique
	// (doctorId, startTime) index over non-terminal appointments.
	ErrDuplicateSlot = errors.New("doctor already has an active appointment at this start time")
)

// AppointmentRepository defines data access for appointment documents.
// Insert must enforce uniqueness of (doctorId, startTime) across appointments
// whose status still occupies the doctor's time, so that two concurrent
// bookings cannot both land on the same slot even if they both passed the
// in-memory conflict check.
type AppointmentRepository interface {
	GetByID(id string) (*models.Appointment, error)
	Insert(appt *models.Appointment) error
	Save(appt *models.Appointment) error
	// FindByDoctorAndDateRange returns the doctor's appointments with
	// StartTime in [start, end), ordered by StartTime ascending.
	FindByDoctorAndDateRange(doctorID string, start, end time.Time) ([]models.Appointment, error)
	FindByPatient(patientID string) ([]models.Appointment, error)
	// FindCompletedByDoctors returns completed appointments for any of the
	// given doctors; used for department statistics.
	FindCompletedByDoctors(doctorIDs []string) ([]models.Appointment, error)
	// DistinctPatientsByDoctors returns the distinct patient IDs with a
	// completed appointment under any of the given doctors.
	DistinctPatientsByDoctors(doctorIDs []string) ([]string, error)
}
