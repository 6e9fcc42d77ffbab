package doctor

import (
	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
)

// DoctorService manages doctor profiles, weekly schedules and reviews.
type DoctorService interface {
	GetByID(doctorID string) (*models.Doctor, error)
	// GetAll lists doctors, optionally filtered to one department.
	GetAll(departmentID string) ([]models.Doctor, error)
	Register(doc *models.Doctor) (*models.Doctor, error)
	Update(doc *models.Doctor) (*models.Doctor, error)
	Delete(doctorID string) error
	SetSchedule(doctorID string, schedule []models.ScheduleEntry) (*models.Doctor, error)
	// AddReview appends a review and recomputes the stored average in the
	// same call; the average is never left stale.
	AddReview(doctorID, patientID string, ratingValue int, comment string) (*models.Doctor, error)
	RemoveReview(doctorID, reviewID, requesterID string, requesterRole models.Role) (*models.Doctor, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}
