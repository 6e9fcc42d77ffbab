package doctorRepo

import (
	"errors"

	"medicore/models"
)

// ErrNotFound is returned when no doctor matches the given ID.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines data access for doctor documents.
type DoctorRepository interface {
	GetByID(id string) (*models.Doctor, error)
	GetAll() ([]models.Doctor, error)
	GetByDepartment(departmentID string) ([]models.Doctor, error)
	Create(doc *models.Doctor) error
	Update(doc *models.Doctor) error
	Delete(id string) error
	// SetReviews replaces the review set and the derived average rating in a
	// single update, so the stored average can never be stale relative to the
	// stored reviews.
	SetReviews(id string, reviews []models.Review, averageRating float64) error
	SetSchedule(id string, schedule []models.ScheduleEntry) error
}
