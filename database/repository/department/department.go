package departmentRepo

import (
	"errors"

	"medicore/models"
)

// ErrNotFound is returned when no department matches the given ID.
var ErrNotFound = errors.New("department not found")

// DepartmentRepository defines data access for department documents.
type DepartmentRepository interface {
	GetByID(id string) (*models.Department, error)
	GetAll() ([]models.Department, error)
	Create(dept *models.Department) error
	Update(dept *models.Department) error
	Delete(id string) error
	AddDoctor(id, doctorID string) error
	RemoveDoctor(id, doctorID string) error
	SetStats(id string, stats models.DepartmentStats) error
}
