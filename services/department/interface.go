package department

import (
	appointmentRepo "medicore/database/repository/appointment"
	departmentRepo "medicore/database/repository/department"
	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"

	"go.uber.org/zap"
)

// DepartmentService manages hospital departments and their derived statistics.
type DepartmentService interface {
	GetByID(id string) (*models.Department, error)
	GetAll() ([]models.Department, error)
	Create(dept *models.Department) (*models.Department, error)
	Update(id string, updated *models.Department) (*models.Department, error)
	Delete(id string) error
	AssignDoctor(departmentID, doctorID string) (*models.Department, error)
	UnassignDoctor(departmentID, doctorID string) (*models.Department, error)
	// RefreshStats recomputes TotalPatients and SatisfactionRate from the
	// completed appointments of the department's doctors and persists them.
	RefreshStats(departmentID string) (*models.DepartmentStats, error)
}

type DefaultDepartmentService struct {
	Repo         departmentRepo.DepartmentRepository
	DoctorRepo   doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}
