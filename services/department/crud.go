package department

import (
	"errors"
	"fmt"
	"strings"
	"time"

	departmentRepo "medicore/database/repository/department"
	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
	"medicore/services/scheduling"

	"github.com/google/uuid"
)

func (s *DefaultDepartmentService) GetByID(id string) (*models.Department, error) {
	dept, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, departmentRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: department %s", scheduling.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return dept, nil
}

func (s *DefaultDepartmentService) GetAll() ([]models.Department, error) {
	depts, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return depts, nil
}

func (s *DefaultDepartmentService) Create(dept *models.Department) (*models.Department, error) {
	if strings.TrimSpace(dept.Name) == "" {
		return nil, fmt.Errorf("%w: department name is required", scheduling.ErrValidation)
	}
	dept.ID = uuid.New().String()
	dept.Stats = models.DepartmentStats{}
	dept.IsActive = true
	now := time.Now()
	dept.CreatedAt = now
	dept.UpdatedAt = now
	if err := s.Repo.Create(dept); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return dept, nil
}

func (s *DefaultDepartmentService) Update(id string, updated *models.Department) (*models.Department, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Derived and membership fields are managed by their own operations.
	updated.ID = current.ID
	updated.DoctorIDs = current.DoctorIDs
	updated.Stats = current.Stats
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.Repo.Update(updated); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return updated, nil
}

func (s *DefaultDepartmentService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, departmentRepo.ErrNotFound) {
			return fmt.Errorf("%w: department %s", scheduling.ErrNotFound, id)
		}
		return fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *DefaultDepartmentService) AssignDoctor(departmentID, doctorID string) (*models.Department, error) {
	if _, err := s.DoctorRepo.GetByID(doctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, doctorID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	if err := s.Repo.AddDoctor(departmentID, doctorID); err != nil {
		if errors.Is(err, departmentRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: department %s", scheduling.ErrNotFound, departmentID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return s.GetByID(departmentID)
}

func (s *DefaultDepartmentService) UnassignDoctor(departmentID, doctorID string) (*models.Department, error) {
	if err := s.Repo.RemoveDoctor(departmentID, doctorID); err != nil {
		if errors.Is(err, departmentRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: department %s", scheduling.ErrNotFound, departmentID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return s.GetByID(departmentID)
}
