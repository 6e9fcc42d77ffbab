package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "medicore/database/repository/user"
	"medicore/models"
	"medicore/services/scheduling"
)

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", scheduling.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return u, nil
}

// UpdateProfile replaces the mutable account fields. Email, role, password
// hash and the medical profile are untouched; each has its own flow.
func (s *DefaultUserService) UpdateProfile(id string, updated *models.User) (*models.User, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated.Name != "" {
		current.Name = updated.Name
	}
	if updated.PhoneNumber != "" {
		current.PhoneNumber = updated.PhoneNumber
	}
	current.UpdatedAt = time.Now()

	if err := s.Repo.Update(current); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return current, nil
}

func (s *DefaultUserService) UpdateMedicalProfile(id string, profile *models.PatientProfile) (*models.User, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.Role != models.RolePatient {
		return nil, fmt.Errorf("%w: only patient accounts carry a medical profile", scheduling.ErrValidation)
	}
	current.Patient = profile
	current.UpdatedAt = time.Now()

	if err := s.Repo.Update(current); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return current, nil
}

func (s *DefaultUserService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return fmt.Errorf("%w: user %s", scheduling.ErrNotFound, id)
		}
		return fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *DefaultUserService) GetAll() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return users, nil
}
