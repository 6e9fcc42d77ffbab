package doctor

import (
	"errors"
	"fmt"

	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
	"medicore/services/scheduling"

	"github.com/google/uuid"
)

// GetByID retrieves a doctor profile.
func (s *DefaultDoctorService) GetByID(doctorID string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, doctorID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return doc, nil
}

// GetAll lists doctors, filtered to one department when departmentID is set.
func (s *DefaultDoctorService) GetAll(departmentID string) ([]models.Doctor, error) {
	var docs []models.Doctor
	var err error
	if departmentID != "" {
		docs, err = s.Repo.GetByDepartment(departmentID)
	} else {
		docs, err = s.Repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return docs, nil
}

// Register creates a new doctor profile.
func (s *DefaultDoctorService) Register(doc *models.Doctor) (*models.Doctor, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: name is required", scheduling.ErrValidation)
	}
	if doc.Specialization == "" {
		return nil, fmt.Errorf("%w: specialization is required", scheduling.ErrValidation)
	}
	if err := validateSchedule(doc.Schedule); err != nil {
		return nil, err
	}

	doc.ID = uuid.New().String()
	doc.AverageRating = 0
	doc.Reviews = nil
	doc.IsAvailable = true

	if err := s.Repo.Create(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return doc, nil
}

// Update modifies a doctor profile. Reviews and the derived average are not
// updatable through this path; they change only via the review operations.
func (s *DefaultDoctorService) Update(doc *models.Doctor) (*models.Doctor, error) {
	current, err := s.GetByID(doc.ID)
	if err != nil {
		return nil, err
	}
	if err := validateSchedule(doc.Schedule); err != nil {
		return nil, err
	}

	doc.Reviews = current.Reviews
	doc.AverageRating = current.AverageRating
	doc.CreatedAt = current.CreatedAt

	if err := s.Repo.Update(doc); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, doc.ID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return doc, nil
}

// Delete removes a doctor profile.
func (s *DefaultDoctorService) Delete(doctorID string) error {
	if err := s.Repo.Delete(doctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, doctorID)
		}
		return fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return nil
}

// SetSchedule replaces the doctor's weekly working hours.
func (s *DefaultDoctorService) SetSchedule(doctorID string, schedule []models.ScheduleEntry) (*models.Doctor, error) {
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}
	if err := s.Repo.SetSchedule(doctorID, schedule); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, doctorID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return s.GetByID(doctorID)
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// validateSchedule rejects malformed entries up front so the booking path
// never sees an unparseable schedule: at most one entry per weekday, valid
// clock values, end after start, break inside the working window.
func validateSchedule(schedule []models.ScheduleEntry) error {
	seen := make(map[string]bool, len(schedule))
	for _, entry := range schedule {
		if !weekdays[entry.Day] {
			return fmt.Errorf("%w: unknown weekday %q", scheduling.ErrValidation, entry.Day)
		}
		if seen[entry.Day] {
			return fmt.Errorf("%w: duplicate schedule entry for %s", scheduling.ErrValidation, entry.Day)
		}
		seen[entry.Day] = true

		if !entry.IsAvailable {
			continue
		}
		start, err := scheduling.ParseClock(entry.StartTime)
		if err != nil {
			return fmt.Errorf("%w: %v", scheduling.ErrValidation, err)
		}
		end, err := scheduling.ParseClock(entry.EndTime)
		if err != nil {
			return fmt.Errorf("%w: %v", scheduling.ErrValidation, err)
		}
		if end <= start {
			return fmt.Errorf("%w: %s end time must be after start time", scheduling.ErrValidation, entry.Day)
		}
		if entry.MaxAppointments < 0 {
			return fmt.Errorf("%w: %s maxAppointments must not be negative", scheduling.ErrValidation, entry.Day)
		}
		if entry.Break != nil {
			bs, err := scheduling.ParseClock(entry.Break.Start)
			if err != nil {
				return fmt.Errorf("%w: %v", scheduling.ErrValidation, err)
			}
			be, err := scheduling.ParseClock(entry.Break.End)
			if err != nil {
				return fmt.Errorf("%w: %v", scheduling.ErrValidation, err)
			}
			if be <= bs || bs < start || be > end {
				return fmt.Errorf("%w: %s break must lie within working hours", scheduling.ErrValidation, entry.Day)
			}
		}
	}
	return nil
}
