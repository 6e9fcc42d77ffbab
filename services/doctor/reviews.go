package doctor

import (
	"errors"
	"fmt"
	"time"

	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
	"medicore/services/rating"
	"medicore/services/scheduling"

	"github.com/google/uuid"
)

// AddReview appends a review and writes the review set together with the
// recomputed average in a single update.
func (s *DefaultDoctorService) AddReview(doctorID, patientID string, ratingValue int, comment string) (*models.Doctor, error) {
	if ratingValue < 1 || ratingValue > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", scheduling.ErrValidation)
	}
	doc, err := s.GetByID(doctorID)
	if err != nil {
		return nil, err
	}

	doc.Reviews = append(doc.Reviews, models.Review{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Rating:    ratingValue,
		Comment:   comment,
		CreatedAt: time.Now(),
	})
	doc.AverageRating = rating.DoctorAverage(doc.Reviews)

	if err := s.Repo.SetReviews(doc.ID, doc.Reviews, doc.AverageRating); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, doctorID)
		}
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return doc, nil
}

// RemoveReview deletes a review. Only its author or staff may remove it; the
// average is recomputed in the same update.
func (s *DefaultDoctorService) RemoveReview(doctorID, reviewID, requesterID string, requesterRole models.Role) (*models.Doctor, error) {
	doc, err := s.GetByID(doctorID)
	if err != nil {
		return nil, err
	}

	kept := doc.Reviews[:0]
	found := false
	for _, r := range doc.Reviews {
		if r.ID == reviewID {
			if r.PatientID != requesterID && !requesterRole.IsStaff() {
				return nil, scheduling.ErrForbidden
			}
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return nil, fmt.Errorf("%w: review %s", scheduling.ErrNotFound, reviewID)
	}

	doc.Reviews = kept
	doc.AverageRating = rating.DoctorAverage(doc.Reviews)

	if err := s.Repo.SetReviews(doc.ID, doc.Reviews, doc.AverageRating); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return doc, nil
}
