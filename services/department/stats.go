package department

import (
	"fmt"

	"medicore/models"
	"medicore/services/rating"
	"medicore/services/scheduling"

	"go.uber.org/zap"
)

// RefreshStats recomputes the department's derived figures from the completed
// appointments of its current doctors and persists the result.
func (s *DefaultDepartmentService) RefreshStats(departmentID string) (*models.DepartmentStats, error) {
	dept, err := s.GetByID(departmentID)
	if err != nil {
		return nil, err
	}

	stats := models.DepartmentStats{}
	if len(dept.DoctorIDs) > 0 {
		patients, err := s.Appointments.DistinctPatientsByDoctors(dept.DoctorIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
		}
		stats.TotalPatients = len(patients)

		completed, err := s.Appointments.FindCompletedByDoctors(dept.DoctorIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
		}
		stats.SatisfactionRate = rating.DepartmentSatisfaction(completed)
	}

	if err := s.Repo.SetStats(dept.ID, stats); err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	if s.Logger != nil {
		s.Logger.Info("department stats refreshed",
			zap.String("departmentId", dept.ID),
			zap.Int("totalPatients", stats.TotalPatients),
			zap.Float64("satisfactionRate", stats.SatisfactionRate))
	}
	return &stats, nil
}
