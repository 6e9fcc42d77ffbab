// Package rating recomputes the derived rating figures: a doctor's average
// from its review set and a department's satisfaction rate from completed
// appointment feedback. Both are stored denormalized and must be recomputed
// synchronously whenever their inputs change.
package rating

import (
	"math"

	"medicore/models"
)

// roundHalfUp rounds to one decimal place, half up (3.25 -> 3.3).
func roundHalfUp(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// DoctorAverage returns the doctor's average rating: the mean of review
// ratings rounded half-up to one decimal, or 0 for an empty review set.
func DoctorAverage(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return roundHalfUp(float64(sum) / float64(len(reviews)))
}

// DepartmentSatisfaction returns the mean feedback rating across the given
// completed appointments, ignoring unrated ones, rounded half-up to one
// decimal. It is 0 when no rated completed appointment exists.
func DepartmentSatisfaction(completed []models.Appointment) float64 {
	sum, n := 0, 0
	for i := range completed {
		if completed[i].Status != models.StatusCompleted {
			continue
		}
		if fb := completed[i].Feedback; fb != nil {
			sum += fb.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return roundHalfUp(float64(sum) / float64(n))
}
