package rating

import (
	"testing"

	"medicore/models"
)

func reviews(ratings ...int) []models.Review {
	out := make([]models.Review, len(ratings))
	for i, r := range ratings {
		out[i] = models.Review{Rating: r}
	}
	return out
}

func TestDoctorAverage(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"exact mean", []int{4, 5, 3}, 4},
		{"one decimal", []int{4, 5}, 4.5},
		{"rounds half up", []int{4, 5, 4, 4}, 4.3}, // 4.25 -> 4.3
		{"rounds down", []int{3, 3, 4}, 3.3},       // 3.333...
		{"all max", []int{5, 5, 5}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DoctorAverage(reviews(tc.ratings...)); got != tc.want {
				t.Fatalf("DoctorAverage = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDepartmentSatisfaction(t *testing.T) {
	fb := func(rating int) *models.Feedback { return &models.Feedback{Rating: rating} }

	t.Run("MeanOfRatedCompleted", func(t *testing.T) {
		appts := []models.Appointment{
			{Status: models.StatusCompleted, Feedback: fb(5)},
			{Status: models.StatusCompleted, Feedback: fb(4)},
			{Status: models.StatusCompleted},                   // unrated, skipped
			{Status: models.StatusCancelled, Feedback: fb(1)},  // not completed, skipped
		}
		if got := DepartmentSatisfaction(appts); got != 4.5 {
			t.Fatalf("DepartmentSatisfaction = %v, want 4.5", got)
		}
	})

	t.Run("NoRatedAppointments", func(t *testing.T) {
		appts := []models.Appointment{
			{Status: models.StatusCompleted},
			{Status: models.StatusScheduled, Feedback: fb(5)},
		}
		if got := DepartmentSatisfaction(appts); got != 0 {
			t.Fatalf("DepartmentSatisfaction = %v, want 0", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := DepartmentSatisfaction(nil); got != 0 {
			t.Fatalf("DepartmentSatisfaction = %v, want 0", got)
		}
	})
}
