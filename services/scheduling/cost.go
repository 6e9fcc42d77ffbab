package scheduling

import "medicore/models"

// ComputeCost returns the amount the patient owes for an appointment.
// Insurance coverage is a percentage (0-100) of the payment amount; the
// result is clamped at zero so over-covering policies never produce a
// negative charge.
func ComputeCost(appt *models.Appointment) float64 {
	total := appt.Payment.Amount
	if ins := appt.Payment.Insurance; ins != nil && ins.Coverage > 0 {
		total -= appt.Payment.Amount * ins.Coverage / 100
	}
	if total < 0 {
		return 0
	}
	return total
}
