package models

import "time"

// ReminderPayload is the task body enqueued for appointment reminders.
// Reminders fire 24 hours before the appointment start.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	PatientID     string    `json:"patientId"`
	ScheduledFor  time.Time `json:"scheduledFor"`
	Message       string    `json:"message"`
}
