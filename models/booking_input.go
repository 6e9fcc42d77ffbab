package models

import "time"

// BookingInput is the payload accepted when a patient books an appointment.
type BookingInput struct {
	PatientID       string          `json:"patientId"`
	DoctorID        string          `json:"doctorId" binding:"required"`
	StartTime       time.Time       `json:"startTime" binding:"required"`
	DurationMinutes int             `json:"durationMinutes"`
	Type            AppointmentType `json:"type" binding:"required"`
	ReasonForVisit  string          `json:"reasonForVisit" binding:"required"`
	PaymentAmount   float64         `json:"paymentAmount" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod"`
	Insurance       *Insurance      `json:"insurance,omitempty"`
	PatientNotes    string          `json:"patientNotes,omitempty"`
	Symptoms        []Symptom       `json:"symptoms,omitempty"`
}

// DayAvailability is the resolved availability of one doctor on one date.
// Start, End and the break bounds are minutes from midnight.
type DayAvailability struct {
	Open            bool      `json:"open"`
	Start           int       `json:"start,omitempty"`
	End             int       `json:"end,omitempty"`
	Break           *Interval `json:"break,omitempty"`
	MaxAppointments int       `json:"maxAppointments,omitempty"`
}

// Interval is a half-open [Start, End) window in minutes from midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
