package models

import "time"

// DefaultAppointmentDuration is the slot length assigned when a booking request
// does not specify one. Duration is stored per appointment so that visit types
// with longer slots do not require a schema change.
const DefaultAppointmentDuration = 30 * time.Minute

// AppointmentStatus is the closed set of appointment states.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// validTransitions enumerates every allowed status change. The moves into
// in_progress are normally applied lazily by the lifecycle manager once the
// start time has elapsed.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo reports whether moving from s to next is an allowed transition.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CountsForConflict reports whether an appointment in this status still
// occupies its doctor's time. Cancelled and no-show records are retained
// for history but release their slot.
func (s AppointmentStatus) CountsForConflict() bool {
	return s != StatusCancelled && s != StatusNoShow
}

type AppointmentType string

const (
	TypeConsultation    AppointmentType = "consultation"
	TypeFollowUp        AppointmentType = "follow_up"
	TypeEmergency       AppointmentType = "emergency"
	TypeRoutineCheckup  AppointmentType = "routine_checkup"
	TypeSpecialistVisit AppointmentType = "specialist_visit"
	TypeVaccination     AppointmentType = "vaccination"
)

type Symptom struct {
	Name     string `bson:"name" json:"name"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty"` // "mild", "moderate", "severe"
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

type Vitals struct {
	BloodPressure    string  `bson:"bloodPressure,omitempty" json:"bloodPressure,omitempty"`
	Temperature      float64 `bson:"temperature,omitempty" json:"temperature,omitempty"`
	HeartRate        int     `bson:"heartRate,omitempty" json:"heartRate,omitempty"`
	RespiratoryRate  int     `bson:"respiratoryRate,omitempty" json:"respiratoryRate,omitempty"`
	OxygenSaturation float64 `bson:"oxygenSaturation,omitempty" json:"oxygenSaturation,omitempty"`
	Weight           float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Height           float64 `bson:"height,omitempty" json:"height,omitempty"`
}

type Diagnosis struct {
	Condition string `bson:"condition" json:"condition"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
	ICDCode   string `bson:"icdCode,omitempty" json:"icdCode,omitempty"`
}

type PrescriptionItem struct {
	Medicine     string `bson:"medicine" json:"medicine"`
	Amount       int    `bson:"amount,omitempty" json:"amount,omitempty"`
	Unit         string `bson:"unit,omitempty" json:"unit,omitempty"`
	Frequency    string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Timing       string `bson:"timing,omitempty" json:"timing,omitempty"` // "before_meal", "after_meal", "with_meal", "any_time"
	DurationDays int    `bson:"durationDays,omitempty" json:"durationDays,omitempty"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

type LabTest struct {
	TestName string     `bson:"testName" json:"testName"`
	Reason   string     `bson:"reason,omitempty" json:"reason,omitempty"`
	Status   string     `bson:"status" json:"status"` // "ordered", "completed", "cancelled"
	Results  *LabResult `bson:"results,omitempty" json:"results,omitempty"`
}

type LabResult struct {
	Value          string    `bson:"value" json:"value"`
	Unit           string    `bson:"unit,omitempty" json:"unit,omitempty"`
	NormalRange    string    `bson:"normalRange,omitempty" json:"normalRange,omitempty"`
	Interpretation string    `bson:"interpretation,omitempty" json:"interpretation,omitempty"`
	ReportDate     time.Time `bson:"reportDate,omitzero" json:"reportDate,omitzero"`
}

type FollowUp struct {
	Recommended bool      `bson:"recommended" json:"recommended"`
	Date        time.Time `bson:"date,omitzero" json:"date,omitzero"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Insurance struct {
	Provider     string  `bson:"provider,omitempty" json:"provider,omitempty"`
	PolicyNumber string  `bson:"policyNumber,omitempty" json:"policyNumber,omitempty"`
	ApprovalCode string  `bson:"approvalCode,omitempty" json:"approvalCode,omitempty"`
	Coverage     float64 `bson:"coverage" json:"coverage"` // percentage of the amount covered, 0-100
}

const (
	PaymentMethodCash      = "cash"
	PaymentMethodCard      = "card"
	PaymentMethodInsurance = "insurance"
	PaymentMethodOnline    = "online"
)

type Payment struct {
	Amount        float64    `bson:"amount" json:"amount"`
	Status        string     `bson:"status" json:"status"` // "pending", "paid", "refunded", "failed"
	Method        string     `bson:"method,omitempty" json:"method,omitempty"`
	TransactionID string     `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Insurance     *Insurance `bson:"insurance,omitempty" json:"insurance,omitempty"`
}

type Attachment struct {
	Name       string    `bson:"name" json:"name"`
	Type       string    `bson:"type,omitempty" json:"type,omitempty"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// Feedback is the patient's rating of a completed appointment. It feeds the
// department satisfaction rate.
type Feedback struct {
	Rating    int       `bson:"rating" json:"rating"` // 1-5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Appointment is a booked visit. The occupied interval is
// [StartTime, StartTime+Duration); no two appointments of the same doctor in a
// conflict-counting status may overlap.
type Appointment struct {
	ID              string             `bson:"id" json:"id"`
	PatientID       string             `bson:"patientId" json:"patientId"`
	DoctorID        string             `bson:"doctorId" json:"doctorId"`
	StartTime       time.Time          `bson:"startTime" json:"startTime"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Status          AppointmentStatus  `bson:"status" json:"status"`
	Type            AppointmentType    `bson:"type" json:"type"`
	ReasonForVisit  string             `bson:"reasonForVisit" json:"reasonForVisit"`
	Symptoms        []Symptom          `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Vitals          *Vitals            `bson:"vitals,omitempty" json:"vitals,omitempty"`
	Diagnosis       []Diagnosis        `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Prescription    []PrescriptionItem `bson:"prescription,omitempty" json:"prescription,omitempty"`
	LabTests        []LabTest          `bson:"labTests,omitempty" json:"labTests,omitempty"`
	FollowUp        *FollowUp          `bson:"followUp,omitempty" json:"followUp,omitempty"`
	Payment         Payment            `bson:"payment" json:"payment"`
	DoctorNotes     string             `bson:"doctorNotes,omitempty" json:"-"` // medical staff only, never serialized to patients
	PatientNotes    string             `bson:"patientNotes,omitempty" json:"patientNotes,omitempty"`
	Attachments     []Attachment       `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Feedback        *Feedback          `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EndTime returns the exclusive end of the occupied interval.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(a.Duration())
}

// Duration returns the slot length, falling back to the default for records
// persisted without one.
func (a *Appointment) Duration() time.Duration {
	if a.DurationMinutes <= 0 {
		return DefaultAppointmentDuration
	}
	return time.Duration(a.DurationMinutes) * time.Minute
}
