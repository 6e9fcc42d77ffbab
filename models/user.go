package models

import "time"

// Role is the account role used for authorization decisions.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// IsStaff reports whether the role may act on records it does not own.
func (r Role) IsStaff() bool {
	return r == RoleDoctor || r == RoleAdmin
}

type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `bson:"name" json:"name"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
	PhoneNumber  string `bson:"phoneNumber" json:"phoneNumber"`
}

type MedicalHistoryEntry struct {
	Condition     string    `bson:"condition" json:"condition"`
	DiagnosedDate time.Time `bson:"diagnosedDate,omitzero" json:"diagnosedDate,omitzero"`
	Medications   []string  `bson:"medications,omitempty" json:"medications,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PatientProfile holds the medical profile attached to patient accounts.
type PatientProfile struct {
	DateOfBirth      time.Time             `bson:"dateOfBirth,omitzero" json:"dateOfBirth,omitzero"`
	BloodGroup       string                `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Address          *Address              `bson:"address,omitempty" json:"address,omitempty"`
	EmergencyContact *EmergencyContact     `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	Allergies        []string              `bson:"allergies,omitempty" json:"allergies,omitempty"`
}

// User is an account: a patient, a doctor's login, or an admin.
type User struct {
	ID           string          `bson:"id" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Email        string          `bson:"email" json:"email"`
	PhoneNumber  string          `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Password     string          `bson:"-" json:"password,omitempty"`
	PasswordHash string          `bson:"passwordHash" json:"-"`
	Role         Role            `bson:"role" json:"role"`
	Patient      *PatientProfile `bson:"patient,omitempty" json:"patient,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}
