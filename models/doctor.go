package models

import "time"

// ScheduleEntry is one weekday of a doctor's recurring working hours.
// Times of day are "HH:MM" strings, matching what admin tooling submits.
type ScheduleEntry struct {
	Day             string       `bson:"day" json:"day"` // "monday" ... "sunday"
	StartTime       string       `bson:"startTime" json:"startTime"`
	EndTime         string       `bson:"endTime" json:"endTime"`
	IsAvailable     bool         `bson:"isAvailable" json:"isAvailable"`
	MaxAppointments int          `bson:"maxAppointments" json:"maxAppointments"`
	Break           *BreakWindow `bson:"breakTime,omitempty" json:"breakTime,omitempty"`
}

type BreakWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

type Qualification struct {
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution,omitempty" json:"institution,omitempty"`
	Year        int    `bson:"year,omitempty" json:"year,omitempty"`
}

// Review is a patient's rating of a doctor. AverageRating on the doctor is
// derived from these and recomputed on every review mutation.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Rating    int       `bson:"rating" json:"rating"` // 1-5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Doctor struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"userId,omitempty" json:"userId,omitempty"`
	Name            string          `bson:"name" json:"name"`
	Specialization  string          `bson:"specialization" json:"specialization"`
	Qualifications  []Qualification `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	ExperienceYears int             `bson:"experienceYears" json:"experienceYears"`
	Expertise       []string        `bson:"expertise,omitempty" json:"expertise,omitempty"`
	DepartmentID    string          `bson:"departmentId" json:"departmentId"`
	Schedule        []ScheduleEntry `bson:"schedule,omitempty" json:"schedule,omitempty"`
	ConsultationFee float64         `bson:"consultationFee" json:"consultationFee"`
	AverageRating   float64         `bson:"averageRating" json:"averageRating"` // 0-5, one decimal
	Reviews         []Review        `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Languages       []string        `bson:"languages,omitempty" json:"languages,omitempty"`
	IsAvailable     bool            `bson:"isAvailable" json:"isAvailable"`
	About           string          `bson:"about,omitempty" json:"about,omitempty"`
	ProfileImage    string          `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleFor returns the schedule entry for the given weekday name, or nil if
// none is configured. Weekday names are stored lowercase.
func (d *Doctor) ScheduleFor(day string) *ScheduleEntry {
	for i := range d.Schedule {
		if d.Schedule[i].Day == day {
			return &d.Schedule[i]
		}
	}
	return nil
}
