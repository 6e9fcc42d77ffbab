package models

import "time"

type DepartmentService struct {
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	Cost            float64 `bson:"cost,omitempty" json:"cost,omitempty"`
	DurationMinutes int     `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Available       bool    `bson:"available" json:"available"`
}

type DepartmentLocation struct {
	Building    string   `bson:"building,omitempty" json:"building,omitempty"`
	Floor       string   `bson:"floor,omitempty" json:"floor,omitempty"`
	RoomNumbers []string `bson:"roomNumbers,omitempty" json:"roomNumbers,omitempty"`
}

type ContactInfo struct {
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Extension string `bson:"extension,omitempty" json:"extension,omitempty"`
}

type WorkingHours struct {
	Day       string `bson:"day" json:"day"`
	IsOpen    bool   `bson:"isOpen" json:"isOpen"`
	OpenTime  string `bson:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime string `bson:"closeTime,omitempty" json:"closeTime,omitempty"`
}

// DepartmentStats holds derived figures. SatisfactionRate is the mean feedback
// rating over rated completed appointments of the department's doctors.
type DepartmentStats struct {
	TotalPatients    int     `bson:"totalPatients" json:"totalPatients"`
	SatisfactionRate float64 `bson:"satisfactionRate" json:"satisfactionRate"` // 0-5
}

type Department struct {
	ID           string              `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Description  string              `bson:"description" json:"description"`
	HeadDoctorID string              `bson:"headDoctorId,omitempty" json:"headDoctorId,omitempty"`
	DoctorIDs    []string            `bson:"doctorIds,omitempty" json:"doctorIds,omitempty"`
	Services     []DepartmentService `bson:"services,omitempty" json:"services,omitempty"`
	Location     *DepartmentLocation `bson:"location,omitempty" json:"location,omitempty"`
	ContactInfo  *ContactInfo        `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	WorkingHours []WorkingHours      `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	Stats        DepartmentStats     `bson:"stats" json:"stats"`
	ImageURL     string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive     bool                `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// HasDoctor reports whether the doctor belongs to this department.
func (d *Department) HasDoctor(doctorID string) bool {
	for _, id := range d.DoctorIDs {
		if id == doctorID {
			return true
		}
	}
	return false
}
