package models

import "time"

// Doctor represents the doctors table
// The referenced user is expected to carry role=doctor; the schema does not enforce it.
type Doctor struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	DepartmentID    uint      `gorm:"not null;index" json:"department_id"`
	Qualification   string    `gorm:"size:255" json:"qualification,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Bio             string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	User           User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department     Department           `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Availabilities []DoctorAvailability `gorm:"foreignKey:DoctorID" json:"availabilities,omitempty"`
	Appointments   []Appointment        `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	Treatments     []Treatment          `gorm:"foreignKey:DoctorID" json:"treatments,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
