package models

import "time"

// Patient represents the patients table
type Patient struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	BloodGroup       string    `gorm:"size:10" json:"blood_group,omitempty"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string    `gorm:"size:20" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	User         User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment    `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Treatments   []Treatment      `gorm:"foreignKey:PatientID" json:"treatments,omitempty"`
	History      []PatientHistory `gorm:"foreignKey:PatientID" json:"history,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
