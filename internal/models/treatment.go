package models

import "time"

// Treatment represents the treatments table
// Exactly one treatment may exist per appointment (unique index on appointment_id).
type Treatment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"not null;uniqueIndex" json:"appointment_id"`
	DoctorID      uint      `gorm:"not null;index" json:"doctor_id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescription  string    `gorm:"type:text" json:"prescription,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Treatment model
func (Treatment) TableName() string {
	return "treatments"
}
