package models

import "time"

// DoctorAvailability represents the doctor_availability table
// A slot is bookable by at most one appointment; the booked flag is set after the
// appointment insert, not atomically with it.
type DoctorAvailability struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DoctorID      uint      `gorm:"not null;index" json:"doctor_id"`
	StartDatetime time.Time `gorm:"not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null" json:"end_datetime"`
	IsBooked      bool      `gorm:"default:false" json:"is_booked"`
	Comment       string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for DoctorAvailability model
func (DoctorAvailability) TableName() string {
	return "doctor_availability"
}
