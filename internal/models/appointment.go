package models

import "time"

// Appointment status values. Transitions are unconstrained; any status may be
// set from any other.
const (
	AppointmentBooked    = "Booked"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

// Appointment represents the appointments table
type Appointment struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	DoctorID         uint      `gorm:"not null;index" json:"doctor_id"`
	PatientID        uint      `gorm:"not null;index" json:"patient_id"`
	AppointmentStart time.Time `gorm:"not null" json:"appointment_start"`
	AppointmentEnd   time.Time `gorm:"not null" json:"appointment_end"`
	Status           string    `gorm:"size:20;not null" json:"status"`
	Reason           string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Doctor    Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient   Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Treatment *Treatment `gorm:"foreignKey:AppointmentID" json:"treatment,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
