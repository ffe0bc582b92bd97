package models

import "time"

// PatientHistory represents the patient_history table
// External-history records: hospital, doctor and department are free text and are
// not linked to the internal Doctor/Department entities.
type PatientHistory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	HospitalName  string    `gorm:"size:255;not null" json:"hospital_name"`
	DoctorName    string    `gorm:"size:255" json:"doctor_name,omitempty"`
	Department    string    `gorm:"size:255" json:"department,omitempty"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Prescription  string    `gorm:"type:text" json:"prescription,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	TreatmentDate time.Time `gorm:"not null" json:"treatment_date"`
	DocumentsURL  string    `gorm:"size:500" json:"documents_url,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for PatientHistory model
func (PatientHistory) TableName() string {
	return "patient_history"
}
