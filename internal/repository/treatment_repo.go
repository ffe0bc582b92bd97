package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepo(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

// GetByAppointmentID retrieves the treatment recorded for an appointment
func (r *TreatmentRepository) GetByAppointmentID(appointmentID uint) (*models.Treatment, error) {
	var treatment models.Treatment
	err := r.db.Where("appointment_id = ?", appointmentID).First(&treatment).Error
	if err != nil {
		return nil, err
	}
	return &treatment, nil
}

// ExistsForAppointment reports whether a treatment is already recorded for the appointment
func (r *TreatmentRepository) ExistsForAppointment(appointmentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Treatment{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	return count > 0, err
}

// Create creates a new treatment
func (r *TreatmentRepository) Create(treatment *models.Treatment) error {
	return r.db.Create(treatment).Error
}

// Update persists all fields of an existing treatment
func (r *TreatmentRepository) Update(treatment *models.Treatment) error {
	return r.db.Save(treatment).Error
}
