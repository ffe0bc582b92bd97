package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// GetByID retrieves an appointment with doctor, patient and treatment preloaded
func (r *AppointmentRepository) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.
		Preload("Doctor.User").
		Preload("Patient.User").
		Preload("Treatment").
		First(&appointment, id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// ListByDoctor retrieves all appointments for a doctor, earliest first
func (r *AppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Preload("Patient.User").
		Order("appointment_start ASC").
		Find(&appointments).Error
	return appointments, err
}

// ListByPatient retrieves all appointments for a patient, earliest first
func (r *AppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Preload("Doctor.User").
		Order("appointment_start ASC").
		Find(&appointments).Error
	return appointments, err
}

// Count returns the total number of appointments
func (r *AppointmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

// Create creates a new appointment
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// Update persists all fields of an existing appointment
func (r *AppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// Delete hard-deletes an appointment
func (r *AppointmentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
