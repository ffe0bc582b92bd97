package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ListByDoctor retrieves all availability slots for a doctor, earliest first
func (r *AvailabilityRepository) ListByDoctor(doctorID uint) ([]models.DoctorAvailability, error) {
	var slots []models.DoctorAvailability
	err := r.db.Where("doctor_id = ?", doctorID).
		Order("start_datetime ASC").
		Find(&slots).Error
	return slots, err
}

// ListOpenByDoctor retrieves unbooked slots for a doctor
func (r *AvailabilityRepository) ListOpenByDoctor(doctorID uint) ([]models.DoctorAvailability, error) {
	var slots []models.DoctorAvailability
	err := r.db.Where("doctor_id = ? AND is_booked = ?", doctorID, false).
		Order("start_datetime ASC").
		Find(&slots).Error
	return slots, err
}

// GetByID retrieves a slot by ID
func (r *AvailabilityRepository) GetByID(id uint) (*models.DoctorAvailability, error) {
	var slot models.DoctorAvailability
	if err := r.db.First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// Create creates a new availability slot
func (r *AvailabilityRepository) Create(slot *models.DoctorAvailability) error {
	return r.db.Create(slot).Error
}

// SetBooked flips the booked flag on a slot. The flag is written after the
// appointment insert, not in the same transaction; concurrent bookings of the
// same slot are a known, unresolved race.
func (r *AvailabilityRepository) SetBooked(id uint, booked bool) error {
	return r.db.Model(&models.DoctorAvailability{}).
		Where("id = ?", id).
		Update("is_booked", booked).Error
}

// Delete hard-deletes a slot
func (r *AvailabilityRepository) Delete(id uint) error {
	result := r.db.Delete(&models.DoctorAvailability{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
