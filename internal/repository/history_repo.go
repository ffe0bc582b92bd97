package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// ListByPatient retrieves a patient's external history records, newest treatment first
func (r *HistoryRepository) ListByPatient(patientID uint) ([]models.PatientHistory, error) {
	var records []models.PatientHistory
	err := r.db.Where("patient_id = ?", patientID).
		Order("treatment_date DESC").
		Find(&records).Error
	return records, err
}

// GetByID retrieves a history record by ID
func (r *HistoryRepository) GetByID(id uint) (*models.PatientHistory, error) {
	var record models.PatientHistory
	if err := r.db.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create creates a new history record
func (r *HistoryRepository) Create(record *models.PatientHistory) error {
	return r.db.Create(record).Error
}

// Update persists all fields of an existing history record
func (r *HistoryRepository) Update(record *models.PatientHistory) error {
	return r.db.Save(record).Error
}

// Delete hard-deletes a history record
func (r *HistoryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.PatientHistory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
