package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetByID retrieves a patient with its owning user preloaded
func (r *PatientRepository) GetByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Preload("User").First(&patient, id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByUserID retrieves the patient row owned by the given user
func (r *PatientRepository) GetByUserID(userID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("user_id = ?", userID).Preload("User").First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// List retrieves one page of patients joined with their user rows
func (r *PatientRepository) List(page, perPage int) ([]models.Patient, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	query := r.db.Model(&models.Patient{}).
		Joins("INNER JOIN users ON users.id = patients.user_id").
		Where("users.role = ?", models.RolePatient)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []models.Patient
	err := query.Preload("User").
		Order("patients.id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&patients).Error
	return patients, total, err
}

// Count returns the total number of patients
func (r *PatientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}

// CreateWithUser creates the user and its dependent patient row as one unit.
// The user insert runs first so the generated id can be referenced by the
// patient row; a failure on either insert rolls back both.
func (r *PatientRepository) CreateWithUser(user *models.User, patient *models.Patient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		patient.UserID = user.ID
		return tx.Create(patient).Error
	})
}

// UpdateWithUser persists changes to a patient row and its owning user as one unit
func (r *PatientRepository) UpdateWithUser(user *models.User, patient *models.Patient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(patient).Error
	})
}

// Delete hard-deletes a patient row
func (r *PatientRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Patient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
