package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetByID retrieves a doctor with user and department preloaded
func (r *DoctorRepository) GetByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("User").Preload("Department").First(&doctor, id).Error
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetByUserID retrieves the doctor row owned by the given user
func (r *DoctorRepository) GetByUserID(userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Preload("Department").
		First(&doctor).Error
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// FindOwnerUser retrieves the user owning the given doctor row
func (r *DoctorRepository) FindOwnerUser(doctorID uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Joins("INNER JOIN doctors ON doctors.user_id = users.id").
		Where("doctors.id = ?", doctorID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the total number of doctors
func (r *DoctorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Count(&count).Error
	return count, err
}

// CreateWithUser creates the user and its dependent doctor row as one unit and
// bumps the department's registered-doctor counter.
func (r *DoctorRepository) CreateWithUser(user *models.User, doctor *models.Doctor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		doctor.UserID = user.ID
		if err := tx.Create(doctor).Error; err != nil {
			return err
		}
		return tx.Model(&models.Department{}).
			Where("id = ?", doctor.DepartmentID).
			Update("doctors_registered", gorm.Expr("doctors_registered + 1")).Error
	})
}

// UpdateWithUser persists changes to a doctor row and its owning user as one unit
func (r *DoctorRepository) UpdateWithUser(user *models.User, doctor *models.Doctor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(doctor).Error
	})
}

// Delete hard-deletes a doctor row and releases its department slot
func (r *DoctorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Doctor{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Department{}).
			Where("id = ? AND doctors_registered > 0", doctor.DepartmentID).
			Update("doctors_registered", gorm.Expr("doctors_registered - 1")).Error
	})
}
