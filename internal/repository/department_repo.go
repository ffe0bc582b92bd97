package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// GetByName retrieves a department by its unique name
func (r *DepartmentRepository) GetByName(name string) (*models.Department, error) {
	var department models.Department
	if err := r.db.Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// Update persists all fields of an existing department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete hard-deletes a department
func (r *DepartmentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
