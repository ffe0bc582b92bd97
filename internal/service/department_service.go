package service

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"gorm.io/gorm"
)

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
}

func NewDepartmentService(departmentRepo *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// GetAll returns all departments
func (s *DepartmentService) GetAll() ([]models.Department, error) {
	return s.departmentRepo.GetAll()
}

// Create adds a department; names are unique
func (s *DepartmentService) Create(department *models.Department) error {
	_, err := s.departmentRepo.GetByName(department.Name)
	if err == nil {
		return fmt.Errorf("%w: department name already exists", ErrInvalidInput)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.departmentRepo.Create(department)
}
