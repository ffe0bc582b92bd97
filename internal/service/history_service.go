package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"gorm.io/gorm"
)

type HistoryService struct {
	historyRepo *repository.HistoryRepository
	patientRepo *repository.PatientRepository
}

func NewHistoryService(
	historyRepo *repository.HistoryRepository,
	patientRepo *repository.PatientRepository,
) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		patientRepo: patientRepo,
	}
}

// CreateUpdateHistoryInput drives the create-or-update endpoint for external
// history records. Hospital, doctor and department names are free text.
type CreateUpdateHistoryInput struct {
	HistoryID     uint
	PatientID     uint
	HospitalName  string
	DoctorName    string
	Department    string
	Diagnosis     string
	Prescription  string
	Notes         string
	TreatmentDate time.Time
	DocumentsURL  string
}

// CreateOrUpdate records or updates an external history entry for a patient
func (s *HistoryService) CreateOrUpdate(input CreateUpdateHistoryInput) (*models.PatientHistory, error) {
	if input.HistoryID != 0 {
		record, err := s.historyRepo.GetByID(input.HistoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: history record not found", ErrNotFound)
			}
			return nil, err
		}

		record.HospitalName = input.HospitalName
		record.DoctorName = input.DoctorName
		record.Department = input.Department
		record.Diagnosis = input.Diagnosis
		record.Prescription = input.Prescription
		record.Notes = input.Notes
		record.TreatmentDate = input.TreatmentDate
		record.DocumentsURL = input.DocumentsURL

		if err := s.historyRepo.Update(record); err != nil {
			return nil, fmt.Errorf("failed to update history record: %w", err)
		}
		return record, nil
	}

	if _, err := s.patientRepo.GetByID(input.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
		}
		return nil, err
	}

	record := &models.PatientHistory{
		PatientID:     input.PatientID,
		HospitalName:  input.HospitalName,
		DoctorName:    input.DoctorName,
		Department:    input.Department,
		Diagnosis:     input.Diagnosis,
		Prescription:  input.Prescription,
		Notes:         input.Notes,
		TreatmentDate: input.TreatmentDate,
		DocumentsURL:  input.DocumentsURL,
	}
	if err := s.historyRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create history record: %w", err)
	}
	return record, nil
}

// ListByPatient returns a patient's external history records
func (s *HistoryService) ListByPatient(patientID uint) ([]models.PatientHistory, error) {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
		}
		return nil, err
	}
	return s.historyRepo.ListByPatient(patientID)
}

// Delete removes a history record
func (s *HistoryService) Delete(id uint) error {
	if err := s.historyRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: history record not found", ErrNotFound)
		}
		return err
	}
	return nil
}
