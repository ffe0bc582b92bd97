package service

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/pkg/utils"

	"gorm.io/gorm"
)

type PatientService struct {
	patientRepo     *repository.PatientRepository
	appointmentRepo *repository.AppointmentRepository
	historyRepo     *repository.HistoryRepository
}

func NewPatientService(
	patientRepo *repository.PatientRepository,
	appointmentRepo *repository.AppointmentRepository,
	historyRepo *repository.HistoryRepository,
) *PatientService {
	return &PatientService{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
	}
}

// PatientDetail is the joined user+patient view returned by the patient endpoints
type PatientDetail struct {
	PatientID        uint   `json:"patient_id"`
	UserID           uint   `json:"user_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

func newPatientDetail(p *models.Patient) PatientDetail {
	return PatientDetail{
		PatientID:        p.ID,
		UserID:           p.UserID,
		FullName:         p.User.FullName,
		Email:            p.User.Email,
		Phone:            p.User.Phone,
		BloodGroup:       p.BloodGroup,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
	}
}

// CreateUpdatePatientInput drives the admin create-or-update endpoint.
// A non-zero PatientID selects the update path.
type CreateUpdatePatientInput struct {
	PatientID        uint
	FullName         string
	Email            string
	Phone            string
	BloodGroup       string
	Address          string
	EmergencyContact string
}

// Get returns the joined patient view
func (s *PatientService) Get(id uint) (*PatientDetail, error) {
	patient, err := s.patientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
		}
		return nil, err
	}
	detail := newPatientDetail(patient)
	return &detail, nil
}

// CreateOrUpdate updates the fixed patient field set when PatientID is present,
// otherwise creates a user with a placeholder credential plus a linked patient
// row in one transaction.
func (s *PatientService) CreateOrUpdate(input CreateUpdatePatientInput) (*PatientDetail, error) {
	if input.PatientID != 0 {
		patient, err := s.patientRepo.GetByID(input.PatientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
			}
			return nil, err
		}

		// Update field set is fixed: full_name, phone, blood_group, address,
		// emergency_contact. Email and role are never touched here.
		user := patient.User
		user.FullName = input.FullName
		user.Phone = input.Phone
		patient.BloodGroup = input.BloodGroup
		patient.Address = input.Address
		patient.EmergencyContact = input.EmergencyContact

		if err := s.patientRepo.UpdateWithUser(&user, patient); err != nil {
			return nil, fmt.Errorf("failed to update patient: %w", err)
		}
		patient.User = user
		detail := newPatientDetail(patient)
		return &detail, nil
	}

	credential, err := utils.GeneratePlaceholderCredential()
	if err != nil {
		return nil, fmt.Errorf("failed to generate credential: %w", err)
	}

	user := &models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: credential,
		Role:         models.RolePatient,
		IsActive:     true,
	}
	patient := &models.Patient{
		BloodGroup:       input.BloodGroup,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
	}
	if err := s.patientRepo.CreateWithUser(user, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	patient.User = *user
	detail := newPatientDetail(patient)
	return &detail, nil
}

// Delete hard-deletes a patient row
func (s *PatientService) Delete(id uint) error {
	if err := s.patientRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: patient not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// PatientDashboard aggregates a patient's own appointments and external history
type PatientDashboard struct {
	Patient      PatientDetail           `json:"patient"`
	Appointments []models.Appointment    `json:"appointments"`
	History      []models.PatientHistory `json:"history"`
}

// Dashboard builds the landing view for an authenticated patient
func (s *PatientService) Dashboard(userID uint) (*PatientDashboard, error) {
	patient, err := s.patientRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient record not found", ErrNotFound)
		}
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListByPatient(patient.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.ListByPatient(patient.ID)
	if err != nil {
		return nil, err
	}

	return &PatientDashboard{
		Patient:      newPatientDetail(patient),
		Appointments: appointments,
		History:      history,
	}, nil
}
