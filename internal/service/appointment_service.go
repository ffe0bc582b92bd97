package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"gorm.io/gorm"
)

type AppointmentService struct {
	appointmentRepo  *repository.AppointmentRepository
	availabilityRepo *repository.AvailabilityRepository
	treatmentRepo    *repository.TreatmentRepository
	doctorRepo       *repository.DoctorRepository
	patientRepo      *repository.PatientRepository
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	availabilityRepo *repository.AvailabilityRepository,
	treatmentRepo *repository.TreatmentRepository,
	doctorRepo *repository.DoctorRepository,
	patientRepo *repository.PatientRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		treatmentRepo:    treatmentRepo,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
	}
}

// CreateUpdateAppointmentInput drives the create-or-update endpoint.
// A non-zero AppointmentID selects the update path. SlotID optionally marks an
// availability slot as booked after the appointment is created.
type CreateUpdateAppointmentInput struct {
	AppointmentID uint
	DoctorID      uint
	PatientID     uint
	Start         time.Time
	End           time.Time
	Status        string
	Reason        string
	SlotID        uint
}

// Get retrieves an appointment with its relations preloaded
func (s *AppointmentService) Get(id uint) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment not found", ErrNotFound)
		}
		return nil, err
	}
	return appointment, nil
}

// CreateOrUpdate creates an appointment (status defaults to Booked) or updates
// an existing one. Status transitions are unconstrained. When a slot id is
// supplied on creation, the slot's booked flag is set with a second write after
// the insert; the two are not one transaction and a concurrent booking of the
// same slot is a known, unresolved race.
func (s *AppointmentService) CreateOrUpdate(input CreateUpdateAppointmentInput) (*models.Appointment, error) {
	if input.AppointmentID != 0 {
		appointment, err := s.appointmentRepo.GetByID(input.AppointmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: appointment not found", ErrNotFound)
			}
			return nil, err
		}

		if !input.Start.IsZero() {
			appointment.AppointmentStart = input.Start
		}
		if !input.End.IsZero() {
			appointment.AppointmentEnd = input.End
		}
		if input.Status != "" {
			appointment.Status = input.Status
		}
		if input.Reason != "" {
			appointment.Reason = input.Reason
		}

		if err := s.appointmentRepo.Update(appointment); err != nil {
			return nil, fmt.Errorf("failed to update appointment: %w", err)
		}
		return appointment, nil
	}

	if _, err := s.doctorRepo.GetByID(input.DoctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor not found", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.patientRepo.GetByID(input.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
		}
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.AppointmentBooked
	}

	appointment := &models.Appointment{
		DoctorID:         input.DoctorID,
		PatientID:        input.PatientID,
		AppointmentStart: input.Start,
		AppointmentEnd:   input.End,
		Status:           status,
		Reason:           input.Reason,
	}
	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if input.SlotID != 0 {
		if err := s.availabilityRepo.SetBooked(input.SlotID, true); err != nil {
			return nil, fmt.Errorf("appointment created but slot flag not set: %w", err)
		}
	}

	return appointment, nil
}

// Delete hard-deletes an appointment
func (s *AppointmentService) Delete(id uint) error {
	if err := s.appointmentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: appointment not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// CreateUpdateTreatmentInput drives treatment recording for an appointment
type CreateUpdateTreatmentInput struct {
	TreatmentID   uint
	AppointmentID uint
	Diagnosis     string
	Prescription  string
	Notes         string
}

// RecordTreatment creates the single treatment for an appointment, or updates
// the existing one when TreatmentID is set. Doctor and patient refs are copied
// from the appointment.
func (s *AppointmentService) RecordTreatment(input CreateUpdateTreatmentInput) (*models.Treatment, error) {
	appointment, err := s.appointmentRepo.GetByID(input.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment not found", ErrNotFound)
		}
		return nil, err
	}

	if input.TreatmentID != 0 {
		treatment, err := s.treatmentRepo.GetByAppointmentID(input.AppointmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: treatment not found", ErrNotFound)
			}
			return nil, err
		}
		treatment.Diagnosis = input.Diagnosis
		treatment.Prescription = input.Prescription
		treatment.Notes = input.Notes
		if err := s.treatmentRepo.Update(treatment); err != nil {
			return nil, fmt.Errorf("failed to update treatment: %w", err)
		}
		return treatment, nil
	}

	exists, err := s.treatmentRepo.ExistsForAppointment(input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: treatment already recorded for appointment", ErrInvalidInput)
	}

	treatment := &models.Treatment{
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Diagnosis:     input.Diagnosis,
		Prescription:  input.Prescription,
		Notes:         input.Notes,
	}
	if err := s.treatmentRepo.Create(treatment); err != nil {
		return nil, fmt.Errorf("failed to record treatment: %w", err)
	}
	return treatment, nil
}

// GetTreatment returns the treatment recorded for an appointment
func (s *AppointmentService) GetTreatment(appointmentID uint) (*models.Treatment, error) {
	treatment, err := s.treatmentRepo.GetByAppointmentID(appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: treatment not found", ErrNotFound)
		}
		return nil, err
	}
	return treatment, nil
}
