package service

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/pkg/utils"

	"gorm.io/gorm"
)

type DoctorService struct {
	doctorRepo       *repository.DoctorRepository
	departmentRepo   *repository.DepartmentRepository
	blacklistRepo    *repository.BlacklistRepository
	availabilityRepo *repository.AvailabilityRepository
	appointmentRepo  *repository.AppointmentRepository
}

func NewDoctorService(
	doctorRepo *repository.DoctorRepository,
	departmentRepo *repository.DepartmentRepository,
	blacklistRepo *repository.BlacklistRepository,
	availabilityRepo *repository.AvailabilityRepository,
	appointmentRepo *repository.AppointmentRepository,
) *DoctorService {
	return &DoctorService{
		doctorRepo:       doctorRepo,
		departmentRepo:   departmentRepo,
		blacklistRepo:    blacklistRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// CreateUpdateDoctorInput drives the admin create-or-update endpoint.
// A non-zero DoctorID selects the update path.
type CreateUpdateDoctorInput struct {
	DoctorID        uint
	FullName        string
	Email           string
	Phone           string
	DepartmentID    uint
	Qualification   string
	ExperienceYears int
	Bio             string
}

// Get retrieves a doctor with user and department preloaded
func (s *DoctorService) Get(id uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor not found", ErrNotFound)
		}
		return nil, err
	}
	return doctor, nil
}

// CreateOrUpdate mirrors the patient CRUD contract for doctors. Creation makes
// a user with role doctor plus the doctor row in one transaction and bumps the
// department counter; the update field set is full_name, phone, qualification,
// experience_years and bio.
func (s *DoctorService) CreateOrUpdate(input CreateUpdateDoctorInput) (*models.Doctor, error) {
	if input.DoctorID != 0 {
		doctor, err := s.doctorRepo.GetByID(input.DoctorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: doctor not found", ErrNotFound)
			}
			return nil, err
		}

		user := doctor.User
		user.FullName = input.FullName
		user.Phone = input.Phone
		doctor.Qualification = input.Qualification
		doctor.ExperienceYears = input.ExperienceYears
		doctor.Bio = input.Bio

		if err := s.doctorRepo.UpdateWithUser(&user, doctor); err != nil {
			return nil, fmt.Errorf("failed to update doctor: %w", err)
		}
		doctor.User = user
		return doctor, nil
	}

	// Create path: the department must exist before the counter is bumped.
	if _, err := s.departmentRepo.GetByID(input.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department not found", ErrNotFound)
		}
		return nil, err
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
		Role:         models.RoleDoctor,
		IsActive:     true,
	}
	doctor := &models.Doctor{
		DepartmentID:    input.DepartmentID,
		Qualification:   input.Qualification,
		ExperienceYears: input.ExperienceYears,
		Bio:             input.Bio,
	}
	if err := s.doctorRepo.CreateWithUser(user, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	doctor.User = *user
	return doctor, nil
}

// Delete hard-deletes a doctor row and releases its department slot
func (s *DoctorService) Delete(id uint) error {
	if err := s.doctorRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: doctor not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// Blacklist deactivates the user owning the doctor and records the blacklist
// entry; both writes land atomically or not at all.
func (s *DoctorService) Blacklist(doctorID uint, reason string) error {
	user, err := s.doctorRepo.FindOwnerUser(doctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: doctor not found", ErrNotFound)
		}
		return err
	}
	if err := s.blacklistRepo.BlacklistUser(user.ID, reason); err != nil {
		return fmt.Errorf("failed to blacklist doctor: %w", err)
	}
	return nil
}

// AddAvailability records a new availability slot for a doctor
func (s *DoctorService) AddAvailability(slot *models.DoctorAvailability) error {
	if _, err := s.doctorRepo.GetByID(slot.DoctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: doctor not found", ErrNotFound)
		}
		return err
	}
	return s.availabilityRepo.Create(slot)
}

// ListAvailability returns all slots for a doctor
func (s *DoctorService) ListAvailability(doctorID uint) ([]models.DoctorAvailability, error) {
	return s.availabilityRepo.ListByDoctor(doctorID)
}

// DeleteAvailability removes a slot
func (s *DoctorService) DeleteAvailability(id uint) error {
	if err := s.availabilityRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: slot not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// DoctorDashboard aggregates a doctor's own appointments and open slots
type DoctorDashboard struct {
	Doctor       *models.Doctor              `json:"doctor"`
	Appointments []models.Appointment        `json:"appointments"`
	OpenSlots    []models.DoctorAvailability `json:"open_slots"`
}

// Dashboard builds the landing view for an authenticated doctor
func (s *DoctorService) Dashboard(userID uint) (*DoctorDashboard, error) {
	doctor, err := s.doctorRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor record not found", ErrNotFound)
		}
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListByDoctor(doctor.ID)
	if err != nil {
		return nil, err
	}
	slots, err := s.availabilityRepo.ListOpenByDoctor(doctor.ID)
	if err != nil {
		return nil, err
	}

	return &DoctorDashboard{
		Doctor:       doctor,
		Appointments: appointments,
		OpenSlots:    slots,
	}, nil
}
