package service

import (
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

// patientsPerPage matches the original dashboard page size
const patientsPerPage = 10

type AdminService struct {
	patientRepo     *repository.PatientRepository
	doctorRepo      *repository.DoctorRepository
	appointmentRepo *repository.AppointmentRepository
	blacklistRepo   *repository.BlacklistRepository
	departmentRepo  *repository.DepartmentRepository
}

func NewAdminService(
	patientRepo *repository.PatientRepository,
	doctorRepo *repository.DoctorRepository,
	appointmentRepo *repository.AppointmentRepository,
	blacklistRepo *repository.BlacklistRepository,
	departmentRepo *repository.DepartmentRepository,
) *AdminService {
	return &AdminService{
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		blacklistRepo:   blacklistRepo,
		departmentRepo:  departmentRepo,
	}
}

// DashboardStats holds the four aggregate counts shown on the admin dashboard
type DashboardStats struct {
	Patients     int64 `json:"patients"`
	Doctors      int64 `json:"doctors"`
	Appointments int64 `json:"appointments"`
	Blacklisted  int64 `json:"blacklisted"`
}

// DashboardResponse is the admin dashboard payload: counts, one page of
// patients and the full department list
type DashboardResponse struct {
	Stats         DashboardStats      `json:"stats"`
	Patients      []models.Patient    `json:"patients"`
	Page          int                 `json:"page"`
	PerPage       int                 `json:"per_page"`
	TotalPatients int64               `json:"total_patients"`
	Departments   []models.Department `json:"departments"`
}

// Dashboard computes the aggregate counts and fetches the initial data set
func (s *AdminService) Dashboard(page int) (*DashboardResponse, error) {
	var stats DashboardStats
	var err error

	if stats.Patients, err = s.patientRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Doctors, err = s.doctorRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Appointments, err = s.appointmentRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Blacklisted, err = s.blacklistRepo.Count(); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	patients, total, err := s.patientRepo.List(page, patientsPerPage)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Stats:         stats,
		Patients:      patients,
		Page:          page,
		PerPage:       patientsPerPage,
		TotalPatients: total,
		Departments:   departments,
	}, nil
}
