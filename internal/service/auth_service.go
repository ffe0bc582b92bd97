package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/pkg/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	userRepo    *repository.UserRepository
	patientRepo *repository.PatientRepository
	doctorRepo  *repository.DoctorRepository
}

func NewAuthService(
	userRepo *repository.UserRepository,
	patientRepo *repository.PatientRepository,
	doctorRepo *repository.DoctorRepository,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Redirect     string       `json:"redirect"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// RegisterInput carries the fields accepted by general registration
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
	DOB      *time.Time
	Gender   string
	Role     models.Role
}

// RegisterPatientInput carries the user fields plus the patient-specific ones
type RegisterPatientInput struct {
	RegisterInput
	BloodGroup       string
	Address          string
	EmergencyContact string
}

// Login authenticates a user by email and password and returns tokens plus the
// role-specific redirect target. Dispatch uses the stored role column.
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredential
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Redirect:     user.Role.DashboardPath(),
		User:         newUserResponse(user),
	}, nil
}

// Register creates a new user account. A concurrent registration with the same
// email can slip past the existence check; the unique email index catches it.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	exists, err := s.userRepo.EmailExists(input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		DOB:          input.DOB,
		Gender:       input.Gender,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// RegisterPatient creates a user with role patient and its linked patient row
// in one transaction.
func (s *AuthService) RegisterPatient(input RegisterPatientInput) (*models.Patient, error) {
	exists, err := s.userRepo.EmailExists(input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		DOB:          input.DOB,
		Gender:       input.Gender,
		Role:         models.RolePatient,
		IsActive:     true,
	}
	patient := &models.Patient{
		BloodGroup:       input.BloodGroup,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
	}
	if err := s.patientRepo.CreateWithUser(user, patient); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}
	patient.User = *user

	return patient, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// ProfileResponse is the role-appropriate profile view for the caller
type ProfileResponse struct {
	User    UserResponse    `json:"user"`
	Doctor  *models.Doctor  `json:"doctor,omitempty"`
	Patient *models.Patient `json:"patient,omitempty"`
}

// GetProfile renders the profile for the caller identified by the session
// middleware. The identity always comes from validated claims, never from the
// request body.
func (s *AuthService) GetProfile(userID uint) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile := &ProfileResponse{User: newUserResponse(user)}

	switch user.Role {
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.GetByUserID(user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile.Doctor = doctor
	case models.RolePatient:
		patient, err := s.patientRepo.GetByUserID(user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile.Patient = patient
	}

	return profile, nil
}
