package service

import (
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	input := RegisterInput{
		Email:    "dup@x.com",
		Password: "secret",
		FullName: "First",
		Role:     models.RolePatient,
	}
	_, err := svc.Register(input)
	require.NoError(t, err)

	input.FullName = "Second"
	_, err = svc.Register(input)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register(RegisterInput{
		Email:    "r@x.com",
		Password: "secret",
		Role:     models.Role("superuser"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterPatientThenLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	patient, err := svc.RegisterPatient(RegisterPatientInput{
		RegisterInput: RegisterInput{
			Email:    "a@x.com",
			Password: "pw",
			FullName: "A",
		},
		BloodGroup: "O+",
	})
	require.NoError(t, err)
	assert.NotZero(t, patient.ID)
	assert.Equal(t, models.RolePatient, patient.User.Role)

	// Exactly one user row and one patient row, linked
	var userCount, patientCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Patient{}).Count(&patientCount).Error)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), patientCount)
	assert.Equal(t, patient.User.ID, patient.UserID)

	resp, err := svc.Login("a@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "/patient/dashboard", resp.Redirect)
	assert.Equal(t, "a@x.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register(RegisterInput{
		Email:    "a@x.com",
		Password: "right",
		Role:     models.RoleDoctor,
	})
	require.NoError(t, err)

	_, err = svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Login("nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefreshAndLogout(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register(RegisterInput{
		Email:    "a@x.com",
		Password: "pw",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := svc.Login("a@x.com", "pw")
	require.NoError(t, err)

	access, err := svc.RefreshAccessToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	require.NoError(t, svc.Logout(resp.RefreshToken))

	_, err = svc.RefreshAccessToken(resp.RefreshToken)
	assert.Error(t, err)
}

func TestGetProfileIncludesPatientView(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	patient, err := svc.RegisterPatient(RegisterPatientInput{
		RegisterInput: RegisterInput{
			Email:    "p@x.com",
			Password: "pw",
			FullName: "P",
		},
		Address: "12 High St",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(patient.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, profile.User.Role)
	require.NotNil(t, profile.Patient)
	assert.Equal(t, "12 High St", profile.Patient.Address)
	assert.Nil(t, profile.Doctor)

	_, err = svc.GetProfile(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
