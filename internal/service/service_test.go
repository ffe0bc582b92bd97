package service

import (
	"testing"
	"time"

	"hospital-management-backend/internal/database"
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/pkg/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthService(
		repository.NewUserRepo(db),
		repository.NewPatientRepo(db),
		repository.NewDoctorRepo(db),
	)
}

func seedDoctorWithUser(t *testing.T, db *gorm.DB, email string) *models.Doctor {
	t.Helper()

	department := &models.Department{Name: "General " + email}
	require.NoError(t, db.Create(department).Error)

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Dr. Test",
		Role:         models.RoleDoctor,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	doctor := &models.Doctor{UserID: user.ID, DepartmentID: department.ID}
	require.NoError(t, db.Create(doctor).Error)
	return doctor
}

func seedPatientWithUser(t *testing.T, db *gorm.DB, email string) *models.Patient {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Patient Test",
		Role:         models.RolePatient,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	patient := &models.Patient{UserID: user.ID}
	require.NoError(t, db.Create(patient).Error)
	return patient
}
