package repository

import (
	"fmt"
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPatientCreateWithUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepo(db)

	user := &models.User{
		Email:        "a@x.com",
		PasswordHash: "x",
		FullName:     "A",
		Role:         models.RolePatient,
		IsActive:     true,
	}
	patient := &models.Patient{BloodGroup: "O+"}

	require.NoError(t, repo.CreateWithUser(user, patient))

	// Exactly one user and one patient, linked by identifier
	var userCount, patientCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Patient{}).Count(&patientCount).Error)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), patientCount)
	assert.Equal(t, user.ID, patient.UserID)

	got, err := repo.GetByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.User.Email)
	assert.Equal(t, "O+", got.BloodGroup)
}

func TestPatientListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepo(db)

	for i := 0; i < 12; i++ {
		user := seedUser(t, db, fmt.Sprintf("p%d@x.com", i), models.RolePatient)
		require.NoError(t, db.Create(&models.Patient{UserID: user.ID}).Error)
	}

	page1, total, err := repo.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page1, 10)

	page2, _, err := repo.List(2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestPatientListSkipsNonPatientUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepo(db)

	admin := seedUser(t, db, "admin@x.com", models.RoleAdmin)
	require.NoError(t, db.Create(&models.Patient{UserID: admin.ID}).Error)

	patientUser := seedUser(t, db, "p@x.com", models.RolePatient)
	require.NoError(t, db.Create(&models.Patient{UserID: patientUser.ID}).Error)

	patients, total, err := repo.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, patients, 1)
	assert.Equal(t, patientUser.ID, patients[0].UserID)
}

func TestPatientDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepo(db)

	err := repo.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPatientDeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepo(db)

	user := seedUser(t, db, "del@x.com", models.RolePatient)
	patient := &models.Patient{UserID: user.ID}
	require.NoError(t, db.Create(patient).Error)

	require.NoError(t, repo.Delete(patient.ID))

	_, err := repo.GetByID(patient.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
