package repository

import (
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDoctorCreateWithUserBumpsDepartmentCounter(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepo(db)
	department := seedDepartment(t, db, "Cardiology")

	user := &models.User{
		Email:        "doc@x.com",
		PasswordHash: "x",
		FullName:     "Dr. A",
		Role:         models.RoleDoctor,
		IsActive:     true,
	}
	doctor := &models.Doctor{
		DepartmentID:    department.ID,
		Qualification:   "MBBS",
		ExperienceYears: 5,
	}
	require.NoError(t, repo.CreateWithUser(user, doctor))
	assert.Equal(t, user.ID, doctor.UserID)

	var got models.Department
	require.NoError(t, db.First(&got, department.ID).Error)
	assert.Equal(t, 1, got.DoctorsRegistered)
}

func TestDoctorDeleteReleasesDepartmentCounter(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepo(db)
	department := seedDepartment(t, db, "Cardiology")

	user := seedUser(t, db, "doc@x.com", models.RoleDoctor)
	doctor := &models.Doctor{UserID: user.ID, DepartmentID: department.ID}
	require.NoError(t, db.Create(doctor).Error)
	require.NoError(t, db.Model(&models.Department{}).
		Where("id = ?", department.ID).
		Update("doctors_registered", 1).Error)

	require.NoError(t, repo.Delete(doctor.ID))

	var got models.Department
	require.NoError(t, db.First(&got, department.ID).Error)
	assert.Equal(t, 0, got.DoctorsRegistered)

	_, err := repo.GetByID(doctor.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDoctorFindOwnerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepo(db)
	department := seedDepartment(t, db, "Neurology")

	user := seedUser(t, db, "owner@x.com", models.RoleDoctor)
	doctor := &models.Doctor{UserID: user.ID, DepartmentID: department.ID}
	require.NoError(t, db.Create(doctor).Error)

	owner, err := repo.FindOwnerUser(doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, owner.ID)
	assert.Equal(t, "owner@x.com", owner.Email)

	_, err = repo.FindOwnerUser(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
