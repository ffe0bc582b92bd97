package handler

import (
	"net/http"
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctorAndBlacklist(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@x.com", models.RoleAdmin)

	department := &models.Department{Name: "Cardiology"}
	require.NoError(t, env.db.Create(department).Error)

	w := env.request(t, http.MethodPost, "/api/doctors", token, map[string]any{
		"full_name":        "Dr. New",
		"email":            "drnew@x.com",
		"department_id":    department.ID,
		"qualification":    "MBBS",
		"experience_years": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var doctor models.Doctor
	require.NoError(t, env.db.Where("department_id = ?", department.ID).First(&doctor).Error)

	var dept models.Department
	require.NoError(t, env.db.First(&dept, department.ID).Error)
	assert.Equal(t, 1, dept.DoctorsRegistered)

	w = env.request(t, http.MethodPost, "/api/blacklist", token, map[string]any{
		"doctor_id": doctor.ID,
		"reason":    "repeated no-shows",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, env.db.First(&user, doctor.UserID).Error)
	assert.False(t, user.IsActive)
	assert.True(t, user.IsBlacklisted)

	var entries []models.Blacklist
	require.NoError(t, env.db.Where("user_id = ?", doctor.UserID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "repeated no-shows", entries[0].Reason)
}

func TestBlacklistUnknownDoctor(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@x.com", models.RoleAdmin)

	w := env.request(t, http.MethodPost, "/api/blacklist", token, map[string]any{
		"doctor_id": 404,
		"reason":    "unknown",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
}

func TestCreateDoctorMissingDepartment(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@x.com", models.RoleAdmin)

	w := env.request(t, http.MethodPost, "/api/doctors", token, map[string]any{
		"full_name":     "Dr. Nowhere",
		"email":         "nowhere@x.com",
		"department_id": 42,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
