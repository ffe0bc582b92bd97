package handler

import (
	"fmt"
	"net/http"
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPatientNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@x.com", models.RoleAdmin)

	w := env.request(t, http.MethodGet, "/api/patients/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
	assert.NotEmpty(t, envelope["message"])
	assert.NotContains(t, envelope, "data")
}

func TestPatientCreateDeleteGet(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@x.com", models.RoleAdmin)

	w := env.request(t, http.MethodPost, "/api/patients", token, map[string]any{
		"full_name":   "New Patient",
		"email":       "np@x.com",
		"blood_group": "AB-",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var patient models.Patient
	require.NoError(t, env.db.Where("blood_group = ?", "AB-").First(&patient).Error)

	// The backing user carries the patient role and a placeholder credential
	var user models.User
	require.NoError(t, env.db.First(&user, patient.UserID).Error)
	assert.Equal(t, models.RolePatient, user.Role)
	assert.NotEmpty(t, user.PasswordHash)

	path := fmt.Sprintf("/api/patients/%d", patient.ID)
	w = env.request(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "patient@x.com", models.RolePatient)

	w := env.request(t, http.MethodGet, "/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Access denied", envelope["message"])

	w = env.request(t, http.MethodGet, "/api/patients/1", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "admin@x.com", models.RoleAdmin)

	w := env.request(t, http.MethodGet, "/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Contains(t, data, "stats")
	assert.Contains(t, data, "patients")
}
