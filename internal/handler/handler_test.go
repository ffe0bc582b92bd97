package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-backend/internal/database"
	"hospital-management-backend/internal/middleware"
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	availabilityRepo := repository.NewAvailabilityRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	blacklistRepo := repository.NewBlacklistRepo(db)
	historyRepo := repository.NewHistoryRepo(db)

	authHandler := NewAuthHandler(service.NewAuthService(userRepo, patientRepo, doctorRepo))
	adminHandler := NewAdminHandler(service.NewAdminService(patientRepo, doctorRepo, appointmentRepo, blacklistRepo, departmentRepo))
	patientHandler := NewPatientHandler(service.NewPatientService(patientRepo, appointmentRepo, historyRepo))
	doctorHandler := NewDoctorHandler(service.NewDoctorService(doctorRepo, departmentRepo, blacklistRepo, availabilityRepo, appointmentRepo))
	appointmentHandler := NewAppointmentHandler(service.NewAppointmentService(appointmentRepo, availabilityRepo, treatmentRepo, doctorRepo, patientRepo))

	r := gin.New()
	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)
	r.POST("/register/patient", authHandler.RegisterPatient)
	r.POST("/auth/refresh", authHandler.Refresh)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/profile", middleware.AuthMiddleware(), authHandler.Profile)
	r.GET("/admin/dashboard", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin), adminHandler.Dashboard)

	api := r.Group("/api", middleware.AuthMiddleware())
	admin := api.Group("", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/patients/:id", patientHandler.GetPatient)
	admin.POST("/patients", patientHandler.CreateUpdatePatient)
	admin.DELETE("/patients/:id", patientHandler.DeletePatient)
	admin.POST("/doctors", doctorHandler.CreateUpdateDoctor)
	admin.POST("/blacklist", doctorHandler.BlacklistDoctor)
	admin.POST("/appointments", appointmentHandler.CreateUpdateAppointment)

	return &testEnv{db: db, router: r}
}

// tokenFor mints an access token for a user row created directly in the database
func (e *testEnv) tokenFor(t *testing.T, email string, role models.Role) string {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test " + string(role),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(user).Error)

	token, err := utils.GenerateAccessToken(user.ID, role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}
