package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-management-backend/internal/config"
	"hospital-management-backend/internal/database"
	"hospital-management-backend/internal/handler"
	"hospital-management-backend/internal/middleware"
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	availabilityRepo := repository.NewAvailabilityRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	blacklistRepo := repository.NewBlacklistRepo(db)
	historyRepo := repository.NewHistoryRepo(db)

	// Ensure a bootstrap admin account exists
	adminHash, err := utils.HashPassword(getEnvOr("ADMIN_PASSWORD", "admin123"))
	if err != nil {
		log.Fatalf("Failed to hash bootstrap admin password: %v", err)
	}
	if err := userRepo.EnsureDefaultAdmin(getEnvOr("ADMIN_EMAIL", "admin@hospital.local"), adminHash); err != nil {
		log.Printf("Warning: Failed to ensure admin account exists: %v", err)
	}

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, patientRepo, doctorRepo)
	adminService := service.NewAdminService(patientRepo, doctorRepo, appointmentRepo, blacklistRepo, departmentRepo)
	patientService := service.NewPatientService(patientRepo, appointmentRepo, historyRepo)
	doctorService := service.NewDoctorService(doctorRepo, departmentRepo, blacklistRepo, availabilityRepo, appointmentRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, availabilityRepo, treatmentRepo, doctorRepo, patientRepo)
	historyService := service.NewHistoryService(historyRepo, patientRepo)
	departmentService := service.NewDepartmentService(departmentRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	historyHandler := handler.NewHistoryHandler(historyService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-management-backend",
		})
	})

	// Auth routes (public)
	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)
	r.POST("/register/patient", authHandler.RegisterPatient)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/register/patient", authHandler.RegisterPatient)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Profile (any authenticated role)
	r.GET("/profile", middleware.AuthMiddleware(), authHandler.Profile)

	// Role dashboards
	r.GET("/admin/dashboard", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin), adminHandler.Dashboard)
	r.GET("/doctor/dashboard", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleDoctor), doctorHandler.Dashboard)
	r.GET("/patient/dashboard", middleware.AuthMiddleware(), middleware.RequireRole(models.RolePatient), patientHandler.Dashboard)

	// API routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/patients/:id", patientHandler.GetPatient)
			admin.POST("/patients", patientHandler.CreateUpdatePatient)
			admin.DELETE("/patients/:id", patientHandler.DeletePatient)

			admin.GET("/doctors/:id", doctorHandler.GetDoctor)
			admin.POST("/doctors", doctorHandler.CreateUpdateDoctor)
			admin.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)

			admin.POST("/blacklist", doctorHandler.BlacklistDoctor)

			admin.POST("/appointments", appointmentHandler.CreateUpdateAppointment)
			admin.GET("/appointments/:id", appointmentHandler.GetAppointment)
			admin.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

			admin.POST("/history", historyHandler.CreateUpdateHistory)
			admin.DELETE("/history/:id", historyHandler.DeleteHistory)
			admin.GET("/patients/:id/history", historyHandler.ListPatientHistory)

			admin.POST("/departments", departmentHandler.CreateDepartment)
		}

		// Shared reads and doctor-facing writes
		api.GET("/departments", departmentHandler.ListDepartments)
		api.GET("/doctors/:id/availability", doctorHandler.ListAvailability)

		staff := api.Group("")
		staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleDoctor))
		{
			staff.POST("/availability", doctorHandler.CreateAvailability)
			staff.DELETE("/availability/:id", doctorHandler.DeleteAvailability)
			staff.POST("/treatments", appointmentHandler.CreateUpdateTreatment)
			staff.GET("/appointments/:id/treatment", appointmentHandler.GetTreatment)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}

func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
