package handler

import (
	"net/http"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	DOB      string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Role     string `json:"role" binding:"required,oneof=admin doctor patient"`
}

type RegisterPatientRequest struct {
	Username         string `json:"username" binding:"omitempty,min=3,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	FullName         string `json:"full_name" binding:"required"`
	Phone            string `json:"phone" binding:"omitempty,max=20"`
	DOB              string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender" binding:"omitempty,oneof=male female other"`
	BloodGroup       string `json:"blood_group" binding:"omitempty,max=10"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact" binding:"omitempty,max=20"`
}

func parseDOB(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Login authenticates by email and password and returns tokens plus the
// role-specific redirect target
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// Refresh token travels as an HttpOnly cookie only
	c.SetCookie(
		"refresh_token",
		response.RefreshToken,
		int(7*24*time.Hour.Seconds()),
		"/",
		"",
		false,
		true,
	)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"redirect":     response.Redirect,
		"user":         response.User,
	})
}

// Register handles general user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		DOB:      parseDOB(req.DOB),
		Gender:   req.Gender,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MessageDataResponse(c, "Registration successful. Please log in.", gin.H{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
}

// RegisterPatient handles patient-specific registration: the user and its
// linked patient row are created together
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.authService.RegisterPatient(service.RegisterPatientInput{
		RegisterInput: service.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
			DOB:      parseDOB(req.DOB),
			Gender:   req.Gender,
			Role:     models.RolePatient,
		},
		BloodGroup:       req.BloodGroup,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MessageDataResponse(c, "Patient registration successful. Please log in.", gin.H{
		"patient_id": patient.ID,
		"user_id":    patient.UserID,
		"email":      patient.User.Email,
	})
}

// Refresh generates a new access token from the refresh token cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	utils.MessageResponse(c, "Logged out successfully")
}

// Profile renders the role-appropriate profile for the authenticated caller
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, _ := c.Get("userID")

	profile, err := h.authService.GetProfile(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}
