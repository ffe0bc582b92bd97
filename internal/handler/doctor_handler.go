package handler

import (
	"net/http"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type CreateUpdateDoctorRequest struct {
	DoctorID        uint   `json:"doctor_id"`
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone" binding:"omitempty,max=20"`
	DepartmentID    uint   `json:"department_id"`
	Qualification   string `json:"qualification" binding:"omitempty,max=255"`
	ExperienceYears int    `json:"experience_years" binding:"omitempty,min=0"`
	Bio             string `json:"bio"`
}

type BlacklistRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

type CreateAvailabilityRequest struct {
	DoctorID      uint      `json:"doctor_id" binding:"required"`
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
	EndDatetime   time.Time `json:"end_datetime" binding:"required"`
	Comment       string    `json:"comment"`
}

// GetDoctor returns a doctor with user and department preloaded
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctorService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// CreateUpdateDoctor creates a doctor (with its user) or updates an existing
// one when doctor_id is present
func (h *DoctorHandler) CreateUpdateDoctor(c *gin.Context) {
	var req CreateUpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.DoctorID == 0 {
		if req.Email == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "Email is required")
			return
		}
		if req.DepartmentID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Department is required")
			return
		}
	}

	doctor, err := h.doctorService.CreateOrUpdate(service.CreateUpdateDoctorInput{
		DoctorID:        req.DoctorID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		DepartmentID:    req.DepartmentID,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Doctor created successfully"
	if req.DoctorID != 0 {
		message = "Doctor updated successfully"
	}
	utils.MessageDataResponse(c, message, doctor)
}

// DeleteDoctor hard-deletes a doctor and releases its department slot
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.doctorService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor deleted")
}

// BlacklistDoctor deactivates the doctor's user and records the blacklist entry
func (h *DoctorHandler) BlacklistDoctor(c *gin.Context) {
	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "doctor_id and reason are required")
		return
	}

	if err := h.doctorService.Blacklist(req.DoctorID, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor blacklisted successfully")
}

// CreateAvailability records a new availability slot for a doctor
func (h *DoctorHandler) CreateAvailability(c *gin.Context) {
	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	slot := &models.DoctorAvailability{
		DoctorID:      req.DoctorID,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Comment:       req.Comment,
	}
	if err := h.doctorService.AddAvailability(slot); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageDataResponse(c, "Availability slot created", slot)
}

// ListAvailability returns all slots for a doctor
func (h *DoctorHandler) ListAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	slots, err := h.doctorService.ListAvailability(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"slots": slots,
		"count": len(slots),
	})
}

// DeleteAvailability removes an availability slot
func (h *DoctorHandler) DeleteAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.doctorService.DeleteAvailability(id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Availability slot deleted")
}

// Dashboard returns the authenticated doctor's own appointments and open slots
func (h *DoctorHandler) Dashboard(c *gin.Context) {
	userID, _ := c.Get("userID")

	dashboard, err := h.doctorService.Dashboard(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, dashboard)
}
