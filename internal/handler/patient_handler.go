package handler

import (
	"net/http"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

type CreateUpdatePatientRequest struct {
	PatientID        uint   `json:"patient_id"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"omitempty,max=20"`
	BloodGroup       string `json:"blood_group" binding:"omitempty,max=10"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact" binding:"omitempty,max=20"`
}

// GetPatient returns the joined patient view or the not-found envelope
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	patient, err := h.patientService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// CreateUpdatePatient creates a patient (with its user) or updates an existing
// one when patient_id is present
func (h *PatientHandler) CreateUpdatePatient(c *gin.Context) {
	var req CreateUpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Creation needs an email for the new user row
	if req.PatientID == 0 && req.Email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email is required")
		return
	}

	patient, err := h.patientService.CreateOrUpdate(service.CreateUpdatePatientInput{
		PatientID:        req.PatientID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		BloodGroup:       req.BloodGroup,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Patient created successfully"
	if req.PatientID != 0 {
		message = "Patient updated successfully"
	}
	utils.MessageDataResponse(c, message, patient)
}

// DeletePatient hard-deletes a patient
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.patientService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Patient deleted")
}

// Dashboard returns the authenticated patient's own appointments and history
func (h *PatientHandler) Dashboard(c *gin.Context) {
	userID, _ := c.Get("userID")

	dashboard, err := h.patientService.Dashboard(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, dashboard)
}
