package handler

import (
	"net/http"
	"time"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type CreateUpdateAppointmentRequest struct {
	AppointmentID    uint      `json:"appointment_id"`
	DoctorID         uint      `json:"doctor_id"`
	PatientID        uint      `json:"patient_id"`
	AppointmentStart time.Time `json:"appointment_start"`
	AppointmentEnd   time.Time `json:"appointment_end"`
	Status           string    `json:"status" binding:"omitempty,oneof=Booked Completed Cancelled"`
	Reason           string    `json:"reason"`
	SlotID           uint      `json:"slot_id"`
}

type CreateUpdateTreatmentRequest struct {
	TreatmentID   uint   `json:"treatment_id"`
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Diagnosis     string `json:"diagnosis"`
	Prescription  string `json:"prescription"`
	Notes         string `json:"notes"`
}

// GetAppointment returns an appointment with its relations preloaded
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// CreateUpdateAppointment creates an appointment or updates an existing one
// when appointment_id is present
func (h *AppointmentHandler) CreateUpdateAppointment(c *gin.Context) {
	var req CreateUpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.AppointmentID == 0 {
		if req.DoctorID == 0 || req.PatientID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "doctor_id and patient_id are required")
			return
		}
		if req.AppointmentStart.IsZero() || req.AppointmentEnd.IsZero() {
			utils.ErrorResponse(c, http.StatusBadRequest, "appointment_start and appointment_end are required")
			return
		}
	}

	appointment, err := h.appointmentService.CreateOrUpdate(service.CreateUpdateAppointmentInput{
		AppointmentID: req.AppointmentID,
		DoctorID:      req.DoctorID,
		PatientID:     req.PatientID,
		Start:         req.AppointmentStart,
		End:           req.AppointmentEnd,
		Status:        req.Status,
		Reason:        req.Reason,
		SlotID:        req.SlotID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Appointment created successfully"
	if req.AppointmentID != 0 {
		message = "Appointment updated successfully"
	}
	utils.MessageDataResponse(c, message, appointment)
}

// DeleteAppointment hard-deletes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.appointmentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Appointment deleted")
}

// CreateUpdateTreatment records the single treatment for an appointment or
// updates it when treatment_id is present
func (h *AppointmentHandler) CreateUpdateTreatment(c *gin.Context) {
	var req CreateUpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	treatment, err := h.appointmentService.RecordTreatment(service.CreateUpdateTreatmentInput{
		TreatmentID:   req.TreatmentID,
		AppointmentID: req.AppointmentID,
		Diagnosis:     req.Diagnosis,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Treatment recorded successfully"
	if req.TreatmentID != 0 {
		message = "Treatment updated successfully"
	}
	utils.MessageDataResponse(c, message, treatment)
}

// GetTreatment returns the treatment recorded for an appointment
func (h *AppointmentHandler) GetTreatment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	treatment, err := h.appointmentService.GetTreatment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, treatment)
}
