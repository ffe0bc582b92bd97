package handler

import (
	"net/http"
	"time"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

type CreateUpdateHistoryRequest struct {
	HistoryID     uint   `json:"history_id"`
	PatientID     uint   `json:"patient_id"`
	HospitalName  string `json:"hospital_name" binding:"required"`
	DoctorName    string `json:"doctor_name" binding:"omitempty,max=255"`
	Department    string `json:"department" binding:"omitempty,max=255"`
	Diagnosis     string `json:"diagnosis"`
	Prescription  string `json:"prescription"`
	Notes         string `json:"notes"`
	TreatmentDate string `json:"treatment_date" binding:"required,datetime=2006-01-02"`
	DocumentsURL  string `json:"documents_url" binding:"omitempty,max=500,url"`
}

// CreateUpdateHistory records or updates an external history entry
func (h *HistoryHandler) CreateUpdateHistory(c *gin.Context) {
	var req CreateUpdateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.HistoryID == 0 && req.PatientID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "patient_id is required")
		return
	}

	treatmentDate, err := time.Parse("2006-01-02", req.TreatmentDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid treatment_date")
		return
	}

	record, err := h.historyService.CreateOrUpdate(service.CreateUpdateHistoryInput{
		HistoryID:     req.HistoryID,
		PatientID:     req.PatientID,
		HospitalName:  req.HospitalName,
		DoctorName:    req.DoctorName,
		Department:    req.Department,
		Diagnosis:     req.Diagnosis,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
		TreatmentDate: treatmentDate,
		DocumentsURL:  req.DocumentsURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "History record created successfully"
	if req.HistoryID != 0 {
		message = "History record updated successfully"
	}
	utils.MessageDataResponse(c, message, record)
}

// ListPatientHistory returns a patient's external history records
func (h *HistoryHandler) ListPatientHistory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	records, err := h.historyService.ListByPatient(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"history": records,
		"count":   len(records),
	})
}

// DeleteHistory removes a history record
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.historyService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "History record deleted")
}
