package handler

import (
	"net/http"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// ListDepartments returns all departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"departments": departments,
		"count":       len(departments),
	})
}

// CreateDepartment adds a department
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.departmentService.Create(department); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageDataResponse(c, "Department created successfully", department)
}
