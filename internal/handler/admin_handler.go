package handler

import (
	"strconv"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Dashboard returns the admin landing payload: entity counts, one page of
// patients (10 per page, ?page=N) and the department list
func (h *AdminHandler) Dashboard(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	dashboard, err := h.adminService.Dashboard(page)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, dashboard)
}
