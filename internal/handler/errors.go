package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is surfaced as a 500 with the error text.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrInvalidInput):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// parseID parses a numeric path parameter, responding with a 400 on failure.
// The boolean reports whether parsing succeeded.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
