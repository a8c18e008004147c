package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cargodeploy-backend/internal/auth"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrQuotaExceeded), errors.Is(err, apperrors.ErrInvalidPaginationParams):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsInvalidTransition(err):
		return http.StatusConflict
	case apperrors.IsTriggerError(err):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrInstallationMissing):
		return http.StatusPreconditionFailed
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err with the status it maps to. Unexpected errors are logged
// and hidden from the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithField("path", c.FullPath()).Errorf("Request failed: %v", err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// ownerFromContext returns the caller set by the auth middleware
func ownerFromContext(c *gin.Context) (service.Owner, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return service.Owner{}, false
	}
	email, _ := auth.GetUserEmail(c)
	return service.Owner{ExternalID: id, Email: email}, true
}

func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size, falling back to defaults on bad input
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
