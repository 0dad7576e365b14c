package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/errors"
	"hotel-admin/utils"
)

// respondAppError maps the error taxonomy onto HTTP statuses:
// pre-flight validation → 400, backend not-found → 404, everything
// that touched the backend or the network → 502 with the backend's
// detail when it gave one.
func respondAppError(c *gin.Context, err error, fallback string) {
	status := http.StatusBadGateway
	if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeNotFound {
		status = http.StatusNotFound
	}
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	utils.JSONError(c, status, errors.UserMessage(err, fallback))
}
