package handlers

import (
	"errors"
	"net/http"

	"skillbridge/models"
	"skillbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) (int, string) {
	var (
		verr     *models.ValidationError
		conflict *models.SlotConflictError
		notFound *models.NotFoundError
		badStep  *models.InvalidTransitionError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "Invalid request"
	case errors.As(err, &conflict):
		return http.StatusConflict, "Slot already booked"
	case errors.As(err, &notFound):
		return http.StatusNotFound, "Not found"
	case errors.As(err, &badStep):
		return http.StatusConflict, "Booking step not allowed"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

// respondError writes err as an ErrorResponse. Internal errors are logged and
// their details withheld.
func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, status, message, "An unexpected error occurred. Please try again later.")
		return
	}
	getLogger(c).Debug("Request rejected", zap.Int("status", status), zap.Error(err))
	utils.JSONError(c, status, message, err.Error())
}

func bindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
}
