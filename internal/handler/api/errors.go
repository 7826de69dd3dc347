package api

import (
	"errors"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters only for errors carrying several marks; the first match wins.
var useCaseErrors = []errorMapping{
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrSubscriberNotFound, http.StatusNotFound, "Subscriber not found"},
	{errs.ErrRoomUnavailable, http.StatusConflict, "Room is not available for the requested dates"},
	{errs.ErrDuplicateRoomNumber, http.StatusConflict, "Room number already exists"},
	{errs.ErrAlreadySubscribed, http.StatusConflict, "Email is already subscribed"},
	{errs.ErrPromotionAlreadyActive, http.StatusConflict, "A promotion is already running for that date"},
	{errs.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range: check_in and check_out must be YYYY-MM-DD with check_in before check_out"},
	{errs.ErrInvalidGuest, http.StatusBadRequest, "Guest identity is required"},
	{errs.ErrInvalidEmail, http.StatusBadRequest, "Invalid email address"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrInvalidDay, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
	{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range useCaseErrors {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// respondJSON writes body unless building it failed.
func respondJSON[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(status, body)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id format", nil)
		return uuid.Nil, false
	}
	return id, true
}
