package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.BookingCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Book a room
// @Description Reserve a room for [check_in, check_out). Stays may start on the day another ends.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookRoomRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	var req reqdto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Book(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBookingResult(result)
	respondJSON(c, http.StatusCreated, res, err)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary List a guest's reservations
// @Description Newest first, paginated with an opaque cursor
// @Tags reservations
// @Produce json
// @Param guest query string true "Guest identity"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListByGuest(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.ListByGuest(c.Request.Context(), q.Guest, q.Cursor, q.PageLimit())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationPage(page)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary List a room's reservations
// @Description Every reservation of the room, canceled ones included, ordered by check-in
// @Tags reservations
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/reservations [get]
func (h *ReservationHandler) ListByRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	views, err := h.q.ListByRoom(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Cancel reservation
// @Description Canceling twice reports not found
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
