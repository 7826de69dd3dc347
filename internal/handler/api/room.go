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

type RoomHandler struct {
	cmds         commands.RoomCommands
	rooms        queries.RoomQueries
	availability queries.AvailabilityQueries
	recs         queries.RecommendationQueries
}

func NewRoomHandler(
	cmds commands.RoomCommands,
	rooms queries.RoomQueries,
	availability queries.AvailabilityQueries,
	recs queries.RecommendationQueries,
) *RoomHandler {
	return &RoomHandler{cmds: cmds, rooms: rooms, availability: availability, recs: recs}
}

// @Summary Create room
// @Description Register a room with its nightly price
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.rooms.GetByID(c.Request.Context(), result.RoomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	res, err := resdto.FromRoomView(view)
	respondJSON(c, http.StatusCreated, res, err)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.rooms.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	view, err := h.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Check room availability
// @Description A room is available when no confirmed reservation overlaps [check_in, check_out)
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.availability.IsAvailable(c.Request.Context(), id, q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List available rooms
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *RoomHandler) ListAvailable(c *gin.Context) {
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.availability.ListAvailableRooms(c.Request.Context(), q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Rooms priced like this one
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param k query int false "Number of rooms (default 3, max 20)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/similar [get]
func (h *RoomHandler) Similar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var q reqdto.RecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.recs.SimilarRooms(c.Request.Context(), id, q.Count())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	respondJSON(c, http.StatusOK, res, err)
}
