package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	cmds commands.PromotionCommands
	q    queries.AnalyticsQueries
}

func NewAnalyticsHandler(cmds commands.PromotionCommands, q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{cmds: cmds, q: q}
}

// @Summary Occupancy for one night
// @Description Share of rooms holding a confirmed stay on the night of date
// @Tags analytics
// @Produce json
// @Param date query string false "Night as YYYY-MM-DD (default today)"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Router /occupancy [get]
func (h *AnalyticsHandler) Occupancy(c *gin.Context) {
	var q reqdto.OccupancyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.q.Occupancy(c.Request.Context(), q.Date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyView(view))
}

// @Summary Booking insights
// @Description Confirmed reservations by check-in month and by room type
// @Tags analytics
// @Produce json
// @Success 200 {object} resdto.InsightsResponse
// @Router /insights [get]
func (h *AnalyticsHandler) Insights(c *gin.Context) {
	view, err := h.q.Insights(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInsightsView(view))
}

// @Summary List promotions
// @Tags analytics
// @Produce json
// @Success 200 {array} resdto.PromotionResponse
// @Router /promotions [get]
func (h *AnalyticsHandler) Promotions(c *gin.Context) {
	views, err := h.q.Promotions(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}

// @Summary Launch a low occupancy promotion
// @Description Starts a 20% discount for the night when fewer than half of the rooms are booked.
// @Description Responds 201 when a promotion was launched and 200 when occupancy did not call for one.
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body reqdto.LaunchPromotionRequest false "Target night"
// @Success 200 {object} resdto.LaunchPromotionResponse
// @Success 201 {object} resdto.LaunchPromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promotions/launch [post]
func (h *AnalyticsHandler) LaunchPromotion(c *gin.Context) {
	var req reqdto.LaunchPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.LaunchLowOccupancy(c.Request.Context(), req.Date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	status := http.StatusOK
	if result.Launched {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromLaunchPromotionResult(result))
}
