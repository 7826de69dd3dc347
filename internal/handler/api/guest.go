package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	loyalty queries.LoyaltyQueries
	recs    queries.RecommendationQueries
}

func NewGuestHandler(loyalty queries.LoyaltyQueries, recs queries.RecommendationQueries) *GuestHandler {
	return &GuestHandler{loyalty: loyalty, recs: recs}
}

// @Summary Loyalty balance and promotion
// @Tags guests
// @Produce json
// @Param guest path string true "Guest identity"
// @Success 200 {object} resdto.LoyaltyResponse
// @Failure 400 {object} httperr.Response
// @Router /guests/{guest}/loyalty [get]
func (h *GuestHandler) Loyalty(c *gin.Context) {
	view, err := h.loyalty.GetAccount(c.Request.Context(), c.Param("guest"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromLoyaltyAccountView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Recommended rooms
// @Description Rooms priced closest to the guest's previous stays. With check_in and check_out only rooms free for that stay are returned.
// @Tags guests
// @Produce json
// @Param guest path string true "Guest identity"
// @Param k query int false "Number of rooms (default 3, max 20)"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /guests/{guest}/recommendations [get]
func (h *GuestHandler) Recommendations(c *gin.Context) {
	var q reqdto.RecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.recs.ForGuest(c.Request.Context(), c.Param("guest"), q.CheckIn, q.CheckOut, q.Count())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	respondJSON(c, http.StatusOK, res, err)
}
