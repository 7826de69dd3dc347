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

type SubscriberHandler struct {
	cmds commands.SubscriberCommands
	q    queries.SubscriberQueries
}

func NewSubscriberHandler(cmds commands.SubscriberCommands, q queries.SubscriberQueries) *SubscriberHandler {
	return &SubscriberHandler{cmds: cmds, q: q}
}

// @Summary Subscribe to the newsletter
// @Tags subscribers
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscribe request"
// @Success 201 {object} resdto.SubscribeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /subscribers [post]
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubscribeResponse{ID: result.SubscriberID, Email: result.Email})
}

// @Summary Unsubscribe
// @Tags subscribers
// @Accept json
// @Param request body reqdto.SubscribeRequest true "Unsubscribe request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscribers/unsubscribe [post]
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List subscribers
// @Tags subscribers
// @Produce json
// @Success 200 {array} resdto.SubscriberResponse
// @Router /subscribers [get]
func (h *SubscriberHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromSubscriberViews(views)
	respondJSON(c, http.StatusOK, res, err)
}
