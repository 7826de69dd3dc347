//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter_RegistersRouteTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	handler.NewRouter(engine, config.NewTestConfig(), handler.Handlers{
		Rooms:        api.NewRoomHandler(nil, nil, nil, nil),
		Reservations: api.NewReservationHandler(nil, nil),
		Subscribers:  api.NewSubscriberHandler(nil, nil),
		Guests:       api.NewGuestHandler(nil, nil),
		Analytics:    api.NewAnalyticsHandler(nil, nil),
	})

	var got []string
	for _, r := range engine.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}

	want := []string{
		http.MethodGet + " /health",
		http.MethodPost + " /api/rooms",
		http.MethodGet + " /api/rooms",
		http.MethodGet + " /api/rooms/:id",
		http.MethodGet + " /api/rooms/:id/availability",
		http.MethodGet + " /api/rooms/:id/similar",
		http.MethodGet + " /api/rooms/:id/reservations",
		http.MethodGet + " /api/availability",
		http.MethodGet + " /api/occupancy",
		http.MethodGet + " /api/insights",
		http.MethodGet + " /api/promotions",
		http.MethodPost + " /api/promotions/launch",
		http.MethodPost + " /api/reservations",
		http.MethodGet + " /api/reservations",
		http.MethodGet + " /api/reservations/:id",
		http.MethodDelete + " /api/reservations/:id",
		http.MethodPost + " /api/subscribers",
		http.MethodGet + " /api/subscribers",
		http.MethodPost + " /api/subscribers/unsubscribe",
		http.MethodGet + " /api/guests/:guest/loyalty",
		http.MethodGet + " /api/guests/:guest/recommendations",
	}
	assert.ElementsMatch(t, want, got)
}
