//go:build e2e

package booking_test

import (
	"net/http"

	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const (
	occupancyURL       = "/api/occupancy"
	insightsURL        = "/api/insights"
	promotionsURL      = "/api/promotions"
	launchPromotionURL = "/api/promotions/launch"
)

// =============================================================================
// TestListByRoom - every reservation of a room, ordered by check-in
// =============================================================================

func (s *BookingSuite) TestListByRoom() {
	s.Run("Normal case: canceled stays are kept in check-in order", func() {
		t := s.T()
		roomID := s.createRoom(t, 601, 100)

		_, late := s.book(t, roomID, "gina", "2025-08-10", "2025-08-12")
		_, early := s.book(t, roomID, "hank", "2025-08-01", "2025-08-03")
		require.NotNil(t, late)
		require.NotNil(t, early)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+early.ID.String(), nil)
		httptest.AssertNoContent(t, w)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+roomID.String()+"/reservations", nil)
		var body []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body, 2)
		require.Equal(t, early.ID, body[0].ID)
		require.Equal(t, "canceled", body[0].Status)
		require.Equal(t, late.ID, body[1].ID)
	})
}

// =============================================================================
// TestOccupancyAndPromotions - low occupancy launches one discount per night
// =============================================================================

func (s *BookingSuite) TestOccupancyAndPromotions() {
	s.Run("Normal case: below half launches once", func() {
		t := s.T()
		a := s.createRoom(t, 701, 100)
		s.createRoom(t, 702, 100)
		s.createRoom(t, 703, 100)
		code, _ := s.book(t, a, "ivan", "2025-09-01", "2025-09-03")
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, occupancyURL+"?date=2025-09-02", nil)
		var occ response.OccupancyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &occ)
		require.Equal(t, 3, occ.TotalRooms)
		require.Equal(t, 1, occ.OccupiedRooms)
		require.True(t, occ.PromotionSuggested)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, launchPromotionURL, request.LaunchPromotionRequest{Date: "2025-09-02"})
		var launched response.LaunchPromotionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &launched)
		require.True(t, launched.Launched)
		require.Equal(t, 20, launched.DiscountPercent)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, launchPromotionURL, request.LaunchPromotionRequest{Date: "2025-09-02"})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already running")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil)
		var promos []response.PromotionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &promos)
		require.Len(t, promos, 1)
		require.Equal(t, "2025-09-02", promos[0].Date)
		require.Equal(t, 2, dbtest.CountJobs(t, s.DB, "email"), "booking and launch each queue one job")
	})

	s.Run("Normal case: half booked launches nothing", func() {
		t := s.T()
		a := s.createRoom(t, 801, 100)
		s.createRoom(t, 802, 100)
		code, _ := s.book(t, a, "judy", "2025-09-01", "2025-09-03")
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, launchPromotionURL, request.LaunchPromotionRequest{Date: "2025-09-01"})
		var res response.LaunchPromotionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.Launched)
		require.Nil(t, res.PromotionID)
	})

	s.Run("Error case: malformed date", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, occupancyURL+"?date=tomorrow", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date")
	})
}

// =============================================================================
// TestInsights - confirmed reservations by month and room type
// =============================================================================

func (s *BookingSuite) TestInsights() {
	s.Run("Normal case: counts skip canceled stays", func() {
		t := s.T()
		suiteRoom := dbtest.CreateTestRoom(t, s.DB, 901, "suite", 40000)
		standard := dbtest.CreateTestRoom(t, s.DB, 902, "standard", 12000)

		_, r1 := s.book(t, suiteRoom, "kate", "2025-10-01", "2025-10-02")
		_, r2 := s.book(t, standard, "kate", "2025-10-05", "2025-10-06")
		_, r3 := s.book(t, standard, "liam", "2025-11-01", "2025-11-02")
		require.NotNil(t, r1)
		require.NotNil(t, r2)
		require.NotNil(t, r3)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+r1.ID.String(), nil)
		httptest.AssertNoContent(t, w)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, insightsURL, nil)
		var body response.InsightsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, 2, body.TotalReservations)
		require.Equal(t, []*response.MonthCountResponse{
			{Month: "2025-10", Reservations: 1},
			{Month: "2025-11", Reservations: 1},
		}, body.PeakTimes)
		require.Equal(t, []*response.RoomTypeCountResponse{
			{RoomType: "standard", Reservations: 2},
		}, body.GuestPreferences)
	})
}
