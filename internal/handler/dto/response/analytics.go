package response

import (
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type OccupancyResponse struct {
	Date               string  `json:"date"`
	TotalRooms         int     `json:"total_rooms"`
	OccupiedRooms      int     `json:"occupied_rooms"`
	Rate               float64 `json:"occupancy_rate"`
	PromotionSuggested bool    `json:"promotion_suggested"`
}

func FromOccupancyView(v *queries.OccupancyView) *OccupancyResponse {
	return &OccupancyResponse{
		Date:               v.Date.Format(campaign.DayLayout),
		TotalRooms:         v.TotalRooms,
		OccupiedRooms:      v.OccupiedRooms,
		Rate:               v.Rate,
		PromotionSuggested: v.PromotionSuggested,
	}
}

type MonthCountResponse struct {
	Month        string `json:"month"`
	Reservations int    `json:"reservations"`
}

type RoomTypeCountResponse struct {
	RoomType     string `json:"room_type"`
	Reservations int    `json:"reservations"`
}

type InsightsResponse struct {
	TotalReservations int                      `json:"total_reservations"`
	PeakTimes         []*MonthCountResponse    `json:"peak_times"`
	GuestPreferences  []*RoomTypeCountResponse `json:"guest_preferences"`
}

func FromInsightsView(v *queries.InsightsView) *InsightsResponse {
	res := &InsightsResponse{
		TotalReservations: v.TotalReservations,
		PeakTimes:         make([]*MonthCountResponse, len(v.PeakTimes)),
		GuestPreferences:  make([]*RoomTypeCountResponse, len(v.GuestPreferences)),
	}
	for i, m := range v.PeakTimes {
		res.PeakTimes[i] = &MonthCountResponse{Month: m.Month, Reservations: m.Reservations}
	}
	for i, t := range v.GuestPreferences {
		res.GuestPreferences[i] = &RoomTypeCountResponse{RoomType: t.RoomType, Reservations: t.Reservations}
	}
	return res
}

type PromotionResponse struct {
	ID              uuid.UUID `json:"id"`
	Kind            string    `json:"kind"`
	Date            string    `json:"date"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromPromotionViews(views []*queries.PromotionView) []*PromotionResponse {
	out := make([]*PromotionResponse, len(views))
	for i, v := range views {
		out[i] = &PromotionResponse{
			ID:              v.ID,
			Kind:            v.Kind,
			Date:            v.Date.Format(campaign.DayLayout),
			Description:     v.Description,
			DiscountPercent: v.DiscountPercent,
			CreatedAt:       v.CreatedAt,
		}
	}
	return out
}

type LaunchPromotionResponse struct {
	Date            string     `json:"date"`
	TotalRooms      int        `json:"total_rooms"`
	OccupiedRooms   int        `json:"occupied_rooms"`
	Rate            float64    `json:"occupancy_rate"`
	Launched        bool       `json:"launched"`
	PromotionID     *uuid.UUID `json:"promotion_id,omitempty"`
	Description     string     `json:"description,omitempty"`
	DiscountPercent int        `json:"discount_percent,omitempty"`
}

func FromLaunchPromotionResult(r *commands.LaunchPromotionResult) *LaunchPromotionResponse {
	res := &LaunchPromotionResponse{
		Date:          r.Day.Format(campaign.DayLayout),
		TotalRooms:    r.TotalRooms,
		OccupiedRooms: r.OccupiedRooms,
		Rate:          r.Rate,
		Launched:      r.Launched,
	}
	if r.Launched {
		id := r.PromotionID
		res.PromotionID = &id
		res.Description = r.Description
		res.DiscountPercent = r.DiscountPercent
	}
	return res
}
