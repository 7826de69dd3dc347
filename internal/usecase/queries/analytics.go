package queries

import (
	"context"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
)

// AnalyticsQueries reports on the reservation book as a whole.
type AnalyticsQueries interface {
	// Occupancy reports the share of rooms booked for the night of day (YYYY-MM-DD, empty for today).
	Occupancy(ctx context.Context, day string) (*OccupancyView, error)
	Insights(ctx context.Context) (*InsightsView, error)
	Promotions(ctx context.Context) ([]*PromotionView, error)
}

type analyticsQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
	promotions   PromotionReadStore
	clock        clock.Clock
}

func NewAnalyticsQueries(rooms RoomReadStore, reservations ReservationReadStore, promotions PromotionReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{
		rooms:        rooms,
		reservations: reservations,
		promotions:   promotions,
		clock:        clk,
	}
}

func (q *analyticsQueriesImpl) Occupancy(ctx context.Context, day string) (*OccupancyView, error) {
	d, err := campaign.ParseDay(day, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDay)
	}

	total, err := q.rooms.Count(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := q.reservations.CountOccupiedRooms(ctx, d)
	if err != nil {
		return nil, err
	}

	occ := campaign.Occupancy{Day: d, TotalRooms: total, OccupiedRooms: occupied}
	return &OccupancyView{
		Date:               d,
		TotalRooms:         total,
		OccupiedRooms:      occupied,
		Rate:               occ.Rate(),
		PromotionSuggested: occ.NeedsPromotion(),
	}, nil
}

func (q *analyticsQueriesImpl) Insights(ctx context.Context) (*InsightsView, error) {
	months, err := q.reservations.CountByCheckInMonth(ctx)
	if err != nil {
		return nil, err
	}
	types, err := q.reservations.CountByRoomType(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, m := range months {
		total += m.Reservations
	}
	return &InsightsView{
		TotalReservations: total,
		PeakTimes:         months,
		GuestPreferences:  types,
	}, nil
}

func (q *analyticsQueriesImpl) Promotions(ctx context.Context) ([]*PromotionView, error) {
	return q.promotions.List(ctx)
}
