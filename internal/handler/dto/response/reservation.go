package response

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      int        `json:"room_number"`
	Guest           string     `json:"guest"`
	CheckInDate     string     `json:"check_in"`
	CheckOutDate    string     `json:"check_out"`
	Status          string     `json:"status"`
	TotalPriceCents int64      `json:"total_price_cents"`
	PointsAwarded   int        `json:"points_awarded"`
	CreatedAt       time.Time  `json:"created_at"`
	CanceledAt      *time.Time `json:"canceled_at,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	res := &ReservationResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to copy reservation view")
	}
	res.CheckInDate = v.CheckIn.Format(reservation.DateLayout)
	res.CheckOutDate = v.CheckOut.Format(reservation.DateLayout)
	return res, nil
}

// FromBookingResult renders a reservation straight from the booking command,
// so the response reflects exactly what was committed.
func FromBookingResult(r *commands.BookingResult) (*ReservationResponse, error) {
	res := &ReservationResponse{}
	if err := copier.Copy(res, r); err != nil {
		return nil, errs.Wrap(err, "failed to copy booking result")
	}
	res.ID = r.ReservationID
	res.CheckInDate = r.CheckIn.Format(reservation.DateLayout)
	res.CheckOutDate = r.CheckOut.Format(reservation.DateLayout)
	return res, nil
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

func FromReservationPage(p *queries.ReservationPage) (*ReservationListResponse, error) {
	items, err := FromReservationViews(p.Items)
	if err != nil {
		return nil, err
	}
	return &ReservationListResponse{Items: items, NextCursor: p.NextCursor}, nil
}
