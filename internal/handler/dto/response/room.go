package response

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      int       `json:"number"`
	Type        string    `json:"type"`
	PriceCents  int64     `json:"price_cents"`
	Amount      float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	res := &RoomResponse{}
	// same field names and types as the view
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to copy room view")
	}
	res.Amount = v.Price()
	return res, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		res, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Available bool      `json:"available"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    v.RoomID,
		CheckIn:   v.CheckIn.Format(reservation.DateLayout),
		CheckOut:  v.CheckOut.Format(reservation.DateLayout),
		Available: v.Available,
	}
}
