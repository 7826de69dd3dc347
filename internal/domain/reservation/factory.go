package reservation

import (
	"hotel-booking/internal/domain/loyalty"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/clock"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation books stay on r provided none of the room's existing
// reservations conflict. Callers must hold the room's lock so existing is
// complete for the duration of the insert.
func (f *Factory) CreateReservation(
	r *room.Room,
	guest GuestIdentity,
	stay StayRange,
	existing []*Reservation,
) (*Reservation, error) {
	if FindConflict(existing, stay) != nil {
		return nil, ErrStayConflict
	}

	total, err := f.PriceCalculator.CalculateTotalCents(r.Price().Cents(), stay)
	if err != nil {
		return nil, err
	}

	return NewReservation(
		r.ID(),
		guest,
		stay,
		NewMoney(total),
		loyalty.PointsPerBooking,
		f.Clock.Now(),
	)
}
