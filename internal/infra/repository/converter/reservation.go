package converter

import (
	"fmt"

	"hotel-booking/internal/domain/reservation"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	stay := res.Stay()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		RoomID:          res.RoomID(),
		GuestIdentity:   res.Guest().String(),
		CheckIn:         pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:        pgconv.DateToPgtype(stay.CheckOut()),
		Status:          res.Status().String(),
		TotalPriceCents: res.TotalPrice().Cents(),
		PointsAwarded:   int32(res.PointsAwarded()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		CanceledAt:      pgconv.TimePtrToPgtype(res.CanceledAt()),
	}
}

// ReservationFromInfra rebuilds the aggregate from a stored row. Rows that
// violate domain invariants indicate corruption and are reported as errors.
func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	guest, err := reservation.NewGuestIdentity(row.GuestIdentity)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.RoomID,
		guest,
		stay,
		status,
		reservation.NewMoney(row.TotalPriceCents),
		int(row.PointsAwarded),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CanceledAt),
	), nil
}
