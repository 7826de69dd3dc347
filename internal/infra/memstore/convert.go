package memstore

import (
	"bytes"
	"fmt"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func toRoom(rec roomRecord) *room.Room {
	return room.ReconstructRoom(rec.ID, rec.Number, rec.Type, rec.PriceCents, rec.Description, rec.CreatedAt)
}

func toReservation(rec reservationRecord) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayRange(rec.CheckIn, rec.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", rec.ID, err)
	}
	guest, err := reservation.NewGuestIdentity(rec.Guest)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", rec.ID, err)
	}
	status, err := reservation.ParseStatus(rec.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", rec.ID, err)
	}
	return reservation.ReconstructReservation(
		rec.ID,
		rec.RoomID,
		guest,
		stay,
		status,
		reservation.NewMoney(rec.TotalPriceCents),
		rec.PointsAwarded,
		rec.CreatedAt,
		rec.CanceledAt,
	), nil
}

func toRoomView(rec roomRecord) *queries.RoomView {
	return &queries.RoomView{
		ID:          rec.ID,
		Number:      rec.Number,
		Type:        rec.Type,
		PriceCents:  rec.PriceCents,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
	}
}

func toReservationView(rec reservationRecord, roomNumber int) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              rec.ID,
		RoomID:          rec.RoomID,
		RoomNumber:      roomNumber,
		Guest:           rec.Guest,
		CheckIn:         rec.CheckIn,
		CheckOut:        rec.CheckOut,
		Status:          rec.Status,
		TotalPriceCents: rec.TotalPriceCents,
		PointsAwarded:   rec.PointsAwarded,
		CreatedAt:       rec.CreatedAt,
		CanceledAt:      rec.CanceledAt,
	}
}

// compareUUID orders ids byte-wise, as Postgres does for the uuid type.
func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
