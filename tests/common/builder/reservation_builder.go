//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	RoomNumber      int
	Guest           string
	CheckIn         string
	CheckOut        string
	Status          reservation.Status
	TotalPriceCents int64
	PointsAwarded   int
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              uuid.New(),
		RoomID:          uuid.New(),
		RoomNumber:      101,
		Guest:           "alice",
		CheckIn:         "2025-03-01",
		CheckOut:        "2025-03-04",
		Status:          reservation.StatusConfirmed,
		TotalPriceCents: 36000,
		PointsAwarded:   100,
		CreatedAt:       time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) stay() reservation.StayRange {
	stay, err := reservation.ParseStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	guest, err := reservation.NewGuestIdentity(b.Guest)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID, b.RoomID, guest, b.stay(), b.Status,
		reservation.NewMoney(b.TotalPriceCents), b.PointsAwarded, b.CreatedAt, nil,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	stay := b.stay()
	return sqlc.Reservations{
		ID:              b.ID,
		RoomID:          b.RoomID,
		GuestIdentity:   b.Guest,
		CheckIn:         pgtype.Date{Time: stay.CheckIn(), Valid: true},
		CheckOut:        pgtype.Date{Time: stay.CheckOut(), Valid: true},
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		PointsAwarded:   int32(b.PointsAwarded),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	stay := b.stay()
	return &queries.ReservationView{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		Guest:           b.Guest,
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		PointsAwarded:   b.PointsAwarded,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildBookingResult() *commands.BookingResult {
	stay := b.stay()
	return &commands.BookingResult{
		ReservationID:   b.ID,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		Guest:           b.Guest,
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		PointsAwarded:   b.PointsAwarded,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildBookRequestDTO() reqdto.BookRoomRequest {
	return reqdto.BookRoomRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Guest:    b.Guest,
	}
}
