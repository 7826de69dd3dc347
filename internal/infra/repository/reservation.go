package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	ListActiveReservationsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsByRoomParams) ([]sqlc.Reservations, error)
	LockReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a confirmed reservation. An overlapping confirmed stay on the
// same room violates reservations_no_overlap and surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservationsByRoom(ctx, r.db, sqlc.ListActiveReservationsByRoomParams{
		RoomID:   roomID,
		CheckOut: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, cerr := converter.ReservationFromInfra(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", cerr, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.LockReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	err := r.queries.UpdateReservationStatus(ctx, r.db, sqlc.UpdateReservationStatusParams{
		ID:         res.ID(),
		Status:     res.Status().String(),
		CanceledAt: pgconv.TimePtrToPgtype(res.CanceledAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}
