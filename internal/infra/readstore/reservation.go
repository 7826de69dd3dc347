package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListActiveReservationViewsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationViewsByRoomParams) ([]sqlc.ListActiveReservationViewsByRoomRow, error)
	ListActiveReservationViewsFrom(ctx context.Context, db sqlc.DBTX, checkOut pgtype.Date) ([]sqlc.ListActiveReservationViewsFromRow, error)
	ListReservationViewsByGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsByGuestParams) ([]sqlc.ListReservationViewsByGuestRow, error)
	ListConfirmedReservationViewsByGuest(ctx context.Context, db sqlc.DBTX, guestIdentity string) ([]sqlc.ListConfirmedReservationViewsByGuestRow, error)
	ListReservationViewsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.ListReservationViewsByRoomRow, error)
	CountOccupiedRooms(ctx context.Context, db sqlc.DBTX, night pgtype.Date) (int32, error)
	CountReservationsByCheckInMonth(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountReservationsByCheckInMonthRow, error)
	CountReservationsByRoomType(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountReservationsByRoomTypeRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return toReservationView(row.Reservations, row.RoomNumber), nil
}

func (r *ReservationReadStore) ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListActiveReservationViewsByRoom(ctx, r.db, sqlc.ListActiveReservationViewsByRoomParams{
		RoomID:   roomID,
		CheckOut: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations by room", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row.Reservations, row.RoomNumber)
	}
	return views, nil
}

func (r *ReservationReadStore) ListActiveFrom(ctx context.Context, from time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListActiveReservationViewsFrom(ctx, r.db, pgconv.DateToPgtype(from))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row.Reservations, row.RoomNumber)
	}
	return views, nil
}

func (r *ReservationReadStore) ListByGuest(ctx context.Context, guest string, after *queries.CursorPosition, limit int) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationViewsByGuestParams{
		GuestIdentity: guest,
		RowLimit:      int32(limit), // #nosec G115 -- limit is bounded by ValidateLimit
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListReservationViewsByGuest(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by guest", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row.Reservations, row.RoomNumber)
	}
	return views, nil
}

func (r *ReservationReadStore) ListConfirmedByGuest(ctx context.Context, guest string) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListConfirmedReservationViewsByGuest(ctx, r.db, guest)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed reservations by guest", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row.Reservations, row.RoomNumber)
	}
	return views, nil
}

func (r *ReservationReadStore) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by room", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row.Reservations, row.RoomNumber)
	}
	return views, nil
}

func (r *ReservationReadStore) CountOccupiedRooms(ctx context.Context, day time.Time) (int, error) {
	n, err := r.queries.CountOccupiedRooms(ctx, r.db, pgconv.DateToPgtype(day))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count occupied rooms", err)
	}
	return int(n), nil
}

func (r *ReservationReadStore) CountByCheckInMonth(ctx context.Context) ([]*queries.MonthCount, error) {
	rows, err := r.queries.CountReservationsByCheckInMonth(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by month", err)
	}

	counts := make([]*queries.MonthCount, len(rows))
	for i, row := range rows {
		counts[i] = &queries.MonthCount{Month: row.Month, Reservations: int(row.Reservations)}
	}
	return counts, nil
}

func (r *ReservationReadStore) CountByRoomType(ctx context.Context) ([]*queries.RoomTypeCount, error) {
	rows, err := r.queries.CountReservationsByRoomType(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by room type", err)
	}

	counts := make([]*queries.RoomTypeCount, len(rows))
	for i, row := range rows {
		counts[i] = &queries.RoomTypeCount{RoomType: row.RoomType, Reservations: int(row.Reservations)}
	}
	return counts, nil
}

func toReservationView(row sqlc.Reservations, roomNumber int32) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		RoomID:          row.RoomID,
		RoomNumber:      int(roomNumber),
		Guest:           row.GuestIdentity,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		Status:          row.Status,
		TotalPriceCents: row.TotalPriceCents,
		PointsAwarded:   int(row.PointsAwarded),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		CanceledAt:      pgconv.TimePtrFromPgtype(row.CanceledAt),
	}
}
