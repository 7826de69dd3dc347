package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	GetRoomByNumber(ctx context.Context, db sqlc.DBTX, roomNumber int32) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	CountRooms(ctx context.Context, db sqlc.DBTX) (int32, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return toRoomView(row), nil
}

// FindByNumber returns KindNotFound when no room carries the number.
func (r *RoomReadStore) FindByNumber(ctx context.Context, number int) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByNumber(ctx, r.db, int32(number)) // #nosec G115 -- room numbers are validated positive ints
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by number", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = toRoomView(row)
	}
	return views, nil
}

func (r *RoomReadStore) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountRooms(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return int(n), nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:          row.ID,
		Number:      int(row.RoomNumber),
		Type:        row.RoomType,
		PriceCents:  row.PriceCents,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
