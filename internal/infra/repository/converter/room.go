package converter

import (
	"fmt"
	"math"

	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func RoomToInfra(r *room.Room) sqlc.CreateRoomParams {
	if r.Number() > math.MaxInt32 {
		panic(fmt.Sprintf("room number out of int32 range: %d", r.Number()))
	}
	return sqlc.CreateRoomParams{
		ID:          r.ID(),
		RoomNumber:  int32(r.Number()),
		RoomType:    r.Type(),
		PriceCents:  r.Price().Cents(),
		Description: r.Description(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RoomFromInfra(row sqlc.Rooms) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		int(row.RoomNumber),
		row.RoomType,
		row.PriceCents,
		row.Description,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
