//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID          uuid.UUID
	Number      int
	Type        string
	PriceCents  int64
	Description string
	CreatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		Number:      101,
		Type:        "double",
		PriceCents:  12000,
		Description: "Two beds, city view",
		CreatedAt:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(b.ID, b.Number, b.Type, b.PriceCents, b.Description, b.CreatedAt)
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{
		ID:          b.ID,
		RoomNumber:  int32(b.Number),
		RoomType:    b.Type,
		PriceCents:  b.PriceCents,
		Description: b.Description,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          b.ID,
		Number:      b.Number,
		Type:        b.Type,
		PriceCents:  b.PriceCents,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	desc := b.Description
	return reqdto.CreateRoomRequest{
		Number:      b.Number,
		Type:        b.Type,
		Price:       float64(b.PriceCents) / 100,
		Description: &desc,
	}
}
