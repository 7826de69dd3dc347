package queries

import (
	"context"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markRoomNotFound(err)
	}
	return v, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.List(ctx)
}
