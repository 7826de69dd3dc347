package queries

import (
	"context"
	"strings"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByGuest(ctx context.Context, guest, cursor string, limit int) (*ReservationPage, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	rooms RoomReadStore
	store ReservationReadStore
}

func NewReservationQueries(rooms RoomReadStore, store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{rooms: rooms, store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guest, cursor string, limit int) (*ReservationPage, error) {
	guest = strings.TrimSpace(guest)
	if guest == "" {
		return nil, errs.ErrInvalidGuest
	}
	after, err := DecodeAfterCursor(cursor)
	if err != nil {
		return nil, err
	}
	limit = ValidateLimit(limit)

	// Fetch one extra row to learn whether another page exists.
	items, err := q.store.ListByGuest(ctx, guest, after, limit+1)
	if err != nil {
		return nil, err
	}

	page := &ReservationPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		next := EncodeAfterCursor(last.CreatedAt, last.ID)
		page.NextCursor = &next
	}
	return page, nil
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, markRoomNotFound(err)
	}
	return q.store.ListByRoom(ctx, roomID)
}
