package queries

import (
	"context"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error)
	ListAvailableRooms(ctx context.Context, checkIn, checkOut string) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, reservations ReservationReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, reservations: reservations}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error) {
	stay, err := reservation.ParseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, markRoomNotFound(err)
	}

	active, err := q.reservations.ListActiveByRoom(ctx, roomID, stay.CheckIn())
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		RoomID:    roomID,
		CheckIn:   stay.CheckIn(),
		CheckOut:  stay.CheckOut(),
		Available: !anyConflict(active, stay),
	}, nil
}

func (q *availabilityQueriesImpl) ListAvailableRooms(ctx context.Context, checkIn, checkOut string) ([]*RoomView, error) {
	stay, err := reservation.ParseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	return availableRooms(ctx, q.rooms, q.reservations, stay)
}

func availableRooms(ctx context.Context, rooms RoomReadStore, reservations ReservationReadStore, stay reservation.StayRange) ([]*RoomView, error) {
	all, err := rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	active, err := reservations.ListActiveFrom(ctx, stay.CheckIn())
	if err != nil {
		return nil, err
	}

	byRoom := make(map[uuid.UUID][]*ReservationView, len(all))
	for _, r := range active {
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	out := make([]*RoomView, 0, len(all))
	for _, rm := range all {
		if !anyConflict(byRoom[rm.ID], stay) {
			out = append(out, rm)
		}
	}
	return out, nil
}

// anyConflict applies the reservation overlap predicate to read-side rows.
func anyConflict(views []*ReservationView, stay reservation.StayRange) bool {
	for _, v := range views {
		if v.Status != reservation.StatusConfirmed.String() {
			continue
		}
		if reservation.Overlaps(v.CheckIn, v.CheckOut, stay.CheckIn(), stay.CheckOut()) {
			return true
		}
	}
	return false
}

func markRoomNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrRoomNotFound)
	}
	return err
}
