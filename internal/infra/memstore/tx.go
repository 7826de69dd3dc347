package memstore

import (
	"context"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type op func(st *state) error

type memTx struct {
	store   *Store
	pending []op

	heldRooms map[uuid.UUID]chan struct{}
	outbox    bool
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:     s,
		heldRooms: make(map[uuid.UUID]chan struct{}),
	}
}

func (t *memTx) stage(o op) {
	t.pending = append(t.pending, o)
}

// view is the committed state with this transaction's staged writes applied.
func (t *memTx) view() *state {
	st := t.store.snapshot()
	for _, o := range t.pending {
		_ = o(st)
	}
	return st
}

func (t *memTx) commit() error {
	if len(t.pending) == 0 {
		return nil
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	next := t.store.state.clone()
	for _, o := range t.pending {
		if err := o(next); err != nil {
			return err
		}
	}
	t.store.state = next
	return nil
}

func (t *memTx) release() {
	for id, l := range t.heldRooms {
		<-l
		delete(t.heldRooms, id)
	}
	if t.outbox {
		<-t.store.outbox
		t.outbox = false
	}
}

func (t *memTx) lockRoom(ctx context.Context, id uuid.UUID) error {
	if _, held := t.heldRooms[id]; held {
		return nil
	}
	l := t.store.roomLock(id)
	if err := acquire(ctx, l); err != nil {
		return err
	}
	t.heldRooms[id] = l
	return nil
}

func (t *memTx) lockOutbox(ctx context.Context) error {
	if t.outbox {
		return nil
	}
	if err := acquire(ctx, t.store.outbox); err != nil {
		return err
	}
	t.outbox = true
	return nil
}

func (t *memTx) Rooms() shared.RoomRepository {
	return &roomRepository{tx: t}
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepository{tx: t}
}

func (t *memTx) Subscribers() shared.SubscriberRepository {
	return &subscriberRepository{tx: t}
}

func (t *memTx) Loyalty() shared.LoyaltyRepository {
	return &loyaltyRepository{tx: t}
}

func (t *memTx) Promotions() shared.PromotionRepository {
	return &promotionRepository{tx: t}
}

func (t *memTx) Notifications() shared.NotificationRepository {
	return &notificationRepository{tx: t}
}

func (t *memTx) Reads() shared.CommandReads {
	return &commandReads{tx: t}
}

type commandReads struct {
	tx *memTx
}

func (r *commandReads) RoomByNumber(_ context.Context, number int) (*shared.RoomSnapshot, error) {
	rec, ok := r.tx.view().roomByNumber(number)
	if !ok {
		return nil, infra.NewNotFound("room not found")
	}
	return &shared.RoomSnapshot{ID: rec.ID, Number: rec.Number}, nil
}

func (r *commandReads) SubscriberByEmail(_ context.Context, email string) (*shared.SubscriberSnapshot, error) {
	rec, ok := r.tx.view().subscribers[email]
	if !ok {
		return nil, infra.NewNotFound("subscriber not found")
	}
	return &shared.SubscriberSnapshot{ID: rec.ID, Email: rec.Email}, nil
}

func (r *commandReads) Occupancy(_ context.Context, day time.Time) (campaign.Occupancy, error) {
	st := r.tx.view()
	return campaign.Occupancy{
		Day:           day,
		TotalRooms:    len(st.rooms),
		OccupiedRooms: st.occupiedRooms(day),
	}, nil
}
