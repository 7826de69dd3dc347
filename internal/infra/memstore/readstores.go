package memstore

import (
	"context"
	"sort"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func (s *Store) RoomReads() *RoomReadStore {
	return &RoomReadStore{store: s}
}

func (s *Store) ReservationReads() *ReservationReadStore {
	return &ReservationReadStore{store: s}
}

func (s *Store) SubscriberReads() *SubscriberReadStore {
	return &SubscriberReadStore{store: s}
}

func (s *Store) LoyaltyReads() *LoyaltyReadStore {
	return &LoyaltyReadStore{store: s}
}

func (s *Store) PromotionReads() *PromotionReadStore {
	return &PromotionReadStore{store: s}
}

// read runs fn against the committed state without copying it.
func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

type RoomReadStore struct {
	store *Store
}

func (r *RoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var (
		rec roomRecord
		ok  bool
	)
	r.store.read(func(st *state) { rec, ok = st.rooms[id] })
	if !ok {
		return nil, infra.NewNotFound("room not found")
	}
	return toRoomView(rec), nil
}

func (r *RoomReadStore) List(_ context.Context) ([]*queries.RoomView, error) {
	var views []*queries.RoomView
	r.store.read(func(st *state) {
		views = make([]*queries.RoomView, 0, len(st.rooms))
		for _, rec := range st.rooms {
			views = append(views, toRoomView(rec))
		}
	})
	sort.Slice(views, func(i, j int) bool { return views[i].Number < views[j].Number })
	return views, nil
}

func (r *RoomReadStore) Count(_ context.Context) (int, error) {
	var n int
	r.store.read(func(st *state) { n = len(st.rooms) })
	return n, nil
}

type ReservationReadStore struct {
	store *Store
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view *queries.ReservationView
	r.store.read(func(st *state) {
		if rec, ok := st.reservations[id]; ok {
			view = toReservationView(rec, st.rooms[rec.RoomID].Number)
		}
	})
	if view == nil {
		return nil, infra.NewNotFound("reservation not found")
	}
	return view, nil
}

func (r *ReservationReadStore) ListActiveByRoom(_ context.Context, roomID uuid.UUID, from time.Time) ([]*queries.ReservationView, error) {
	var views []*queries.ReservationView
	r.store.read(func(st *state) {
		recs := activeByRoom(st, roomID, from)
		views = make([]*queries.ReservationView, len(recs))
		for i, rec := range recs {
			views[i] = toReservationView(rec, st.rooms[rec.RoomID].Number)
		}
	})
	return views, nil
}

func (r *ReservationReadStore) ListActiveFrom(_ context.Context, from time.Time) ([]*queries.ReservationView, error) {
	views := r.collect(func(rec reservationRecord) bool {
		return rec.Status == reservation.StatusConfirmed.String() && rec.CheckOut.After(from)
	})
	sort.Slice(views, func(i, j int) bool {
		if c := compareUUID(views[i].RoomID, views[j].RoomID); c != 0 {
			return c < 0
		}
		return views[i].CheckIn.Before(views[j].CheckIn)
	})
	return views, nil
}

func (r *ReservationReadStore) ListByGuest(_ context.Context, guest string, after *queries.CursorPosition, limit int) ([]*queries.ReservationView, error) {
	views := r.collect(func(rec reservationRecord) bool {
		if rec.Guest != guest {
			return false
		}
		return after == nil || newestFirstBefore(rec.CreatedAt, rec.ID, after.CreatedAt, after.ID)
	})
	sortNewestFirst(views)
	if limit >= 0 && len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

func (r *ReservationReadStore) ListConfirmedByGuest(_ context.Context, guest string) ([]*queries.ReservationView, error) {
	views := r.collect(func(rec reservationRecord) bool {
		return rec.Guest == guest && rec.Status == reservation.StatusConfirmed.String()
	})
	sortNewestFirst(views)
	return views, nil
}

func (r *ReservationReadStore) ListByRoom(_ context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	views := r.collect(func(rec reservationRecord) bool { return rec.RoomID == roomID })
	sort.Slice(views, func(i, j int) bool {
		if !views[i].CheckIn.Equal(views[j].CheckIn) {
			return views[i].CheckIn.Before(views[j].CheckIn)
		}
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.Before(views[j].CreatedAt)
		}
		return compareUUID(views[i].ID, views[j].ID) < 0
	})
	return views, nil
}

func (r *ReservationReadStore) CountOccupiedRooms(_ context.Context, day time.Time) (int, error) {
	var n int
	r.store.read(func(st *state) { n = st.occupiedRooms(day) })
	return n, nil
}

func (r *ReservationReadStore) CountByCheckInMonth(_ context.Context) ([]*queries.MonthCount, error) {
	counts := make(map[string]int)
	r.store.read(func(st *state) {
		for _, rec := range st.reservations {
			if rec.Status == reservation.StatusConfirmed.String() {
				counts[rec.CheckIn.UTC().Format("2006-01")]++
			}
		}
	})
	out := make([]*queries.MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, &queries.MonthCount{Month: month, Reservations: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *ReservationReadStore) CountByRoomType(_ context.Context) ([]*queries.RoomTypeCount, error) {
	counts := make(map[string]int)
	r.store.read(func(st *state) {
		for _, rec := range st.reservations {
			if rec.Status == reservation.StatusConfirmed.String() {
				counts[st.rooms[rec.RoomID].Type]++
			}
		}
	})
	out := make([]*queries.RoomTypeCount, 0, len(counts))
	for roomType, n := range counts {
		out = append(out, &queries.RoomTypeCount{RoomType: roomType, Reservations: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reservations != out[j].Reservations {
			return out[i].Reservations > out[j].Reservations
		}
		return out[i].RoomType < out[j].RoomType
	})
	return out, nil
}

func (r *ReservationReadStore) collect(match func(rec reservationRecord) bool) []*queries.ReservationView {
	views := []*queries.ReservationView{}
	r.store.read(func(st *state) {
		for _, rec := range st.reservations {
			if match(rec) {
				views = append(views, toReservationView(rec, st.rooms[rec.RoomID].Number))
			}
		}
	})
	return views
}

// newestFirstBefore reports whether (createdAt, id) sorts after the cursor
// in (created_at DESC, id DESC) order.
func newestFirstBefore(createdAt time.Time, id uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID) bool {
	if !createdAt.Equal(afterCreatedAt) {
		return createdAt.Before(afterCreatedAt)
	}
	return compareUUID(id, afterID) < 0
}

func sortNewestFirst(views []*queries.ReservationView) {
	sort.Slice(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return compareUUID(views[i].ID, views[j].ID) > 0
	})
}

type SubscriberReadStore struct {
	store *Store
}

func (r *SubscriberReadStore) List(_ context.Context) ([]*queries.SubscriberView, error) {
	views := []*queries.SubscriberView{}
	r.store.read(func(st *state) {
		for _, rec := range st.subscribers {
			views = append(views, &queries.SubscriberView{ID: rec.ID, Email: rec.Email, CreatedAt: rec.CreatedAt})
		}
	})
	sort.Slice(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.Before(views[j].CreatedAt)
		}
		return views[i].Email < views[j].Email
	})
	return views, nil
}

type LoyaltyReadStore struct {
	store *Store
}

func (r *LoyaltyReadStore) FindByGuest(_ context.Context, guest string) (*queries.LoyaltyAccountView, error) {
	var (
		rec loyaltyRecord
		ok  bool
	)
	r.store.read(func(st *state) { rec, ok = st.loyalty[guest] })
	if !ok {
		return nil, infra.NewNotFound("loyalty account not found")
	}
	updatedAt := rec.UpdatedAt
	return &queries.LoyaltyAccountView{
		Guest:     rec.Guest,
		Points:    rec.Points,
		UpdatedAt: &updatedAt,
	}, nil
}

type PromotionReadStore struct {
	store *Store
}

func (r *PromotionReadStore) List(_ context.Context) ([]*queries.PromotionView, error) {
	views := []*queries.PromotionView{}
	r.store.read(func(st *state) {
		for _, rec := range st.promotions {
			views = append(views, &queries.PromotionView{
				ID:              rec.ID,
				Kind:            rec.Kind,
				Date:            rec.Day,
				Description:     rec.Description,
				DiscountPercent: rec.DiscountPercent,
				CreatedAt:       rec.CreatedAt,
			})
		}
	})
	sort.Slice(views, func(i, j int) bool {
		if !views[i].Date.Equal(views[j].Date) {
			return views[i].Date.After(views[j].Date)
		}
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}
