package queries

import (
	"context"
	"strings"

	"hotel-booking/internal/domain/recommend"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultRecommendationCount = 3
	MaxRecommendationCount     = 20
)

type RecommendationQueries interface {
	// ForGuest suggests rooms priced like the guest's previous stays. When
	// checkIn and checkOut are set only rooms free for that stay are considered.
	ForGuest(ctx context.Context, guest, checkIn, checkOut string, k int) ([]*RoomView, error)
	SimilarRooms(ctx context.Context, roomID uuid.UUID, k int) ([]*RoomView, error)
}

type recommendationQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
}

func NewRecommendationQueries(rooms RoomReadStore, reservations ReservationReadStore) RecommendationQueries {
	return &recommendationQueriesImpl{rooms: rooms, reservations: reservations}
}

func (q *recommendationQueriesImpl) ForGuest(ctx context.Context, guest, checkIn, checkOut string, k int) ([]*RoomView, error) {
	guest = strings.TrimSpace(guest)
	if guest == "" {
		return nil, errs.ErrInvalidGuest
	}
	k = validateCount(k)

	history, err := q.reservations.ListConfirmedByGuest(ctx, guest)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return []*RoomView{}, nil
	}

	var candidates []*RoomView
	if checkIn == "" && checkOut == "" {
		candidates, err = q.rooms.List(ctx)
	} else {
		stay, perr := reservation.ParseStayRange(checkIn, checkOut)
		if perr != nil {
			return nil, errs.Mark(perr, errs.ErrInvalidDateRange)
		}
		candidates, err = availableRooms(ctx, q.rooms, q.reservations, stay)
	}
	if err != nil {
		return nil, err
	}

	bookedRooms := make(map[uuid.UUID]struct{}, len(history))
	for _, h := range history {
		bookedRooms[h.RoomID] = struct{}{}
	}

	prices := make(map[uuid.UUID]float64, len(candidates))
	fresh := make([]*RoomView, 0, len(candidates))
	for _, c := range candidates {
		prices[c.ID] = c.Price()
		if _, seen := bookedRooms[c.ID]; !seen {
			fresh = append(fresh, c)
		}
	}

	refs, err := q.referencePrices(ctx, history, prices)
	if err != nil {
		return nil, err
	}

	return recommend.Nearest(refs, fresh, k, (*RoomView).Price), nil
}

func (q *recommendationQueriesImpl) SimilarRooms(ctx context.Context, roomID uuid.UUID, k int) ([]*RoomView, error) {
	k = validateCount(k)

	target, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, markRoomNotFound(err)
	}
	all, err := q.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	others := make([]*RoomView, 0, len(all))
	for _, rm := range all {
		if rm.ID != target.ID {
			others = append(others, rm)
		}
	}
	return recommend.Nearest([]float64{target.Price()}, others, k, (*RoomView).Price), nil
}

// referencePrices resolves the nightly rate of every room in history, reusing
// prices already loaded with the candidates.
func (q *recommendationQueriesImpl) referencePrices(ctx context.Context, history []*ReservationView, known map[uuid.UUID]float64) ([]float64, error) {
	refs := make([]float64, 0, len(history))
	for _, h := range history {
		if p, ok := known[h.RoomID]; ok {
			refs = append(refs, p)
			continue
		}
		rm, err := q.rooms.FindByID(ctx, h.RoomID)
		if err != nil {
			return nil, err
		}
		known[rm.ID] = rm.Price()
		refs = append(refs, rm.Price())
	}
	return refs, nil
}

func validateCount(k int) int {
	if k <= 0 {
		return DefaultRecommendationCount
	}
	if k > MaxRecommendationCount {
		return MaxRecommendationCount
	}
	return k
}
