package memstore

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type roomRecord struct {
	ID          uuid.UUID
	Number      int
	Type        string
	PriceCents  int64
	Description string
	CreatedAt   time.Time
}

type reservationRecord struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	Guest           string
	CheckIn         time.Time
	CheckOut        time.Time
	Status          string
	TotalPriceCents int64
	PointsAwarded   int
	CreatedAt       time.Time
	CanceledAt      *time.Time
}

type subscriberRecord struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

type loyaltyRecord struct {
	Guest     string
	Points    int
	UpdatedAt time.Time
}

type promotionRecord struct {
	ID              uuid.UUID
	Kind            string
	Day             time.Time
	Description     string
	DiscountPercent int
	CreatedAt       time.Time
}

type jobRecord struct {
	shared.NotificationJob
	UpdatedAt time.Time
}

// state is the committed dataset. Records are stored by value so that a
// shallow map copy is an independent snapshot.
type state struct {
	rooms        map[uuid.UUID]roomRecord
	reservations map[uuid.UUID]reservationRecord
	subscribers  map[string]subscriberRecord
	loyalty      map[string]loyaltyRecord
	jobs         map[uuid.UUID]jobRecord
	promotions   map[uuid.UUID]promotionRecord
}

func newState() *state {
	return &state{
		rooms:        make(map[uuid.UUID]roomRecord),
		reservations: make(map[uuid.UUID]reservationRecord),
		subscribers:  make(map[string]subscriberRecord),
		loyalty:      make(map[string]loyaltyRecord),
		jobs:         make(map[uuid.UUID]jobRecord),
		promotions:   make(map[uuid.UUID]promotionRecord),
	}
}

func (s *state) clone() *state {
	c := &state{
		rooms:        make(map[uuid.UUID]roomRecord, len(s.rooms)),
		reservations: make(map[uuid.UUID]reservationRecord, len(s.reservations)),
		subscribers:  make(map[string]subscriberRecord, len(s.subscribers)),
		loyalty:      make(map[string]loyaltyRecord, len(s.loyalty)),
		jobs:         make(map[uuid.UUID]jobRecord, len(s.jobs)),
		promotions:   make(map[uuid.UUID]promotionRecord, len(s.promotions)),
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.subscribers {
		c.subscribers[k] = v
	}
	for k, v := range s.loyalty {
		c.loyalty[k] = v
	}
	for k, v := range s.jobs {
		c.jobs[k] = v
	}
	for k, v := range s.promotions {
		c.promotions[k] = v
	}
	return c
}

func (s *state) roomByNumber(number int) (roomRecord, bool) {
	for _, r := range s.rooms {
		if r.Number == number {
			return r, true
		}
	}
	return roomRecord{}, false
}

// occupiedRooms counts rooms with a confirmed stay covering the night of day.
func (s *state) occupiedRooms(day time.Time) int {
	occupied := make(map[uuid.UUID]struct{})
	for _, rec := range s.reservations {
		if rec.Status != reservation.StatusConfirmed.String() {
			continue
		}
		if !rec.CheckIn.After(day) && rec.CheckOut.After(day) {
			occupied[rec.RoomID] = struct{}{}
		}
	}
	return len(occupied)
}

// pgTime matches the microsecond precision of timestamptz so that cursors
// built from either backend compare the same way.
func pgTime(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

func pgTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := pgTime(*t)
	return &v
}
