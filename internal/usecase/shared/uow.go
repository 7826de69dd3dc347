package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/campaign"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/subscriber"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// Nothing fn wrote is visible to others unless fn returns nil.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Subscribers() SubscriberRepository
	Loyalty() LoyaltyRepository
	Notifications() NotificationRepository
	Promotions() PromotionRepository
	Reads() CommandReads
}

// CommandReads are lookups commands need for validation before writing.
type CommandReads interface {
	RoomByNumber(ctx context.Context, number int) (*RoomSnapshot, error)
	SubscriberByEmail(ctx context.Context, email string) (*SubscriberSnapshot, error)
	// Occupancy counts rooms with a confirmed stay covering the night of day.
	Occupancy(ctx context.Context, day time.Time) (campaign.Occupancy, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	// LockByID loads the room and holds its booking lock until the
	// transaction ends. Concurrent bookings of the same room serialize here.
	LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// ListActiveByRoom returns confirmed reservations of the room that end after from.
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*reservation.Reservation, error)
	// LockByID loads the reservation and locks it until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type SubscriberRepository interface {
	Create(ctx context.Context, s *subscriber.Subscriber) error
	DeleteByEmail(ctx context.Context, email string) error
}

type LoyaltyRepository interface {
	// AddPoints credits points and returns the new balance.
	AddPoints(ctx context.Context, guest string, points int, at time.Time) (int, error)
	// RevokePoints debits points, flooring the balance at zero, and returns the new balance.
	RevokePoints(ctx context.Context, guest string, points int, at time.Time) (int, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue locks up to limit queued jobs due at now. Jobs claimed by
	// another open transaction are skipped.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error
}

type PromotionRepository interface {
	// Create fails with KindDuplicateKey when a promotion of the same kind
	// already exists for the day.
	Create(ctx context.Context, p *campaign.Promotion) error
}
