package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID          uuid.UUID `json:"id"`
	Number      int       `json:"number"`
	Type        string    `json:"type"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (v *RoomView) Price() float64 {
	return float64(v.PriceCents) / 100.0
}

// ReservationView represents read-optimized reservation data joined with its room
type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      int        `json:"room_number"`
	Guest           string     `json:"guest"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	Status          string     `json:"status"`
	TotalPriceCents int64      `json:"total_price_cents"`
	PointsAwarded   int        `json:"points_awarded"`
	CreatedAt       time.Time  `json:"created_at"`
	CanceledAt      *time.Time `json:"canceled_at,omitempty"`
}

type ReservationPage struct {
	Items      []*ReservationView
	NextCursor *string
}

type SubscriberView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoyaltyAccountView struct {
	Guest      string     `json:"guest"`
	Points     int        `json:"points"`
	Tier       string     `json:"tier"`
	PercentOff int        `json:"percent_off"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type AvailabilityView struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Available bool      `json:"available"`
}

type OccupancyView struct {
	Date               time.Time `json:"date"`
	TotalRooms         int       `json:"total_rooms"`
	OccupiedRooms      int       `json:"occupied_rooms"`
	Rate               float64   `json:"occupancy_rate"`
	PromotionSuggested bool      `json:"promotion_suggested"`
}

type MonthCount struct {
	Month        string `json:"month"`
	Reservations int    `json:"reservations"`
}

type RoomTypeCount struct {
	RoomType     string `json:"room_type"`
	Reservations int    `json:"reservations"`
}

// InsightsView summarizes confirmed reservations.
type InsightsView struct {
	TotalReservations int              `json:"total_reservations"`
	PeakTimes         []*MonthCount    `json:"peak_times"`
	GuestPreferences  []*RoomTypeCount `json:"guest_preferences"`
}

type PromotionView struct {
	ID              uuid.UUID `json:"id"`
	Kind            string    `json:"kind"`
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

// Read stores return infra.RepositoryError with KindNotFound for missing rows.
type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	Count(ctx context.Context) (int, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListActiveByRoom returns confirmed reservations of the room ending after from.
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*ReservationView, error)
	// ListActiveFrom returns confirmed reservations of every room ending after from.
	ListActiveFrom(ctx context.Context, from time.Time) ([]*ReservationView, error)
	// ListByGuest pages newest first; after is exclusive.
	ListByGuest(ctx context.Context, guest string, after *CursorPosition, limit int) ([]*ReservationView, error)
	ListConfirmedByGuest(ctx context.Context, guest string) ([]*ReservationView, error)
	// ListByRoom returns every reservation of the room, canceled ones included, by check-in.
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
	// CountOccupiedRooms counts rooms with a confirmed stay covering the night of day.
	CountOccupiedRooms(ctx context.Context, day time.Time) (int, error)
	// CountByCheckInMonth groups confirmed reservations by YYYY-MM of check-in, ascending.
	CountByCheckInMonth(ctx context.Context) ([]*MonthCount, error)
	// CountByRoomType groups confirmed reservations by room type, most booked first.
	CountByRoomType(ctx context.Context) ([]*RoomTypeCount, error)
}

type SubscriberReadStore interface {
	List(ctx context.Context) ([]*SubscriberView, error)
}

type LoyaltyReadStore interface {
	FindByGuest(ctx context.Context, guest string) (*LoyaltyAccountView, error)
}

type PromotionReadStore interface {
	List(ctx context.Context) ([]*PromotionView, error)
}
