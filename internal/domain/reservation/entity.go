package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange     = errors.New("check_in must be before check_out")
	ErrEmptyGuestIdentity   = errors.New("guest identity cannot be empty")
	ErrGuestIdentityTooLong = errors.New("guest identity is too long (max 255 characters)")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrStayConflict         = errors.New("stay overlaps an existing reservation")
	ErrReservationCanceled  = errors.New("reservation is already canceled")
	ErrInvalidStatus        = errors.New("invalid reservation status")
)

type Reservation struct {
	id            uuid.UUID
	roomID        uuid.UUID
	guest         GuestIdentity
	stay          StayRange
	status        Status
	totalPrice    Money
	pointsAwarded int
	createdAt     time.Time
	canceledAt    *time.Time
}

func NewReservation(
	roomID uuid.UUID,
	guest GuestIdentity,
	stay StayRange,
	totalPrice Money,
	pointsAwarded int,
	now time.Time,
) (*Reservation, error) {
	if stay.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if guest.String() == "" {
		return nil, ErrEmptyGuestIdentity
	}
	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:            uuid.New(),
		roomID:        roomID,
		guest:         guest,
		stay:          stay,
		status:        StatusConfirmed,
		totalPrice:    totalPrice,
		pointsAwarded: pointsAwarded,
		createdAt:     now,
	}, nil
}

func ReconstructReservation(
	id, roomID uuid.UUID,
	guest GuestIdentity,
	stay StayRange,
	status Status,
	totalPrice Money,
	pointsAwarded int,
	createdAt time.Time,
	canceledAt *time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		roomID:        roomID,
		guest:         guest,
		stay:          stay,
		status:        status,
		totalPrice:    totalPrice,
		pointsAwarded: pointsAwarded,
		createdAt:     createdAt,
		canceledAt:    canceledAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

// ConflictsWith reports whether this reservation blocks the given stay.
// Canceled reservations never conflict.
func (r *Reservation) ConflictsWith(stay StayRange) bool {
	return r.IsActive() && r.stay.Overlaps(stay)
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.IsCanceled() {
		return ErrReservationCanceled
	}
	r.status = StatusCanceled
	r.canceledAt = &now
	return nil
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RoomID() uuid.UUID      { return r.roomID }
func (r *Reservation) Guest() GuestIdentity   { return r.guest }
func (r *Reservation) Stay() StayRange        { return r.stay }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) TotalPrice() Money      { return r.totalPrice }
func (r *Reservation) PointsAwarded() int     { return r.pointsAwarded }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) CanceledAt() *time.Time { return r.canceledAt }

// FindConflict returns the first reservation in existing that blocks stay, or nil.
func FindConflict(existing []*Reservation, stay StayRange) *Reservation {
	for _, r := range existing {
		if r.ConflictsWith(stay) {
			return r
		}
	}
	return nil
}
