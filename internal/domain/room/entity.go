package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber  = errors.New("room number must be positive")
	ErrEmptyRoomType      = errors.New("room type cannot be empty")
	ErrRoomTypeTooLong    = errors.New("room type is too long (max 64 characters)")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrDescriptionTooLong = errors.New("description is too long (max 2000 characters)")
)

const (
	MaxRoomTypeLength    = 64
	MaxDescriptionLength = 2000
)

// Price is a nightly rate in minor units.
type Price struct {
	cents int64
}

func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

func (p Price) Amount() float64 { return float64(p.cents) / 100.0 }

type Room struct {
	id          uuid.UUID
	number      int
	roomType    string
	price       Price
	description string
	createdAt   time.Time
}

func NewRoom(number int, roomType string, priceCents int64, description string, now time.Time) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	roomType = strings.TrimSpace(roomType)
	if err := validateRoomType(roomType); err != nil {
		return nil, err
	}
	price, err := NewPrice(priceCents)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	return &Room{
		id:          uuid.New(),
		number:      number,
		roomType:    roomType,
		price:       price,
		description: description,
		createdAt:   now,
	}, nil
}

func ReconstructRoom(id uuid.UUID, number int, roomType string, priceCents int64, description string, createdAt time.Time) *Room {
	return &Room{
		id:          id,
		number:      number,
		roomType:    roomType,
		price:       Price{cents: priceCents},
		description: description,
		createdAt:   createdAt,
	}
}

func validateRoomType(roomType string) error {
	if roomType == "" {
		return ErrEmptyRoomType
	}
	if len(roomType) > MaxRoomTypeLength {
		return ErrRoomTypeTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() int          { return r.number }
func (r *Room) Type() string         { return r.roomType }
func (r *Room) Price() Price         { return r.price }
func (r *Room) Description() string  { return r.description }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
