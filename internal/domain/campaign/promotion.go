package campaign

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDay = errors.New("day must be a YYYY-MM-DD date")

// DayLayout is the wire format of a calendar day.
const DayLayout = "2006-01-02"

const (
	KindLowOccupancy = "low_occupancy"

	// LowOccupancyThreshold is the occupancy rate below which a discount is launched.
	LowOccupancyThreshold = 0.5

	LowOccupancyDiscountPercent = 20
	lowOccupancyDescription     = "Special discount for low occupancy"
)

// Occupancy counts rooms holding a confirmed stay on one night.
type Occupancy struct {
	Day           time.Time
	TotalRooms    int
	OccupiedRooms int
}

// Rate is zero for a hotel without rooms.
func (o Occupancy) Rate() float64 {
	if o.TotalRooms == 0 {
		return 0
	}
	return float64(o.OccupiedRooms) / float64(o.TotalRooms)
}

func (o Occupancy) NeedsPromotion() bool {
	return o.TotalRooms > 0 && o.Rate() < LowOccupancyThreshold
}

// ParseDay reads a calendar date. An empty string means today.
func ParseDay(s string, today time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return truncateToDay(today), nil
	}
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return d, nil
}

// Promotion is a discount launched for one night. At most one promotion of
// a kind exists per night.
type Promotion struct {
	id              uuid.UUID
	kind            string
	day             time.Time
	description     string
	discountPercent int
	createdAt       time.Time
}

func NewLowOccupancyPromotion(day, now time.Time) *Promotion {
	return &Promotion{
		id:              uuid.New(),
		kind:            KindLowOccupancy,
		day:             truncateToDay(day),
		description:     lowOccupancyDescription,
		discountPercent: LowOccupancyDiscountPercent,
		createdAt:       now,
	}
}

func ReconstructPromotion(id uuid.UUID, kind string, day time.Time, description string, discountPercent int, createdAt time.Time) *Promotion {
	return &Promotion{
		id:              id,
		kind:            kind,
		day:             day,
		description:     description,
		discountPercent: discountPercent,
		createdAt:       createdAt,
	}
}

func (p *Promotion) ID() uuid.UUID        { return p.id }
func (p *Promotion) Kind() string         { return p.kind }
func (p *Promotion) Day() time.Time       { return p.day }
func (p *Promotion) Description() string  { return p.description }
func (p *Promotion) DiscountPercent() int { return p.discountPercent }
func (p *Promotion) CreatedAt() time.Time { return p.createdAt }

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
