package reservation

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

const MaxGuestIdentityLength = 255

// MaxStayNights bounds a single booking.
const MaxStayNights = 3650

const secondsPerDay = 24 * 60 * 60

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Intervals that only touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// StayRange is a half-open range of calendar dates [checkIn, checkOut).
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in, out := truncateToDate(checkIn), truncateToDate(checkOut)
	if !in.Before(out) {
		return StayRange{}, ErrInvalidDateRange
	}
	if daysBetween(in, out) > MaxStayNights {
		return StayRange{}, fmt.Errorf("%w: stay longer than %d nights", ErrInvalidDateRange, MaxStayNights)
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	checkIn, checkOut = strings.TrimSpace(checkIn), strings.TrimSpace(checkOut)
	if checkIn == "" || checkOut == "" {
		return StayRange{}, fmt.Errorf("%w: check_in and check_out are required", ErrInvalidDateRange)
	}
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayRange{}, fmt.Errorf("%w: check_in %q", ErrInvalidDateRange, checkIn)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayRange{}, fmt.Errorf("%w: check_out %q", ErrInvalidDateRange, checkOut)
	}
	return NewStayRange(in, out)
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return int(daysBetween(s.checkIn, s.checkOut))
}

func (s StayRange) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

func (s StayRange) Overlaps(other StayRange) bool {
	return Overlaps(s.checkIn, s.checkOut, other.checkIn, other.checkOut)
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(DateLayout), s.checkOut.Format(DateLayout))
}

// daysBetween counts calendar days on day numbers; time.Duration saturates
// after about 292 years.
func daysBetween(from, to time.Time) int64 {
	return to.Unix()/secondsPerDay - from.Unix()/secondsPerDay
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GuestIdentity is the opaque identifier a booking is made under (e-mail,
// loyalty number, etc.). Lookups are exact after trimming.
type GuestIdentity struct {
	value string
}

func NewGuestIdentity(s string) (GuestIdentity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GuestIdentity{}, ErrEmptyGuestIdentity
	}
	if len(s) > MaxGuestIdentityLength {
		return GuestIdentity{}, ErrGuestIdentityTooLong
	}
	return GuestIdentity{value: s}, nil
}

func (g GuestIdentity) String() string {
	return g.value
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}
