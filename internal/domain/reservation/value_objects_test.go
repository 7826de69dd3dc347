//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(reservation.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustStay(t *testing.T, in, out string) reservation.StayRange {
	t.Helper()
	s, err := reservation.ParseStayRange(in, out)
	require.NoError(t, err)
	return s
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{"identical", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-10", "2025-01-15"}, true},
		{"nested", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-12", "2025-01-13"}, true},
		{"partial at start", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-08", "2025-01-11"}, true},
		{"partial at end", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-14", "2025-01-20"}, true},
		{"adjacent after", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-15", "2025-01-20"}, false},
		{"adjacent before", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-05", "2025-01-10"}, false},
		{"disjoint", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-02-01", "2025-02-03"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aS, aE := day(tt.a[0]), day(tt.a[1])
			bS, bE := day(tt.b[0]), day(tt.b[1])

			assert.Equal(t, tt.want, reservation.Overlaps(aS, aE, bS, bE))
			assert.Equal(t, tt.want, reservation.Overlaps(bS, bE, aS, aE), "must be symmetric")
		})
	}

	t.Run("symmetric over every small interval pair", func(t *testing.T) {
		base := day("2025-03-01")
		d := func(n int) time.Time { return base.AddDate(0, 0, n) }
		for a := 0; a < 6; a++ {
			for b := a + 1; b <= 6; b++ {
				for c := 0; c < 6; c++ {
					for e := c + 1; e <= 6; e++ {
						got := reservation.Overlaps(d(a), d(b), d(c), d(e))
						assert.Equal(t, got, reservation.Overlaps(d(c), d(e), d(a), d(b)))
						// shared day exists iff max(start) < min(end)
						assert.Equal(t, max(a, c) < min(b, e), got)
					}
				}
			}
		}
	})
}

func TestParseStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		s, err := reservation.ParseStayRange("2025-01-10", "2025-01-15")

		require.NoError(t, err)
		assert.Equal(t, day("2025-01-10"), s.CheckIn())
		assert.Equal(t, day("2025-01-15"), s.CheckOut())
		assert.Equal(t, 5, s.Nights())
		assert.Equal(t, "[2025-01-10,2025-01-15)", s.String())
	})

	invalid := []struct {
		name    string
		in, out string
	}{
		{"check_in equals check_out", "2025-01-10", "2025-01-10"},
		{"check_in after check_out", "2025-01-15", "2025-01-10"},
		{"missing check_in", "", "2025-01-10"},
		{"missing check_out", "2025-01-10", " "},
		{"malformed check_in", "10/01/2025", "2025-01-15"},
		{"impossible date", "2025-02-30", "2025-03-02"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reservation.ParseStayRange(tt.in, tt.out)
			assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
		})
	}
}

func TestNewStayRange_DropsTimeOfDay(t *testing.T) {
	in := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	out := time.Date(2025, 1, 11, 0, 1, 0, 0, time.UTC)

	s, err := reservation.NewStayRange(in, out)

	require.NoError(t, err)
	assert.Equal(t, day("2025-01-10"), s.CheckIn())
	assert.Equal(t, 1, s.Nights())

	morning := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	_, err = reservation.NewStayRange(morning, morning.Add(time.Minute))
	assert.ErrorIs(t, err, reservation.ErrInvalidDateRange, "same calendar day is an empty stay")
}

func TestStayRange_LongStays(t *testing.T) {
	t.Run("nights are counted on calendar days", func(t *testing.T) {
		s := mustStay(t, "2020-01-01", "2027-01-01")
		assert.Equal(t, 7*365+2, s.Nights())
	})

	t.Run("stays beyond the limit are rejected", func(t *testing.T) {
		_, err := reservation.ParseStayRange("2000-01-01", "2400-01-01")
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)

		in := day("2025-01-01")
		_, err = reservation.NewStayRange(in, in.AddDate(0, 0, reservation.MaxStayNights+1))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)

		s, err := reservation.NewStayRange(in, in.AddDate(0, 0, reservation.MaxStayNights))
		require.NoError(t, err)
		assert.Equal(t, reservation.MaxStayNights, s.Nights())
	})
}

func TestNightlyPriceCalculator(t *testing.T) {
	pc := reservation.NewNightlyPriceCalculator()

	total, err := pc.CalculateTotalCents(12000, mustStay(t, "2025-03-01", "2025-03-06"))
	require.NoError(t, err)
	assert.Equal(t, int64(60000), total)

	_, err = pc.CalculateTotalCents(100_000_000_000_000_000, mustStay(t, "2025-01-01", "2025-04-11"))
	assert.ErrorIs(t, err, reservation.ErrTotalPriceOverflow)

	_, err = pc.CalculateTotalCents(-1, mustStay(t, "2025-01-01", "2025-01-02"))
	assert.ErrorIs(t, err, reservation.ErrNegativePrice)
}

func TestNewGuestIdentity(t *testing.T) {
	g, err := reservation.NewGuestIdentity("  alice@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", g.String())

	_, err = reservation.NewGuestIdentity("   ")
	assert.ErrorIs(t, err, reservation.ErrEmptyGuestIdentity)

	long := make([]byte, reservation.MaxGuestIdentityLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = reservation.NewGuestIdentity(string(long))
	assert.ErrorIs(t, err, reservation.ErrGuestIdentityTooLong)
}
