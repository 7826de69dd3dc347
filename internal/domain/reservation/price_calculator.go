package reservation

import (
	"errors"
	"math"
)

var ErrTotalPriceOverflow = errors.New("total price exceeds the supported range")

type PriceCalculator interface {
	CalculateTotalCents(nightlyRateCents int64, stay StayRange) (int64, error)
}

// NightlyPriceCalculator charges the room's nightly rate for every night of the stay.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculateTotalCents(nightlyRateCents int64, stay StayRange) (int64, error) {
	if nightlyRateCents < 0 {
		return 0, ErrNegativePrice
	}
	nights := int64(stay.Nights())
	if nights > 0 && nightlyRateCents > math.MaxInt64/nights {
		return 0, ErrTotalPriceOverflow
	}
	return nightlyRateCents * nights, nil
}
