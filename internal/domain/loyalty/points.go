package loyalty

// PointsPerBooking is credited to the guest for every confirmed reservation
// and revoked again if that reservation is canceled.
const PointsPerBooking = 100

type Tier string

const (
	TierStandard  Tier = "standard"
	TierPreferred Tier = "preferred"
	TierExclusive Tier = "exclusive"
)

func (t Tier) String() string {
	return string(t)
}

// Promotion is the discount a guest qualifies for on their next stay.
type Promotion struct {
	Tier       Tier
	PercentOff int
}

// PromotionFor maps a points balance to its promotion. Thresholds are strict:
// exactly 500 points is still standard.
func PromotionFor(points int) Promotion {
	switch {
	case points > 1000:
		return Promotion{Tier: TierExclusive, PercentOff: 50}
	case points > 500:
		return Promotion{Tier: TierPreferred, PercentOff: 25}
	default:
		return Promotion{Tier: TierStandard, PercentOff: 0}
	}
}

// Revoke subtracts points from balance without going below zero.
func Revoke(balance, points int) int {
	if points > balance {
		return 0
	}
	return balance - points
}
