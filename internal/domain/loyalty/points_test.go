//go:build unit

package loyalty_test

import (
	"testing"

	"hotel-booking/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
)

func TestPromotionFor(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   loyalty.Promotion
	}{
		{"no points", 0, loyalty.Promotion{Tier: loyalty.TierStandard}},
		{"exactly 500 stays standard", 500, loyalty.Promotion{Tier: loyalty.TierStandard}},
		{"501 is preferred", 501, loyalty.Promotion{Tier: loyalty.TierPreferred, PercentOff: 25}},
		{"exactly 1000 stays preferred", 1000, loyalty.Promotion{Tier: loyalty.TierPreferred, PercentOff: 25}},
		{"1001 is exclusive", 1001, loyalty.Promotion{Tier: loyalty.TierExclusive, PercentOff: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loyalty.PromotionFor(tt.points)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRevoke(t *testing.T) {
	assert.Equal(t, 100, loyalty.Revoke(200, loyalty.PointsPerBooking))
	assert.Equal(t, 0, loyalty.Revoke(100, loyalty.PointsPerBooking))
	assert.Equal(t, 0, loyalty.Revoke(40, loyalty.PointsPerBooking))
}
