//go:build unit

package recommend_test

import (
	"testing"

	"hotel-booking/internal/domain/recommend"

	"github.com/stretchr/testify/assert"
)

type priced struct {
	name  string
	price float64
}

func priceOf(p priced) float64 { return p.price }

func names(ps []priced) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}

func TestNearest(t *testing.T) {
	candidates := []priced{
		{"budget", 50},
		{"standard", 100},
		{"deluxe", 180},
		{"suite", 400},
		{"standard-b", 100},
	}

	t.Run("closest to a single reference", func(t *testing.T) {
		got := recommend.Nearest([]float64{120}, candidates, 3, priceOf)
		assert.Equal(t, []string{"standard", "standard-b", "deluxe"}, names(got))
	})

	t.Run("each reference pulls its own neighbours", func(t *testing.T) {
		got := recommend.Nearest([]float64{55, 390}, candidates, 2, priceOf)
		assert.Equal(t, []string{"budget", "suite"}, names(got))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		got := recommend.Nearest([]float64{100}, candidates, 2, priceOf)
		assert.Equal(t, []string{"standard", "standard-b"}, names(got))
	})

	t.Run("k larger than candidates returns all", func(t *testing.T) {
		got := recommend.Nearest([]float64{0}, candidates, 10, priceOf)
		assert.Len(t, got, len(candidates))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := recommend.Nearest([]float64{150, 60}, candidates, 4, priceOf)
		b := recommend.Nearest([]float64{150, 60}, candidates, 4, priceOf)
		assert.Equal(t, a, b)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, recommend.Nearest(nil, candidates, 3, priceOf))
		assert.Empty(t, recommend.Nearest([]float64{100}, candidates, 0, priceOf))
		assert.Empty(t, recommend.Nearest([]float64{100}, []priced{}, 3, priceOf))
	})
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 10.0, recommend.Distance([]float64{90, 300}, 100), 1e-9)
	assert.InDelta(t, 0.0, recommend.Distance([]float64{100}, 100), 1e-9)
}
