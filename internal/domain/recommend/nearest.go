package recommend

import (
	"math"
	"sort"
)

// Nearest returns up to k candidates ordered by price distance to the closest
// reference price. Equal distances keep the candidates' input order, so the
// result is deterministic for identical inputs. No references or k <= 0
// yields an empty result.
func Nearest[T any](refs []float64, candidates []T, k int, price func(T) float64) []T {
	if len(refs) == 0 || k <= 0 || len(candidates) == 0 {
		return []T{}
	}

	type scored struct {
		item T
		dist float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{item: c, dist: Distance(refs, price(c))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].item
	}
	return out
}

// Distance is the one-dimensional euclidean distance from p to the nearest reference.
func Distance(refs []float64, p float64) float64 {
	best := math.Inf(1)
	for _, r := range refs {
		if d := math.Abs(p - r); d < best {
			best = d
		}
	}
	return best
}
