package rfm

import (
	"errors"
	"sort"
)

// errDegenerate reports that a distribution cannot fill five
// equal-population buckets (too many tied values). It never leaves this
// package; Score falls back to fixed thresholds instead.
var errDegenerate = errors.New("rfm: degenerate distribution, fewer than five distinct quantile buckets")

// quantileScores bins values into five equal-population buckets and maps
// bucket 1..5 onto labels[0..4]. Bucket edges are the 0/20/40/60/80/100th
// percentiles with linear interpolation; duplicate edges are dropped, and
// if that leaves fewer than five buckets the binning is degenerate.
func quantileScores(values []float64, labels [5]int) ([]int, error) {
	if len(values) == 0 {
		return nil, errDegenerate
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	edges := make([]float64, 0, 6)

	for i := 0; i <= 5; i++ {
		e := quantile(sorted, float64(i)/5)
		if len(edges) == 0 || e != edges[len(edges)-1] {
			edges = append(edges, e)
		}
	}

	if len(edges) != 6 {
		return nil, errDegenerate
	}

	scores := make([]int, len(values))

	for i, v := range values {
		scores[i] = labels[bucket(edges, v)-1]
	}

	return scores, nil
}

// bucket returns 1..5 for a value against six ascending edges. The first
// bucket is closed on both ends; the rest are half-open (lo, hi].
func bucket(edges []float64, v float64) int {
	for b := 1; b <= 5; b++ {
		if v <= edges[b] {
			return b
		}
	}

	return 5
}

// quantile interpolates linearly between order statistics, matching the
// percentile definition the score contract was written against.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lo := int(pos)

	if lo >= n-1 {
		return sorted[n-1]
	}

	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// thresholdScores is the deterministic fallback: fixed ascending bounds,
// value v gets labels[i] for the first bound with v <= bounds[i], and the
// last label is unbounded so the fallback can never fail.
func thresholdScores(values []float64, bounds [4]float64, labels [5]int) []int {
	scores := make([]int, len(values))

	for i, v := range values {
		scores[i] = labels[4]

		for b, bound := range bounds {
			if v <= bound {
				scores[i] = labels[b]
				break
			}
		}
	}

	return scores
}
