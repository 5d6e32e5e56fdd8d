package signature

import (
	"fmt"
	"math"
)

// Distance computes the normalized structural distance between two
// signature vectors:
//
//	d(a, b) = Σ wi·|log(ai+1) − log(bi+1)| / Σ wi·log(max(ai,bi)+2)
//
// which is bounded in [0, 1]: termwise, |log(ai+1)-log(bi+1)| never exceeds
// log(max(ai,bi)+2), so the ratio of sums never exceeds 1. It is symmetric
// in a and b, and returns 0 when a and b are identical (both sums cancel
// exactly, or both vectors are all-zero and the denominator is 0).
//
// weights may be nil, in which case every entry is weighted 1. A non-nil
// weights slice must have the same length as a and b.
func Distance(a, b []int, weights []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("signature: distance operands have different length: %d vs %d", len(a), len(b))
	}
	if weights != nil && len(weights) != len(a) {
		return 0, fmt.Errorf("signature: weights length %d does not match vector length %d", len(weights), len(a))
	}

	var numerator, denominator float64
	for i := range a {
		if a[i] < 0 || b[i] < 0 {
			return 0, fmt.Errorf("signature: negative signature entry at index %d", i)
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		ai, bi := float64(a[i]), float64(b[i])
		numerator += w * math.Abs(math.Log(ai+1)-math.Log(bi+1))
		denominator += w * math.Log(math.Max(ai, bi)+2)
	}

	if denominator == 0 {
		return 0, nil
	}
	return numerator / denominator, nil
}
