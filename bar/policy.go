package bar

import "math"

// SkipPolicy decides whether a series can keep its on-screen bar.
// prev and next are raw values under the same limit.
type SkipPolicy func(prev, next float64) bool

// ExactEqualitySkip skips a redraw only on bit-exact equality.
// Values reached through repeated arithmetic may never compare equal and are redrawn.
func ExactEqualitySkip(prev, next float64) bool {
	return prev == next
}

// EpsilonSkip skips a redraw when values differ by at most eps.
// The skipped series keeps its previous value so drift cannot accumulate unseen.
func EpsilonSkip(eps float64) SkipPolicy {
	eps = math.Abs(eps)
	return func(prev, next float64) bool {
		return math.Abs(prev-next) <= eps
	}
}
