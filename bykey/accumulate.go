package bykey

import "iter"

// AccumulateBy sums projected values per key. Each bucket starts at the
// zero value of V.
//
//	totals := bykey.AccumulateBy(scores,
//	    func(s Score) string { return s.Team },
//	    func(s Score) int { return s.Points })
func AccumulateBy[E any, K comparable, V Summable](items []E, key func(E) K, val func(E) V, hint ...int) map[K]V {
	return TransformReduceBy(items, key, val, SumOf[V](), hint...)
}

// AccumulateBySeq is [AccumulateBy] over a single-pass sequence.
func AccumulateBySeq[E any, K comparable, V Summable](seq iter.Seq[E], key func(E) K, val func(E) V, hint ...int) map[K]V {
	return TransformReduceBySeq(seq, key, val, SumOf[V](), hint...)
}

// AccumulateByInit sums projected values per key, starting every bucket at
// init instead of zero.
func AccumulateByInit[E any, K comparable, V Summable](items []E, key func(E) K, val func(E) V, init V, hint ...int) map[K]V {
	return ReduceBy(items, key, val, init, func(acc, v V) V { return acc + v }, hint...)
}

// TryAccumulateBy is [AccumulateBy] with fallible projections. The first
// error aborts the pass; no partial sums are returned.
func TryAccumulateBy[E any, K comparable, V Summable](items []E, key func(E) (K, error), val func(E) (V, error), hint ...int) (map[K]V, error) {
	return TryTransformReduceBy(items, key, val, SumOf[V](), hint...)
}
