package bykey

import "cmp"

// Extrema holds the values paired with the smallest and largest order key
// seen for one bucket. Min and Max are the same value when the bucket saw a
// single element.
type Extrema[V any] struct {
	Min V
	Max V
}

// extremaState tracks a bucket's running minimum and maximum. The order
// keys only move outward as more elements arrive; minOrder ≤ maxOrder holds
// after every update.
type extremaState[V, O any] struct {
	minValue V
	minOrder O
	maxValue V
	maxOrder O
}

// ExtremaBy tracks, per key, the projected value carrying the smallest and
// largest order key. The value can be anything — including the element
// itself — so callers can recover "the reading with this sensor's earliest
// timestamp", not just the timestamp:
//
//	spans := bykey.ExtremaBy(readings,
//	    func(r Reading) string { return r.Sensor },
//	    func(r Reading) Reading { return r },
//	    func(r Reading) int { return r.Timestamp })
//
// Updates use strict < on the order key, so on a tie the earliest-seen
// value is kept. Projections run once per element: key first, then order,
// then value.
func ExtremaBy[E any, K comparable, V any, O cmp.Ordered](items []E, key func(E) K, val func(E) V, order func(E) O, hint ...int) map[K]Extrema[V] {
	return ExtremaByFunc(items, key, val, order, cmp.Less[O], hint...)
}

// ExtremaByFunc is [ExtremaBy] under a caller-supplied strict-less ordering
// of the order keys.
func ExtremaByFunc[E any, K comparable, V, O any](items []E, key func(E) K, val func(E) V, order func(E) O, less func(a, b O) bool, hint ...int) map[K]Extrema[V] {
	states := make(map[K]extremaState[V, O], capacity(len(items), hint))
	for _, item := range items {
		k := key(item)
		o := order(item)
		v := val(item)
		st, ok := states[k]
		if !ok {
			states[k] = extremaState[V, O]{minValue: v, minOrder: o, maxValue: v, maxOrder: o}
			continue
		}
		if less(o, st.minOrder) {
			st.minOrder = o
			st.minValue = v
		}
		if less(st.maxOrder, o) {
			st.maxOrder = o
			st.maxValue = v
		}
		states[k] = st
	}
	out := make(map[K]Extrema[V], len(states))
	for k, st := range states {
		out[k] = Extrema[V]{Min: st.minValue, Max: st.maxValue}
	}
	return out
}

// MinMaxBy is [ExtremaBy] with the value projection doubling as the order
// projection: per key, the smallest and largest projected value. Note val
// is therefore invoked twice per element and should be pure (or account for
// both calls, order slot first).
func MinMaxBy[E any, K comparable, V cmp.Ordered](items []E, key func(E) K, val func(E) V, hint ...int) map[K]Extrema[V] {
	return ExtremaBy(items, key, val, val, hint...)
}

// TryExtremaBy is [ExtremaBy] with fallible projections. The first error
// aborts the pass; no partial extrema are returned.
func TryExtremaBy[E any, K comparable, V any, O cmp.Ordered](items []E, key func(E) (K, error), val func(E) (V, error), order func(E) (O, error), hint ...int) (map[K]Extrema[V], error) {
	states := make(map[K]extremaState[V, O], capacity(len(items), hint))
	for _, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		o, err := order(item)
		if err != nil {
			return nil, err
		}
		v, err := val(item)
		if err != nil {
			return nil, err
		}
		st, ok := states[k]
		if !ok {
			states[k] = extremaState[V, O]{minValue: v, minOrder: o, maxValue: v, maxOrder: o}
			continue
		}
		if cmp.Less(o, st.minOrder) {
			st.minOrder = o
			st.minValue = v
		}
		if cmp.Less(st.maxOrder, o) {
			st.maxOrder = o
			st.maxValue = v
		}
		states[k] = st
	}
	out := make(map[K]Extrema[V], len(states))
	for k, st := range states {
		out[k] = Extrema[V]{Min: st.minValue, Max: st.maxValue}
	}
	return out, nil
}
