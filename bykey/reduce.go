package bykey

import (
	"iter"
	"slices"
)

// ReduceBy folds projected values into one accumulator per key using a
// plain (initial value, binary operator) pair. Each new bucket is seeded
// with init; combine is applied exactly once per element.
//
//	letters := bykey.ReduceBy(words,
//	    signature,
//	    func(w string) string { return w },
//	    []string{},
//	    func(acc []string, w string) []string { return append(acc, w) })
//
// The init value is reused as-is for every new bucket; see [Fold] for the
// caveat on accumulators with reference semantics.
func ReduceBy[E any, K comparable, V, A any](items []E, key func(E) K, val func(E) V, init A, combine func(A, V) A, hint ...int) map[K]A {
	return ReduceBySeq(slices.Values(items), key, val, init, combine, capacity(len(items), hint))
}

// ReduceBySeq is [ReduceBy] over a single-pass sequence.
func ReduceBySeq[E any, K comparable, V, A any](seq iter.Seq[E], key func(E) K, val func(E) V, init A, combine func(A, V) A, hint ...int) map[K]A {
	return TransformReduceBySeq(seq, key, val, Fold(init, combine), hint...)
}

// TransformReduceBy folds projected values per key under the policy carried
// by traits: Identity seeds each new bucket, Combine folds one value in.
// For a policy whose published result type differs from the accumulator,
// use [TransformFinalizeBy].
func TransformReduceBy[E any, K comparable, V, A any](items []E, key func(E) K, val func(E) V, traits Traits[V, A], hint ...int) map[K]A {
	return TransformReduceBySeq(slices.Values(items), key, val, traits, capacity(len(items), hint))
}

// TransformReduceBySeq is [TransformReduceBy] over a single-pass sequence.
func TransformReduceBySeq[E any, K comparable, V, A any](seq iter.Seq[E], key func(E) K, val func(E) V, traits Traits[V, A], hint ...int) map[K]A {
	accs := make(map[K]A, capacity(0, hint))
	for item := range seq {
		k := key(item)
		v := val(item)
		acc, ok := accs[k]
		if !ok {
			acc = traits.Identity()
		}
		accs[k] = traits.Combine(acc, v)
	}
	return accs
}

// TransformFinalizeBy is [TransformReduceBy] for traits with a finalize
// step: after the single pass, every bucket's accumulator is converted to
// the published result type. The accumulator type never escapes.
//
//	avg := bykey.TransformFinalizeBy(samples, bucket, value,
//	    bykey.FinalizerTraits[int, meanState, float64]{
//	        Traits: bykey.Traits[int, meanState]{
//	            Identity: func() meanState { return meanState{} },
//	            Combine: func(s meanState, v int) meanState {
//	                s.sum += float64(v)
//	                s.n++
//	                return s
//	            },
//	        },
//	        Finalize: func(s meanState) float64 { return s.sum / float64(s.n) },
//	    })
func TransformFinalizeBy[E any, K comparable, V, A, R any](items []E, key func(E) K, val func(E) V, traits FinalizerTraits[V, A, R], hint ...int) map[K]R {
	accs := TransformReduceBy(items, key, val, traits.Traits, hint...)
	out := make(map[K]R, len(accs))
	for k, acc := range accs {
		out[k] = traits.Finalize(acc)
	}
	return out
}

// TryReduceBy is [ReduceBy] with fallible projections. The first error
// aborts the pass; no partial map is returned.
func TryReduceBy[E any, K comparable, V, A any](items []E, key func(E) (K, error), val func(E) (V, error), init A, combine func(A, V) A, hint ...int) (map[K]A, error) {
	return TryTransformReduceBy(items, key, val, Fold(init, combine), hint...)
}

// TryTransformReduceBy is [TransformReduceBy] with fallible projections.
func TryTransformReduceBy[E any, K comparable, V, A any](items []E, key func(E) (K, error), val func(E) (V, error), traits Traits[V, A], hint ...int) (map[K]A, error) {
	accs := make(map[K]A, capacity(len(items), hint))
	for _, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		v, err := val(item)
		if err != nil {
			return nil, err
		}
		acc, ok := accs[k]
		if !ok {
			acc = traits.Identity()
		}
		accs[k] = traits.Combine(acc, v)
	}
	return accs, nil
}
