package pipe

import (
	"cmp"

	"github.com/hasbyte1/go-bykey/bykey"
)

// Op is a bound operation waiting for its input sequence.
type Op[E, R any] struct {
	run func(items []E) R
}

// Apply runs the bound operation on items.
func (op Op[E, R]) Apply(items []E) R { return op.run(items) }

// Apply runs a bound operation on items. It reads left to right:
//
//	sums := pipe.Apply(numbers, pipe.Accumulate(parity, self))
func Apply[E, R any](items []E, op Op[E, R]) R { return op.run(items) }

// New wraps an arbitrary sequence-consuming function as an [Op], so custom
// operations compose the same way as the built-in ones.
func New[E, R any](run func(items []E) R) Op[E, R] {
	return Op[E, R]{run: run}
}

// Split is a partition result carried as a single value so it can flow out
// of an [Op]. Input order is preserved within each branch.
type Split[V any] struct {
	Trues  []V
	Falses []V
}

// Count binds [bykey.CountBy].
func Count[E any, K comparable](key func(E) K, hint ...int) Op[E, map[K]int] {
	return New(func(items []E) map[K]int {
		return bykey.CountBy(items, key, hint...)
	})
}

// Index binds [bykey.IndexBy].
func Index[E any, K comparable, V any](key func(E) K, val func(E) V, overwrite bool, hint ...int) Op[E, map[K]V] {
	return New(func(items []E) map[K]V {
		return bykey.IndexBy(items, key, val, overwrite, hint...)
	})
}

// Group binds [bykey.GroupBy].
func Group[E any, K comparable](key func(E) K, hint ...int) Op[E, map[K][]E] {
	return New(func(items []E) map[K][]E {
		return bykey.GroupBy(items, key, hint...)
	})
}

// GroupValues binds [bykey.GroupValuesBy].
func GroupValues[E any, K comparable, V any](key func(E) K, val func(E) V, hint ...int) Op[E, map[K][]V] {
	return New(func(items []E) map[K][]V {
		return bykey.GroupValuesBy(items, key, val, hint...)
	})
}

// Accumulate binds [bykey.AccumulateBy].
func Accumulate[E any, K comparable, V bykey.Summable](key func(E) K, val func(E) V, hint ...int) Op[E, map[K]V] {
	return New(func(items []E) map[K]V {
		return bykey.AccumulateBy(items, key, val, hint...)
	})
}

// Reduce binds [bykey.ReduceBy].
func Reduce[E any, K comparable, V, A any](key func(E) K, val func(E) V, init A, combine func(A, V) A, hint ...int) Op[E, map[K]A] {
	return New(func(items []E) map[K]A {
		return bykey.ReduceBy(items, key, val, init, combine, hint...)
	})
}

// TransformReduce binds [bykey.TransformReduceBy].
func TransformReduce[E any, K comparable, V, A any](key func(E) K, val func(E) V, traits bykey.Traits[V, A], hint ...int) Op[E, map[K]A] {
	return New(func(items []E) map[K]A {
		return bykey.TransformReduceBy(items, key, val, traits, hint...)
	})
}

// TransformFinalize binds [bykey.TransformFinalizeBy].
func TransformFinalize[E any, K comparable, V, A, R any](key func(E) K, val func(E) V, traits bykey.FinalizerTraits[V, A, R], hint ...int) Op[E, map[K]R] {
	return New(func(items []E) map[K]R {
		return bykey.TransformFinalizeBy(items, key, val, traits, hint...)
	})
}

// Extrema binds [bykey.ExtremaBy].
func Extrema[E any, K comparable, V any, O cmp.Ordered](key func(E) K, val func(E) V, order func(E) O, hint ...int) Op[E, map[K]bykey.Extrema[V]] {
	return New(func(items []E) map[K]bykey.Extrema[V] {
		return bykey.ExtremaBy(items, key, val, order, hint...)
	})
}

// Partition binds [bykey.PartitionBy], carrying the two branches in a
// [Split].
func Partition[E any](pred func(E) bool) Op[E, Split[E]] {
	return New(func(items []E) Split[E] {
		trues, falses := bykey.PartitionBy(items, pred)
		return Split[E]{Trues: trues, Falses: falses}
	})
}

// PartitionValues binds [bykey.PartitionValuesBy].
func PartitionValues[E, V any](pred func(E) bool, val func(E) V) Op[E, Split[V]] {
	return New(func(items []E) Split[V] {
		trues, falses := bykey.PartitionValuesBy(items, pred, val)
		return Split[V]{Trues: trues, Falses: falses}
	})
}
