package bykey

import (
	"iter"
	"slices"
)

// PartitionBy splits elements into two slices by a boolean predicate: the
// first holds elements for which pred is true, the second the rest. Input
// order is preserved within each branch, and every element lands in exactly
// one of them.
//
//	evens, odds := bykey.PartitionBy(nums, func(n int) bool { return n%2 == 0 })
func PartitionBy[E any](items []E, pred func(E) bool) (trues, falses []E) {
	return PartitionValuesBy(items, pred, func(e E) E { return e })
}

// PartitionValuesBy routes each element's projected value into the true- or
// false-branch slice. The predicate is evaluated before the value
// projection, once each per element.
func PartitionValuesBy[E, V any](items []E, pred func(E) bool, val func(E) V) (trues, falses []V) {
	return partitionSeq(slices.Values(items), pred, val)
}

// PartitionBySeq is [PartitionBy] over a single-pass sequence.
func PartitionBySeq[E any](seq iter.Seq[E], pred func(E) bool) (trues, falses []E) {
	return partitionSeq(seq, pred, func(e E) E { return e })
}

func partitionSeq[E, V any](seq iter.Seq[E], pred func(E) bool, val func(E) V) (trues, falses []V) {
	trues = make([]V, 0)
	falses = make([]V, 0)
	for item := range seq {
		ok := pred(item)
		v := val(item)
		if ok {
			trues = append(trues, v)
		} else {
			falses = append(falses, v)
		}
	}
	return trues, falses
}

// TryPartitionBy is [PartitionValuesBy] with fallible predicate and value
// projection. The first error aborts the pass; both returned slices are nil
// on failure.
func TryPartitionBy[E, V any](items []E, pred func(E) (bool, error), val func(E) (V, error)) (trues, falses []V, err error) {
	trues = make([]V, 0)
	falses = make([]V, 0)
	for _, item := range items {
		ok, err := pred(item)
		if err != nil {
			return nil, nil, err
		}
		v, err := val(item)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			trues = append(trues, v)
		} else {
			falses = append(falses, v)
		}
	}
	return trues, falses, nil
}
