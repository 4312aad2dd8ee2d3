package bykey

import (
	"iter"
	"slices"
)

// CountBy counts how many elements map to each key. The sum of all counts
// equals len(items).
//
//	freq := bykey.CountBy([]int{1, 2, 2, 3, 1, 4}, func(x int) int { return x })
//	// → map[1:2 2:2 3:1 4:1]
func CountBy[E any, K comparable](items []E, key func(E) K, hint ...int) map[K]int {
	return CountBySeq(slices.Values(items), key, capacity(len(items), hint))
}

// CountBySeq counts over a single-pass sequence. The sequence is consumed
// exactly once, in order.
func CountBySeq[E any, K comparable](seq iter.Seq[E], key func(E) K, hint ...int) map[K]int {
	freq := make(map[K]int, capacity(0, hint))
	for item := range seq {
		freq[key(item)]++
	}
	return freq
}

// TryCountBy is [CountBy] with a fallible key projection. The first
// projection error aborts the pass; no partial counts are returned.
func TryCountBy[E any, K comparable](items []E, key func(E) (K, error), hint ...int) (map[K]int, error) {
	freq := make(map[K]int, capacity(len(items), hint))
	for _, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		freq[k]++
	}
	return freq, nil
}
