package rank

import (
	"cmp"
	"fmt"
	"sort"
)

// Entry is one (key, value) pair copied out of a result map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// Sorted copies all pairs out of m and sorts them with the given strict-less
// comparator. m is not modified. Determinism under ties is up to the
// comparator: supply a secondary criterion for equal primary keys if it
// matters (the pre-built [TopKByValue] family does).
func Sorted[K comparable, V any](m map[K]V, less func(a, b Entry[K, V]) bool) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// TopK sorts all pairs with less and returns the first k. A k beyond the
// map size returns every entry; k <= 0 returns none.
func TopK[K comparable, V any](m map[K]V, k int, less func(a, b Entry[K, V]) bool) []Entry[K, V] {
	if k < 0 {
		k = 0
	}
	out := Sorted(m, less)
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// TopKByValue returns the k pairs with the largest values, ties broken by
// ascending key.
func TopKByValue[K cmp.Ordered, V cmp.Ordered](m map[K]V, k int) []Entry[K, V] {
	return TopK(m, k, func(a, b Entry[K, V]) bool {
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Key < b.Key
	})
}

// TopKByKey returns the k pairs with the smallest keys, ties broken by
// descending value.
func TopKByKey[K cmp.Ordered, V cmp.Ordered](m map[K]V, k int) []Entry[K, V] {
	return TopK(m, k, func(a, b Entry[K, V]) bool {
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Value > b.Value
	})
}

// BottomKByValue returns the k pairs with the smallest values, ties broken
// by ascending key.
func BottomKByValue[K cmp.Ordered, V cmp.Ordered](m map[K]V, k int) []Entry[K, V] {
	return TopK(m, k, func(a, b Entry[K, V]) bool {
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Key < b.Key
	})
}
