package bykey

import (
	"iter"
	"slices"
)

// GroupBy buckets elements by key, preserving input order within each
// bucket.
//
//	groups := bykey.GroupBy(words, func(w string) byte { return w[0] })
func GroupBy[E any, K comparable](items []E, key func(E) K, hint ...int) map[K][]E {
	return GroupBySeq(slices.Values(items), key, capacity(len(items), hint))
}

// GroupBySeq is [GroupBy] over a single-pass sequence.
func GroupBySeq[E any, K comparable](seq iter.Seq[E], key func(E) K, hint ...int) map[K][]E {
	groups := make(map[K][]E, capacity(0, hint))
	for item := range seq {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// GroupValuesBy buckets projected values instead of the elements themselves.
//
//	namesByDept := bykey.GroupValuesBy(employees,
//	    func(e Employee) string { return e.Dept },
//	    func(e Employee) string { return e.Name })
func GroupValuesBy[E any, K comparable, V any](items []E, key func(E) K, val func(E) V, hint ...int) map[K][]V {
	return GroupByInto(items, key, val, make(map[K][]V, capacity(len(items), hint)))
}

// GroupByInto is [GroupValuesBy] accumulating into a caller-supplied map,
// which is returned; existing buckets are appended to. A nil dst is
// allocated.
func GroupByInto[E any, K comparable, V any](items []E, key func(E) K, val func(E) V, dst map[K][]V) map[K][]V {
	if dst == nil {
		dst = make(map[K][]V, len(items))
	}
	for _, item := range items {
		k := key(item)
		v := val(item)
		dst[k] = append(dst[k], v)
	}
	return dst
}

// TryGroupBy is [GroupBy] with a fallible key projection. The first error
// aborts the pass; no partial groups are returned.
func TryGroupBy[E any, K comparable](items []E, key func(E) (K, error), hint ...int) (map[K][]E, error) {
	groups := make(map[K][]E, capacity(len(items), hint))
	for _, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		groups[k] = append(groups[k], item)
	}
	return groups, nil
}
