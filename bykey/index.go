package bykey

import "iter"

// IndexBy builds a map from each element's key to its projected value.
// With overwrite true the last element for a key wins; with overwrite false
// the first element wins and later values for that key are silently dropped.
// That keep-first behaviour is a contract, not an accident — stateful value
// projections are still invoked once per element either way.
//
//	byID := bykey.IndexBy(users,
//	    func(u User) int { return u.ID },
//	    func(u User) User { return u },
//	    true)
func IndexBy[E any, K comparable, V any](items []E, key func(E) K, val func(E) V, overwrite bool, hint ...int) map[K]V {
	return IndexByInto(items, key, val, make(map[K]V, capacity(len(items), hint)), overwrite)
}

// IndexByInto is [IndexBy] accumulating into a caller-supplied map, which is
// returned. Existing entries participate in conflict resolution: with
// overwrite false they win over any incoming value. A nil dst is allocated.
func IndexByInto[E any, K comparable, V any](items []E, key func(E) K, val func(E) V, dst map[K]V, overwrite bool) map[K]V {
	if dst == nil {
		dst = make(map[K]V, len(items))
	}
	for _, item := range items {
		k := key(item)
		v := val(item)
		if overwrite {
			dst[k] = v
			continue
		}
		if _, seen := dst[k]; !seen {
			dst[k] = v
		}
	}
	return dst
}

// IndexBySeq is [IndexBy] over a single-pass sequence.
func IndexBySeq[E any, K comparable, V any](seq iter.Seq[E], key func(E) K, val func(E) V, overwrite bool, hint ...int) map[K]V {
	dst := make(map[K]V, capacity(0, hint))
	for item := range seq {
		k := key(item)
		v := val(item)
		if overwrite {
			dst[k] = v
			continue
		}
		if _, seen := dst[k]; !seen {
			dst[k] = v
		}
	}
	return dst
}

// TryIndexBy is [IndexBy] with fallible projections. The first error aborts
// the pass; no partial map is returned.
func TryIndexBy[E any, K comparable, V any](items []E, key func(E) (K, error), val func(E) (V, error), overwrite bool, hint ...int) (map[K]V, error) {
	dst := make(map[K]V, capacity(len(items), hint))
	for _, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}
		v, err := val(item)
		if err != nil {
			return nil, err
		}
		if overwrite {
			dst[k] = v
			continue
		}
		if _, seen := dst[k]; !seen {
			dst[k] = v
		}
	}
	return dst, nil
}
