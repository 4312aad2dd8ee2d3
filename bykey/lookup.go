package bykey

// GetOrFail returns the value stored under key in a result map, or
// [ErrKeyNotFound] when the key was never observed. Use it where a missing
// key is a genuine error; for the "maybe absent" case the plain
// two-value map index is enough.
func GetOrFail[K comparable, V any](m map[K]V, key K) (V, error) {
	v, ok := m[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return v, nil
}
