package bykey

import "errors"

// Sentinel errors returned by bykey operations.
var (
	// ErrKeyNotFound is returned by [GetOrFail] when the requested key has
	// no entry in the result map.
	ErrKeyNotFound = errors.New("bykey: key not found")
)
