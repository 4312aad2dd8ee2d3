package bykey

// capacity resolves the optional expected-unique-keys hint for pre-sizing a
// result map. A positive hint wins; otherwise n (the input length, or 0 when
// the length is unknown) is used, sizing for the worst case of all-distinct
// keys. A wrong hint only costs rehashing, never correctness.
func capacity(n int, hint []int) int {
	if len(hint) > 0 && hint[0] > 0 {
		return hint[0]
	}
	return n
}
