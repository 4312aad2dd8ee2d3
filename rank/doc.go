// Package rank converts the unordered key→value maps produced by package
// bykey into deterministically ordered (key, value) pair sequences, with
// top-k / bottom-k slicing for reporting:
//
//	freq := bykey.CountBy(words, self)
//	top  := rank.TopKByValue(freq, 10) // most frequent first
//
// The source map is never mutated. TopK is a full sort followed by a slice,
// which is the right trade-off for reporting on modest key spaces; it is
// not a partial-selection algorithm for huge inputs.
package rank
