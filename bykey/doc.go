// Package bykey provides generic "group/aggregate by derived key" algorithms
// over plain slices and single-pass sequences.
//
// Every operation follows the same shape: walk the input once, compute a key
// for each element with a caller-supplied projection, locate or create the
// bucket for that key in a map, and combine the element's projected value
// into the bucket. What varies is the bucket and the combine policy:
//
//	counts  := bykey.CountBy(words, firstLetter)            // increment
//	byID    := bykey.IndexBy(users, id, self, true)         // last wins
//	groups  := bykey.GroupBy(words, signature)              // append
//	totals  := bykey.AccumulateBy(scores, team, points)     // sum
//	spans   := bykey.ExtremaBy(readings, sensor, self, ts)  // min/max
//
// # Ownership and purity
//
// Results are fresh maps (or slices) owned by the caller — never views into
// the input. The input is only read; callers may reuse it afterwards. No
// operation keeps state between calls.
//
// # Projections
//
// Each projection is invoked exactly once per element, in input order. That
// guarantee is part of the contract: projections are allowed to carry
// mutable captured state (for example a running index), and the engine will
// never reorder, skip, or repeat an evaluation. Within one element the
// evaluation order is key first, then order (for extrema), then value.
//
// Projections that can fail have Try-prefixed counterparts taking
// func(E) (X, error) projections. They fail fast: the first error aborts
// the pass and no partial result is returned.
//
// # Capacity hints
//
// Operations accept an optional trailing expected-unique-key count used only
// to pre-size the result map:
//
//	freq := bykey.CountBy(events, kind, 16)
//
// Omitted or non-positive hints fall back to the input length. Hints are a
// pure performance knob; a wrong hint never changes results.
//
// # Reductions
//
// Custom aggregation policy is a [Traits] value bundling an identity and a
// combine function; [FinalizerTraits] adds a finalize step that converts the
// internal accumulator into a different published result type (see
// [TransformFinalizeBy] for a running-average example). [Fold] builds a
// Traits from a plain (initial value, binary operator) pair, and
// [ReduceBy] accepts that pair directly; the two spellings agree.
//
// # Related packages
//
// Package rank turns the unordered maps built here into deterministically
// ordered, top-k-sliced pair sequences. Package pipe wraps these operations
// into bound values that can be applied to a sequence in left-to-right
// pipeline style.
package bykey
