package bykey

// Summable is the set of types the built-in + operator can fold, with the
// zero value as a useful identity. It is the default aggregation domain of
// [AccumulateBy].
type Summable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~string
}

// Traits bundles the aggregation policy for [TransformReduceBy]: how to seed
// a fresh bucket and how to fold one projected value into it. Keeping the
// policy separate from the engine lets the same accumulation loop serve
// sums, running statistics, or any custom reduction.
type Traits[V, A any] struct {
	// Identity returns the seed accumulator for a freshly created bucket.
	// It is called once per distinct key, so it may build mutable state
	// (slices, maps) without sharing between buckets.
	Identity func() A

	// Combine folds one projected value into the accumulator and returns
	// the updated accumulator.
	Combine func(acc A, v V) A
}

// FinalizerTraits extends [Traits] with a finalize step that converts the
// internal accumulator into a different published result type. Used with
// [TransformFinalizeBy]; the accumulator type never escapes.
type FinalizerTraits[V, A, R any] struct {
	Traits[V, A]

	// Finalize converts a bucket's final accumulator into the result value
	// exposed to the caller.
	Finalize func(acc A) R
}

// Fold builds a [Traits] from a plain (initial value, binary operator) pair.
// [ReduceBy] with the same pair produces identical results.
//
// The init value is returned as-is for every new bucket. For accumulator
// types with reference semantics (a pre-populated slice or map), supply a
// Traits with an Identity that builds a fresh value instead.
func Fold[V, A any](init A, combine func(A, V) A) Traits[V, A] {
	return Traits[V, A]{
		Identity: func() A { return init },
		Combine:  combine,
	}
}

// SumOf returns the summing [Traits]: zero identity, + combine. It is the
// policy behind [AccumulateBy].
func SumOf[V Summable]() Traits[V, V] {
	return Traits[V, V]{
		Identity: func() (zero V) { return },
		Combine:  func(acc, v V) V { return acc + v },
	}
}
