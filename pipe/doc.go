// Package pipe wraps the bykey operations into bound values so a pipeline
// reads left to right, with the sequence flowing into the operation:
//
//	remainders := pipe.Apply(numbers, pipe.Count(func(x int) int { return x % 3 }))
//
// An [Op] captures the operation's arguments (projections, traits, hints)
// at construction and defers to the corresponding bykey function unchanged
// when applied. It adds no semantics of its own. [New] admits custom
// sequence-consuming functions into the same shape.
package pipe
