package sequence

// Step is one element travelling through a chain.
type Step struct {
	Value  any
	Key    any
	Source any
}

// Downstream receives steps. Returning false stops the walk.
type Downstream func(Step) bool

// Upstream runs the chain before a stage. It returns true when the source
// was exhausted and false when some downstream stopped it.
type Upstream func(Downstream) bool

// Stage wires one transformation between its upstream and downstream.
// Per-drive state belongs in locals of the stage body.
type Stage func(upstream Upstream, downstream Downstream) bool

// Mapper transforms a value.
type Mapper func(value, key, source any) any

// Predicate tests a value.
type Predicate func(value, key, source any) bool

// Aggregator folds a value into the accumulator.
type Aggregator func(acc, value, key, source any) any

// Visitor observes a value. Returning false stops the walk.
type Visitor func(value, key, source any) bool

// Inspector observes a value without affecting the walk.
type Inspector func(value, key, source any)
