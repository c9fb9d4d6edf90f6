package generate

import (
	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqkit/validation"
)

// Number is the set of types the numeric generators count in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Counter yields start, start+step, start+2*step, ... without end.
func Counter[N Number](start, step N) *Generator {
	if err := validation.New().
		Finite("start", float64(start)).
		Finite("step", float64(step)).
		Err(); err != nil {
		return failed(err)
	}
	current := start
	return newGenerator(func() (any, bool) {
		v := current
		current += step
		return v, true
	})
}

// Range yields the half-open interval [start, stop) in increments of step.
// A negative step counts down; a zero step is rejected.
func Range[N Number](start, stop, step N) *Generator {
	if err := validation.New().
		Finite("start", float64(start)).
		Finite("stop", float64(stop)).
		Finite("step", float64(step)).
		NonZero("step", float64(step)).
		Err(); err != nil {
		return failed(err)
	}
	current := start
	done := false
	return newGenerator(func() (any, bool) {
		if done || (step > 0 && current >= stop) || (step < 0 && current <= stop) {
			return nil, false
		}
		v := current
		next := current + step
		// Stop instead of wrapping around at the edge of an integer type.
		if (step > 0 && next <= current) || (step < 0 && next >= current) {
			done = true
		}
		current = next
		return v, true
	})
}

// RangeTo yields 0, 1, ..., stop-1.
func RangeTo[N Number](stop N) *Generator {
	return Range(N(0), stop, N(1))
}

// Repeat yields value times times. Infinite (or any negative count)
// repeats forever.
func Repeat(value any, times int) *Generator {
	if times < 0 {
		return newGenerator(func() (any, bool) { return value, true })
	}
	n := 0
	return newGenerator(func() (any, bool) {
		if n >= times {
			return nil, false
		}
		n++
		return value, true
	})
}
