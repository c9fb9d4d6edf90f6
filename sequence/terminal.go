package sequence

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

// ToArray collects every value. The slice is never nil on success.
func (s *Sequence) ToArray() ([]any, error) {
	return s.collect("toArray")
}

// Items is ToArray.
func (s *Sequence) Items() ([]any, error) { return s.ToArray() }

func (s *Sequence) collect(operation string) ([]any, error) {
	out := []any{}
	_, err := s.drive(operation, func(st Step) bool {
		out = append(out, st.Value)
		return true
	}, nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reduce folds the values with fn. Without an initial value (or with nil)
// the first element seeds the accumulator and fn starts at the second.
// Reducing an empty sequence without a seed fails with EMPTY_REDUCTION.
func (s *Sequence) Reduce(fn Aggregator, initial ...any) (any, error) {
	if s.err != nil {
		return nil, s.err
	}
	if err := validation.Callable("aggregator", fn); err != nil {
		s.report("reduce", err)
		return nil, err
	}

	var acc any
	seeded := len(initial) > 0 && initial[0] != nil
	if seeded {
		acc = initial[0]
	}
	_, err := s.drive("reduce", func(st Step) bool {
		if !seeded {
			acc = st.Value
			seeded = true
			return true
		}
		acc = fn(acc, st.Value, st.Key, st.Source)
		return true
	}, func(bool) error {
		if !seeded {
			return errors.EmptyReduction()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// First returns the first value, pulling a single element.
func (s *Sequence) First() (any, bool, error) {
	return s.find("first", nil)
}

// Last returns the final value. The whole source is walked.
func (s *Sequence) Last() (any, bool, error) {
	var (
		last  any
		found bool
	)
	_, err := s.drive("last", func(st Step) bool {
		last, found = st.Value, true
		return true
	}, nil)
	if err != nil {
		return nil, false, err
	}
	return last, found, nil
}

// Find returns the first value fn accepts and stops there.
func (s *Sequence) Find(fn Predicate) (any, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	if err := validation.Callable("predicate", fn); err != nil {
		s.report("find", err)
		return nil, false, err
	}
	return s.find("find", fn)
}

func (s *Sequence) find(operation string, fn Predicate) (any, bool, error) {
	var (
		hit   any
		found bool
	)
	_, err := s.drive(operation, func(st Step) bool {
		if fn != nil && !fn(st.Value, st.Key, st.Source) {
			return true
		}
		hit, found = st.Value, true
		return false
	}, nil)
	if err != nil {
		return nil, false, err
	}
	return hit, found, nil
}

// Get returns the value at the zero-based position index, stopping once it
// is reached. Negative or out-of-range positions report false.
func (s *Sequence) Get(index int) (any, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	if index < 0 {
		return nil, false, nil
	}
	pos := 0
	return s.find("get", func(_, _, _ any) bool {
		pos++
		return pos-1 == index
	})
}

// Each calls fn for every value until fn returns false.
func (s *Sequence) Each(fn Visitor) error {
	if s.err != nil {
		return s.err
	}
	if err := validation.Callable("visitor", fn); err != nil {
		s.report("each", err)
		return err
	}
	_, err := s.drive("each", func(st Step) bool {
		return fn(st.Value, st.Key, st.Source)
	}, nil)
	return err
}

// ForEach is Each.
func (s *Sequence) ForEach(fn Visitor) error { return s.Each(fn) }

// All reports whether fn accepts every value, stopping at the first
// rejection. An empty sequence reports true.
func (s *Sequence) All(fn Predicate) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if err := validation.Callable("predicate", fn); err != nil {
		s.report("all", err)
		return false, err
	}
	ok := true
	_, err := s.drive("all", func(st Step) bool {
		ok = fn(st.Value, st.Key, st.Source)
		return ok
	}, nil)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Every is All.
func (s *Sequence) Every(fn Predicate) (bool, error) { return s.All(fn) }

// Any reports whether fn accepts some value, stopping at the first match.
func (s *Sequence) Any(fn Predicate) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if err := validation.Callable("predicate", fn); err != nil {
		s.report("any", err)
		return false, err
	}
	_, found, err := s.find("any", fn)
	return found, err
}

// Count returns the number of values.
func (s *Sequence) Count() (int, error) {
	n := 0
	_, err := s.drive("count", func(Step) bool {
		n++
		return true
	}, nil)
	if err != nil {
		return 0, err
	}
	return n, nil
}
