package sequence

import "slices"

// Reverse drains the chain and returns a new Sequence over the values in
// reverse order, keyed by their new positions. The receiver is left as is.
// An error from the drain is carried by the returned Sequence.
func (s *Sequence) Reverse() *Sequence {
	items, err := s.collect("reverse")
	out := s.derive(items)
	if err != nil {
		out.err = err
		return out
	}
	slices.Reverse(items)
	return out
}
