package sequence

import (
	"reflect"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

// Map transforms each value with fn. Keys and termination pass through.
func (s *Sequence) Map(fn Mapper) *Sequence {
	if err := validation.Callable("mapper", fn); err != nil {
		return s.fail("map", err)
	}
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		return upstream(func(st Step) bool {
			st.Value = fn(st.Value, st.Key, st.Source)
			return downstream(st)
		})
	})
}

// Filter keeps the values fn accepts.
func (s *Sequence) Filter(fn Predicate) *Sequence {
	if err := validation.Callable("predicate", fn); err != nil {
		return s.fail("filter", err)
	}
	return s.Pipe(filterStage(fn, true))
}

// Reject drops the values fn accepts.
func (s *Sequence) Reject(fn Predicate) *Sequence {
	if err := validation.Callable("predicate", fn); err != nil {
		return s.fail("reject", err)
	}
	return s.Pipe(filterStage(fn, false))
}

// Compact keeps truthy values; see Truthy.
func (s *Sequence) Compact() *Sequence {
	return s.Pipe(filterStage(func(v, _, _ any) bool { return Truthy(v) }, true))
}

func filterStage(fn Predicate, keep bool) Stage {
	return func(upstream Upstream, downstream Downstream) bool {
		return upstream(func(st Step) bool {
			if fn(st.Value, st.Key, st.Source) != keep {
				return true
			}
			return downstream(st)
		})
	}
}

// Take keeps the first count values (default 1) and stops the source right
// after the last one. A count of zero or less yields nothing without
// visiting the source.
func (s *Sequence) Take(count ...int) *Sequence {
	n := countArg(count)
	if n <= 0 {
		return s.Pipe(func(Upstream, Downstream) bool { return true })
	}
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		taken := 0
		stopped := false
		upstream(func(st Step) bool {
			taken++
			if !downstream(st) {
				stopped = true
				return false
			}
			return taken < n
		})
		return !stopped
	})
}

// Head is Take.
func (s *Sequence) Head(count ...int) *Sequence { return s.Take(count...) }

// TakeWhile keeps values until fn first fails. The failing value is not
// forwarded and the source is not pulled further.
func (s *Sequence) TakeWhile(fn Predicate) *Sequence {
	if err := validation.Callable("predicate", fn); err != nil {
		return s.fail("takeWhile", err)
	}
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		stopped := false
		upstream(func(st Step) bool {
			if !fn(st.Value, st.Key, st.Source) {
				return false
			}
			if !downstream(st) {
				stopped = true
				return false
			}
			return true
		})
		return !stopped
	})
}

// Drop skips the first count values (default 1). Negative counts skip none.
func (s *Sequence) Drop(count ...int) *Sequence {
	n := max(countArg(count), 0)
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		skipped := 0
		return upstream(func(st Step) bool {
			if skipped < n {
				skipped++
				return true
			}
			return downstream(st)
		})
	})
}

// Skip is Drop.
func (s *Sequence) Skip(count ...int) *Sequence { return s.Drop(count...) }

// Tail is Drop.
func (s *Sequence) Tail(count ...int) *Sequence { return s.Drop(count...) }

// DropWhile skips every value fn accepts, wherever it occurs; values fn
// rejects pass through. "unexpected" with fn matching 'e' yields "unxpctd".
func (s *Sequence) DropWhile(fn Predicate) *Sequence {
	if err := validation.Callable("predicate", fn); err != nil {
		return s.fail("dropWhile", err)
	}
	return s.Pipe(filterStage(fn, false))
}

// Chunk groups values into []any slices of size (default 1), keyed by
// chunk index. A trailing partial chunk is emitted unless the walk was
// stopped downstream. A size below 1 records INVALID_ARGUMENT on the
// sequence, which every terminal then returns.
func (s *Sequence) Chunk(size ...int) *Sequence {
	n := countArg(size)
	if n < 1 {
		return s.fail("chunk", errors.InvalidArgument("chunk size must be at least 1, got %d", n))
	}
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		var (
			buf     []any
			index   int
			last    any
			stopped bool
		)
		upstream(func(st Step) bool {
			if buf == nil {
				buf = make([]any, 0, min(n, 64))
			}
			buf = append(buf, st.Value)
			last = st.Source
			if len(buf) < n {
				return true
			}
			chunk := buf
			buf = nil
			if !downstream(Step{Value: chunk, Key: index, Source: st.Source}) {
				stopped = true
				return false
			}
			index++
			return true
		})
		if stopped {
			return false
		}
		if len(buf) > 0 {
			return downstream(Step{Value: buf, Key: index, Source: last})
		}
		return true
	})
}

// Flatten expands values that are sequences, slices or arrays one level
// deep. Strings and byte slices stay whole. Keys become the running output
// index. A nested sequence carrying an error contributes nothing.
func (s *Sequence) Flatten() *Sequence {
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		index := 0
		stopped := false
		upstream(func(st Step) bool {
			forward := func(value any) bool {
				ok := downstream(Step{Value: value, Key: index, Source: st.Source})
				index++
				if !ok {
					stopped = true
				}
				return ok
			}
			switch inner := st.Value.(type) {
			case *Sequence:
				if inner == nil || inner.err != nil {
					return true
				}
				// Inner pulls belong to no drive of inner; keep its counter as found.
				saved := inner.pulled
				inner.driver(func(is Step) bool { return forward(is.Value) })
				inner.pulled = saved
				return !stopped
			case []any:
				for _, v := range inner {
					if !forward(v) {
						return false
					}
				}
				return true
			case string, []byte:
				return forward(st.Value)
			}
			rv := reflect.ValueOf(st.Value)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				for i := 0; i < rv.Len(); i++ {
					if !forward(rv.Index(i).Interface()) {
						return false
					}
				}
				return true
			default:
				return forward(st.Value)
			}
		})
		return !stopped
	})
}

// Flat is Flatten.
func (s *Sequence) Flat() *Sequence { return s.Flatten() }

// Tap calls fn for each value and forwards it unchanged.
func (s *Sequence) Tap(fn Inspector) *Sequence {
	if err := validation.Callable("inspector", fn); err != nil {
		return s.fail("tap", err)
	}
	return s.Pipe(func(upstream Upstream, downstream Downstream) bool {
		return upstream(func(st Step) bool {
			fn(st.Value, st.Key, st.Source)
			return downstream(st)
		})
	})
}

// countArg returns the optional count, defaulting to 1.
func countArg(count []int) int {
	if len(count) == 0 {
		return 1
	}
	return count[0]
}
