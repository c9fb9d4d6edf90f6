package sequence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kbukum/seqkit/source"
)

// countingSource is a restartable source that counts every element pulled.
type countingSource struct {
	items  []any
	pulls  int
	closed int
	// unbounded sources yield 0, 1, 2, ... forever
	unbounded bool
}

func (c *countingSource) Cursor() source.Cursor {
	return &countingCursor{owner: c}
}

type countingCursor struct {
	owner *countingSource
	pos   int
}

func (c *countingCursor) Next() (any, any, bool) {
	if !c.owner.unbounded && c.pos >= len(c.owner.items) {
		return nil, nil, false
	}
	i := c.pos
	c.pos++
	c.owner.pulls++
	if c.owner.unbounded {
		return i, i, true
	}
	return c.owner.items[i], i, true
}

func (c *countingCursor) Close() error {
	c.owner.closed++
	return nil
}

func ints(n ...int) []any {
	out := make([]any, len(n))
	for i, v := range n {
		out[i] = v
	}
	return out
}

func sliceEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if fmt.Sprint(a[i]) != fmt.Sprint(b[i]) {
			return false
		}
	}
	return true
}

func join(values []any) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprint(&b, v)
	}
	return b.String()
}

func mustArray(t *testing.T, s *Sequence) []any {
	t.Helper()
	out, err := s.ToArray()
	if err != nil {
		t.Fatalf("ToArray() error = %v", err)
	}
	return out
}
