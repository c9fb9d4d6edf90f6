package generate

import "github.com/kbukum/seqkit/source"

// Infinite passed as times to Repeat repeats forever.
const Infinite = -1

// Generator is a single-pass cursor.
type Generator struct {
	next  func() (value, key any, ok bool)
	err   error
	index int
}

var _ source.Cursor = (*Generator)(nil)

func newGenerator(next func() (any, bool)) *Generator {
	g := &Generator{}
	g.next = func() (any, any, bool) {
		v, ok := next()
		if !ok {
			return nil, nil, false
		}
		i := g.index
		g.index++
		return v, i, true
	}
	return g
}

func failed(err error) *Generator {
	return &Generator{err: err}
}

// Next implements source.Cursor. Keys are positions starting at zero.
func (g *Generator) Next() (value, key any, ok bool) {
	if g.err != nil || g.next == nil {
		return nil, nil, false
	}
	value, key, ok = g.next()
	if !ok {
		g.next = nil
	}
	return value, key, ok
}

// Err reports why the generator could not be built.
func (g *Generator) Err() error { return g.err }
