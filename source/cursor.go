package source

import "io"

// Cursor provides pull-based sequential access to the steps of a source.
type Cursor interface {
	// Next returns the next value and its key. ok is false once exhausted.
	Next() (value, key any, ok bool)
}

// Iterable is a restartable source: every call returns a fresh cursor.
type Iterable interface {
	Cursor() Cursor
}

// MapLike is a keyed source with its own key order.
// EntryKeys is read once per walk; values are looked up per step.
type MapLike interface {
	EntryKeys() []any
	Lookup(key any) (any, bool)
}

// SetLike is a source whose elements are their own keys.
// Members is read once per walk.
type SetLike interface {
	Members() []any
}

// CursorFunc adapts a plain function to the Cursor interface.
type CursorFunc func() (value, key any, ok bool)

// Next calls f.
func (f CursorFunc) Next() (value, key any, ok bool) { return f() }

// Empty returns a cursor that is exhausted from the first call.
func Empty() Cursor { return emptyCursor{} }

type emptyCursor struct{}

func (emptyCursor) Next() (value, key any, ok bool) { return nil, nil, false }

// Close releases c if it holds resources; other cursors are left alone.
func Close(c Cursor) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
