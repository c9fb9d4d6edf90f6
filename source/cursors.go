package source

import (
	"iter"
	"reflect"
	"unicode/utf8"
)

type sliceCursor struct {
	items []any
	pos   int
}

func (c *sliceCursor) Next() (value, key any, ok bool) {
	if c.pos >= len(c.items) {
		return nil, nil, false
	}
	i := c.pos
	c.pos++
	return c.items[i], i, true
}

type indexCursor struct {
	list reflect.Value
	pos  int
}

func (c *indexCursor) Next() (value, key any, ok bool) {
	if c.pos >= c.list.Len() {
		return nil, nil, false
	}
	i := c.pos
	c.pos++
	return valueOf(c.list.Index(i)), i, true
}

// stringCursor steps by rune; keys are rune ordinals, not byte offsets.
type stringCursor struct {
	text   string
	offset int
	index  int
}

func (c *stringCursor) Next() (value, key any, ok bool) {
	if c.offset >= len(c.text) {
		return nil, nil, false
	}
	r, size := utf8.DecodeRuneInString(c.text[c.offset:])
	c.offset += size
	i := c.index
	c.index++
	return string(r), i, true
}

type mapLikeCursor struct {
	source MapLike
	keys   []any
	pos    int
}

func (c *mapLikeCursor) Next() (value, key any, ok bool) {
	if c.pos >= len(c.keys) {
		return nil, nil, false
	}
	k := c.keys[c.pos]
	c.pos++
	v, _ := c.source.Lookup(k)
	return v, k, true
}

type goMapCursor struct {
	m    reflect.Value
	keys []reflect.Value
	pos  int
}

func (c *goMapCursor) Next() (value, key any, ok bool) {
	if c.pos >= len(c.keys) {
		return nil, nil, false
	}
	k := c.keys[c.pos]
	c.pos++
	return valueOf(c.m.MapIndex(k)), valueOf(k), true
}

type memberCursor struct {
	members []any
	pos     int
}

func (c *memberCursor) Next() (value, key any, ok bool) {
	if c.pos >= len(c.members) {
		return nil, nil, false
	}
	m := c.members[c.pos]
	c.pos++
	return m, m, true
}

// pullCursor walks a push-style sequence through iter.Pull2.
// Close must be called when the walk ends early.
type pullCursor struct {
	next  func() (any, any, bool)
	stop  func()
	index int
	keyed bool
}

func (c *pullCursor) Next() (value, key any, ok bool) {
	k, v, ok := c.next()
	if !ok {
		return nil, nil, false
	}
	i := c.index
	c.index++
	if c.keyed {
		return v, k, true
	}
	return v, i, true
}

// Close releases the suspended sequence. It is safe to call more than once.
func (c *pullCursor) Close() error {
	c.stop()
	return nil
}

func pullSeq(seq iter.Seq[any]) Cursor {
	next, stop := iter.Pull2(func(yield func(any, any) bool) {
		for v := range seq {
			if !yield(nil, v) {
				return
			}
		}
	})
	return &pullCursor{next: next, stop: stop}
}

func pullSeq2(seq iter.Seq2[any, any]) Cursor {
	next, stop := iter.Pull2(seq)
	return &pullCursor{next: next, stop: stop, keyed: true}
}

// seqArity returns 1 for func(func(V) bool), 2 for func(func(K, V) bool)
// and 0 for anything else.
func seqArity(rv reflect.Value) int {
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return 0
	}
	t := rv.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return 0
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0
	}
	if n := yield.NumIn(); n == 1 || n == 2 {
		return n
	}
	return 0
}

// pullReflected bridges iter.Seq and iter.Seq2 funcs of any type arguments.
func pullReflected(fn reflect.Value) Cursor {
	arity := seqArity(fn)
	yieldType := fn.Type().In(0)
	seq := func(yield func(any, any) bool) {
		y := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			var k, v any
			if arity == 2 {
				k, v = valueOf(args[0]), valueOf(args[1])
			} else {
				v = valueOf(args[0])
			}
			return []reflect.Value{reflect.ValueOf(yield(k, v)).Convert(yieldType.Out(0))}
		})
		fn.Call([]reflect.Value{y})
	}
	next, stop := iter.Pull2(seq)
	return &pullCursor{next: next, stop: stop, keyed: arity == 2}
}

type recordCursor struct {
	record reflect.Value
	fields []reflect.StructField
	pos    int
}

func newRecordCursor(rv reflect.Value, owned bool) *recordCursor {
	return &recordCursor{record: rv, fields: recordFields(rv.Type(), owned)}
}

func (c *recordCursor) Next() (value, key any, ok bool) {
	for c.pos < len(c.fields) {
		f := c.fields[c.pos]
		c.pos++
		fv, err := c.record.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanInterface() {
			continue
		}
		return fv.Interface(), f.Name, true
	}
	return nil, nil, false
}

// recordFields lists the exported fields of t in declaration order. With
// owned false, fields of embedded structs are promoted in place of the
// embedded field itself.
func recordFields(t reflect.Type, owned bool) []reflect.StructField {
	var fields []reflect.StructField
	if owned {
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				fields = append(fields, f)
			}
		}
		return fields
	}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || (f.Anonymous && isStructType(f.Type)) {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func isStructType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// valueOf unwraps rv to an interface value; invalid values become nil.
func valueOf(rv reflect.Value) any {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}
