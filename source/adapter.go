package source

import (
	"iter"
	"reflect"
)

// resolver is one row of the dispatch table.
type resolver struct {
	name  string
	match func(v any, rv reflect.Value) bool
	build func(v any, rv reflect.Value) Cursor
}

// resolvers are tried in order; the first match wins.
var resolvers = []resolver{
	{name: "indexable", match: matchIndexable, build: buildIndexable},
	{name: "map", match: matchMap, build: buildMap},
	{name: "set", match: matchSet, build: buildSet},
	{name: "iterable", match: matchIterable, build: buildIterable},
	{name: "record", match: matchRecord, build: buildRecord},
}

// KindEmpty names sources that match no resolver.
const KindEmpty = "empty"

// Adapt returns a cursor over v. Unsupported values yield an empty cursor.
func Adapt(v any) Cursor {
	if r, rv, ok := resolve(v); ok {
		return r.build(v, rv)
	}
	return Empty()
}

// IsIterable reports whether Adapt has a non-empty strategy for v.
func IsIterable(v any) bool {
	_, _, ok := resolve(v)
	return ok
}

// Kind names the strategy Adapt uses for v, or KindEmpty.
func Kind(v any) string {
	if r, _, ok := resolve(v); ok {
		return r.name
	}
	return KindEmpty
}

func resolve(v any) (resolver, reflect.Value, bool) {
	if v == nil {
		return resolver{}, reflect.Value{}, false
	}
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return resolver{}, reflect.Value{}, false
	}
	for _, r := range resolvers {
		if r.match(v, rv) {
			return r, rv, true
		}
	}
	return resolver{}, reflect.Value{}, false
}

// indirect follows pointers. A nil pointer yields the zero Value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// A nil slice is an empty list, not a missing source.
func matchIndexable(_ any, rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.String, reflect.Array, reflect.Slice:
		return true
	default:
		return false
	}
}

func buildIndexable(v any, rv reflect.Value) Cursor {
	switch s := v.(type) {
	case []any:
		return &sliceCursor{items: s}
	case string:
		return &stringCursor{text: s}
	}
	if rv.Kind() == reflect.String {
		return &stringCursor{text: rv.String()}
	}
	return &indexCursor{list: rv}
}

func matchMap(v any, rv reflect.Value) bool {
	if _, ok := v.(MapLike); ok {
		return true
	}
	return rv.Kind() == reflect.Map && !isSetElem(rv.Type().Elem())
}

func buildMap(v any, rv reflect.Value) Cursor {
	if m, ok := v.(MapLike); ok {
		return &mapLikeCursor{source: m, keys: m.EntryKeys()}
	}
	return &goMapCursor{m: rv, keys: SortedKeys(rv)}
}

func matchSet(v any, rv reflect.Value) bool {
	if _, ok := v.(SetLike); ok {
		return true
	}
	return rv.Kind() == reflect.Map && isSetElem(rv.Type().Elem())
}

func buildSet(v any, rv reflect.Value) Cursor {
	if s, ok := v.(SetLike); ok {
		return &memberCursor{members: s.Members()}
	}
	keys := SortedKeys(rv)
	members := make([]any, len(keys))
	for i, k := range keys {
		members[i] = k.Interface()
	}
	return &memberCursor{members: members}
}

func isSetElem(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

func matchIterable(v any, rv reflect.Value) bool {
	switch v.(type) {
	case Cursor, Iterable:
		return true
	}
	return seqArity(rv) > 0
}

func buildIterable(v any, rv reflect.Value) Cursor {
	switch it := v.(type) {
	case Cursor:
		return it
	case Iterable:
		if c := it.Cursor(); c != nil {
			return c
		}
		return Empty()
	case iter.Seq[any]:
		return pullSeq(it)
	case iter.Seq2[any, any]:
		return pullSeq2(it)
	}
	return pullReflected(rv)
}

func matchRecord(_ any, rv reflect.Value) bool {
	return rv.Kind() == reflect.Struct
}

func buildRecord(_ any, rv reflect.Value) Cursor {
	return newRecordCursor(rv, true)
}

// Object returns a cursor over the entries of a map, a MapLike or a struct,
// keyed like Adapt keys them. With owned false, fields promoted from
// embedded structs replace the embedded field. ok is false for other values.
func Object(v any, owned bool) (c Cursor, ok bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return Empty(), false
	}
	if m, isMap := v.(MapLike); isMap {
		return &mapLikeCursor{source: m, keys: m.EntryKeys()}, true
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return Empty(), true
		}
		return &goMapCursor{m: rv, keys: SortedKeys(rv)}, true
	case reflect.Struct:
		return newRecordCursor(rv, owned), true
	default:
		return Empty(), false
	}
}
