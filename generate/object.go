package generate

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/source"
)

// Entry is a key/value pair yielded by Entries.
type Entry struct {
	Key   any
	Value any
}

// Entries yields an Entry per key of a map (sorted keys), *source.Map
// (insertion order) or struct (exported fields in declaration order).
// owned false also lists fields promoted from embedded structs.
func Entries(obj any, owned bool) *Generator {
	return object(obj, owned, func(value, key any) any {
		return Entry{Key: key, Value: value}
	})
}

// Keys yields the keys Entries would.
func Keys(obj any, owned bool) *Generator {
	return object(obj, owned, func(_, key any) any { return key })
}

// Values yields the values Entries would.
func Values(obj any, owned bool) *Generator {
	return object(obj, owned, func(value, _ any) any { return value })
}

func object(obj any, owned bool, project func(value, key any) any) *Generator {
	c, ok := source.Object(obj, owned)
	if !ok {
		return failed(errors.InvalidArgument("expecting a map, ordered map or struct, got %T", obj))
	}
	return newGenerator(func() (any, bool) {
		value, key, ok := c.Next()
		if !ok {
			return nil, false
		}
		return project(value, key), true
	})
}
