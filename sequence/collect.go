package sequence

import (
	"reflect"

	"github.com/kbukum/seqkit/errors"
)

// Collect drives s and asserts every value to T. A value of another type
// fails with INVALID_ARGUMENT naming its position.
func Collect[T any](s *Sequence) ([]T, error) {
	out := make([]T, 0)
	nilable := isNilable(reflect.TypeFor[T]())
	var mismatch error
	pos := 0
	_, err := s.drive("collect", func(st Step) bool {
		v, ok := st.Value.(T)
		if !ok && !(st.Value == nil && nilable) {
			mismatch = errors.InvalidArgument("value at position %d is %T, not %s", pos, st.Value, reflect.TypeFor[T]()).
				WithDetail("position", pos)
			return false
		}
		out = append(out, v)
		pos++
		return true
	}, func(bool) error {
		return mismatch
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
