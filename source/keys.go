package source

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// SortedKeys returns the keys of the map m in a deterministic order:
// numbers numerically, strings lexically, booleans false first, and
// everything else by its fmt rendering. Keys of different kinds are grouped
// by kind.
func SortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortStableFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)
	ca, cb := keyClass(a), keyClass(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case classInt:
		return cmp.Compare(a.Int(), b.Int())
	case classUint:
		return cmp.Compare(a.Uint(), b.Uint())
	case classFloat:
		return cmp.Compare(a.Float(), b.Float())
	case classString:
		return cmp.Compare(a.String(), b.String())
	case classBool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case classNil:
		return 0
	}
	return cmp.Compare(fmt.Sprint(valueOf(a)), fmt.Sprint(valueOf(b)))
}

const (
	classNil = iota
	classBool
	classInt
	classUint
	classFloat
	classString
	classOther
)

func keyClass(v reflect.Value) int {
	if !v.IsValid() {
		return classNil
	}
	switch v.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	default:
		return classOther
	}
}

func unwrap(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		return v.Elem()
	}
	return v
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
