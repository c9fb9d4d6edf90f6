package generate

import (
	"math"
	"testing"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/source"
)

func take(g *Generator, n int) []any {
	out := []any{}
	for len(out) < n {
		v, _, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func equal(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCounter(t *testing.T) {
	if got := take(Counter(0, 1), 4); !equal(got, []any{0, 1, 2, 3}) {
		t.Errorf("Counter(0, 1) = %v", got)
	}
	if got := take(Counter(10, -5), 3); !equal(got, []any{10, 5, 0}) {
		t.Errorf("Counter(10, -5) = %v", got)
	}
	if got := take(Counter(0.5, 0.25), 3); !equal(got, []any{0.5, 0.75, 1.0}) {
		t.Errorf("Counter(0.5, 0.25) = %v", got)
	}
}

func TestCounter_Keys(t *testing.T) {
	g := Counter(5, 5)
	for i := 0; i < 3; i++ {
		_, k, ok := g.Next()
		if !ok || k != i {
			t.Fatalf("key %d = %v, %v", i, k, ok)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		gen  *Generator
		want []any
	}{
		{"ascending", Range(0, 5, 2), []any{0, 2, 4}},
		{"descending", Range(5, 0, -2), []any{5, 3, 1}},
		{"empty", Range(3, 3, 1), []any{}},
		{"wrong direction", Range(0, 5, -1), []any{}},
		{"floats", Range(0.0, 1.0, 0.5), []any{0.0, 0.5}},
		{"range to", RangeTo(3), []any{0, 1, 2}},
		{"unsigned edge", Range[uint8](250, 255, 3), []any{uint8(250), uint8(253)}},
		{"no wraparound", Range[int8](120, 127, 5), []any{int8(120), int8(125)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := take(tt.gen, 100); !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if tt.gen.Err() != nil {
				t.Errorf("Err() = %v", tt.gen.Err())
			}
		})
	}
}

func TestRange_Invalid(t *testing.T) {
	tests := []struct {
		name string
		gen  *Generator
	}{
		{"zero step", Range(0, 10, 0)},
		{"nan step", Range(0, 10, math.NaN())},
		{"infinite start", Range(math.Inf(-1), 10, 1)},
		{"nan counter", Counter(math.NaN(), 1)},
		{"infinite counter step", Counter(0, math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.IsInvalidArgument(tt.gen.Err()) {
				t.Errorf("Err() = %v, want INVALID_ARGUMENT", tt.gen.Err())
			}
			if _, _, ok := tt.gen.Next(); ok {
				t.Error("failed generator should yield nothing")
			}
		})
	}
}

func TestRepeat(t *testing.T) {
	if got := take(Repeat("x", 3), 10); !equal(got, []any{"x", "x", "x"}) {
		t.Errorf("Repeat(x, 3) = %v", got)
	}
	if got := take(Repeat("x", 0), 10); len(got) != 0 {
		t.Errorf("Repeat(x, 0) = %v", got)
	}
	if got := take(Repeat(1, Infinite), 50); len(got) != 50 {
		t.Errorf("Repeat(1, Infinite) stopped after %d", len(got))
	}
}

func TestGenerator_SinglePass(t *testing.T) {
	g := RangeTo(2)
	take(g, 10)
	if _, _, ok := g.Next(); ok {
		t.Error("exhausted generator yielded again")
	}
	var zero Generator
	if _, _, ok := zero.Next(); ok {
		t.Error("zero Generator should be exhausted")
	}
}

type named struct {
	ID string
}

type person struct {
	named
	Name string
	Age  int
	note string
}

func TestEntries(t *testing.T) {
	p := person{named: named{ID: "p1"}, Name: "ada", Age: 36}

	tests := []struct {
		name string
		gen  *Generator
		want []any
	}{
		{
			"map sorted",
			Entries(map[string]int{"b": 2, "a": 1}, true),
			[]any{Entry{"a", 1}, Entry{"b", 2}},
		},
		{
			"ordered map",
			Entries(source.NewMap[string, int]().Set("z", 26).Set("a", 1), true),
			[]any{Entry{"z", 26}, Entry{"a", 1}},
		},
		{"struct keys owned", Keys(p, true), []any{"Name", "Age"}},
		{"struct keys promoted", Keys(&p, false), []any{"ID", "Name", "Age"}},
		{"struct values", Values(p, true), []any{"ada", 36}},
		{"map values", Values(map[int]string{2: "b", 1: "a"}, true), []any{"a", "b"}},
		{"nil map", Keys(map[string]int(nil), true), []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.gen.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if got := take(tt.gen, 100); !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntries_Invalid(t *testing.T) {
	for _, obj := range []any{nil, 42, "text", []int{1}} {
		g := Entries(obj, true)
		if !errors.IsInvalidArgument(g.Err()) {
			t.Errorf("Entries(%v).Err() = %v, want INVALID_ARGUMENT", obj, g.Err())
		}
	}
}
