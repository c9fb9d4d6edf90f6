package sequence

import (
	stderrors "errors"
	"maps"
	"slices"
	"testing"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/generate"
	"github.com/kbukum/seqkit/source"
)

type record struct {
	One, Two, Three, Four int
}

func TestToArray_SourceShapes(t *testing.T) {
	ordered := source.NewMap[string, int]().Set("one", 1).Set("two", 2).Set("three", 3).Set("four", 4)

	tests := []struct {
		name string
		src  any
		want []any
	}{
		{"slice", []int{1, 2, 3, 4}, ints(1, 2, 3, 4)},
		{"array", [4]int{1, 2, 3, 4}, ints(1, 2, 3, 4)},
		{"string", "abc", []any{"a", "b", "c"}},
		{"go map", map[string]int{"b": 2, "a": 1}, ints(1, 2)},
		{"ordered map", ordered, ints(1, 2, 3, 4)},
		{"set", source.NewSet("x", "y"), []any{"x", "y"}},
		{"fixed width", []uint16{1, 2, 3, 4}, ints(1, 2, 3, 4)},
		{"record", record{1, 2, 3, 4}, ints(1, 2, 3, 4)},
		{"seq", slices.Values([]int{1, 2}), ints(1, 2)},
		{"seq2", maps.All(map[string]int{"k": 7}), ints(7)},
		{"sequence", Of(1, 2), ints(1, 2)},
		{"unsupported", 3.14, []any{}},
		{"nil", nil, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustArray(t, New(tt.src))
			if got == nil {
				t.Fatal("ToArray() returned nil slice")
			}
			if !sliceEqual(got, tt.want) {
				t.Errorf("ToArray() = %v, want %v", got, tt.want)
			}
			reversed := mustArray(t, New(tt.src).Reverse())
			want := slices.Clone(tt.want)
			slices.Reverse(want)
			if !sliceEqual(reversed, want) {
				t.Errorf("Reverse().ToArray() = %v, want %v", reversed, want)
			}
		})
	}
}

func TestStep_Keys(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want []any
	}{
		{"slice", []string{"a", "b"}, ints(0, 1)},
		{"string runes", "héj", ints(0, 1, 2)},
		{"map", map[string]bool{"y": true, "x": false}, []any{"x", "y"}},
		{"set", source.NewSet(3, 1), ints(3, 1)},
		{"record", record{}, []any{"One", "Two", "Three", "Four"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var keys []any
			err := New(tt.src).Each(func(_, key, src any) bool {
				keys = append(keys, key)
				return true
			})
			if err != nil {
				t.Fatal(err)
			}
			if !sliceEqual(keys, tt.want) {
				t.Errorf("keys = %v, want %v", keys, tt.want)
			}
		})
	}
}

func TestNew_IdempotentWrap(t *testing.T) {
	s := New([]int{1})
	if New(s) != s {
		t.Error("New(*Sequence) should return the same sequence")
	}
	got, err := From(s)
	if err != nil || got != s {
		t.Errorf("From(*Sequence) = %p, %v", got, err)
	}
}

func TestNew_Source(t *testing.T) {
	src := []int{1, 2}
	if got := New(src).Map(func(v, _, _ any) any { return v }).Source(); !slices.Equal(got.([]int), src) {
		t.Errorf("Source() = %v", got)
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		wantErr bool
	}{
		{"slice", []int{1}, false},
		{"string", "", false},
		{"map", map[int]int{}, false},
		{"nil slice", []int(nil), false},
		{"nil map", map[string]int(nil), false},
		{"record", record{}, false},
		{"generator", generate.RangeTo(3), false},
		{"nil", nil, true},
		{"number", 42, true},
		{"bool", false, true},
		{"invalid generator", generate.Range(0, 1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := From(tt.src)
			if tt.wantErr {
				if !errors.IsInvalidArgument(err) {
					t.Errorf("From() error = %v, want INVALID_ARGUMENT", err)
				}
				if s != nil {
					t.Error("From() should return a nil sequence on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("From() error = %v", err)
			}
		})
	}
}

func TestFrom_NilCollectionsAreEmpty(t *testing.T) {
	for _, src := range []any{[]int(nil), map[string]int(nil), map[string]struct{}(nil)} {
		s, err := From(src, WithStrict(true))
		if err != nil {
			t.Fatalf("From(%T) error = %v", src, err)
		}
		if got := mustArray(t, s); len(got) != 0 {
			t.Errorf("From(%T).ToArray() = %v, want empty", src, got)
		}
	}
	var missing *record
	if _, err := From(missing); !errors.IsInvalidArgument(err) {
		t.Errorf("From(nil pointer) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestNew_Strict(t *testing.T) {
	s := New(42, WithStrict(true))
	if !errors.IsInvalidArgument(s.Err()) {
		t.Fatalf("Err() = %v, want INVALID_ARGUMENT", s.Err())
	}
	if _, err := s.Count(); !errors.IsInvalidArgument(err) {
		t.Errorf("Count() error = %v", err)
	}
	if New(42).Err() != nil {
		t.Error("loose New should not record an error")
	}
}

func TestOf(t *testing.T) {
	if got := mustArray(t, Of(1, "a")); !sliceEqual(got, []any{1, "a"}) {
		t.Errorf("Of() = %v", got)
	}
	if n, _ := Of().Count(); n != 0 {
		t.Errorf("Of().Count() = %d", n)
	}
}

func TestPipe(t *testing.T) {
	double := func(upstream Upstream, downstream Downstream) bool {
		return upstream(func(st Step) bool {
			st.Value = st.Value.(int) * 2
			return downstream(st)
		})
	}
	s := New([]int{1, 2, 3})
	if s.Pipe(double) != s {
		t.Fatal("Pipe should return the receiver")
	}
	if got := mustArray(t, s); !sliceEqual(got, ints(2, 4, 6)) {
		t.Errorf("got %v", got)
	}
}

func TestPipe_NilStage(t *testing.T) {
	s := New([]int{1}).Pipe(nil)
	if !errors.IsInvalidArgument(s.Err()) {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestPipe_DoesNotDrive(t *testing.T) {
	src := &countingSource{unbounded: true}
	New(src).Map(func(v, _, _ any) any { return v }).Filter(func(_, _, _ any) bool { return true }).Take(3)
	if src.pulls != 0 {
		t.Errorf("composition pulled %d elements", src.pulls)
	}
}

func TestConstructionError_Sticky(t *testing.T) {
	src := &countingSource{items: ints(1, 2, 3)}
	s := New(src).Map(nil).Filter(func(_, _, _ any) bool { return true })

	if !errors.IsInvalidArgument(s.Err()) {
		t.Fatalf("Err() = %v, want INVALID_ARGUMENT", s.Err())
	}
	if _, err := s.ToArray(); !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("ToArray() error = %v", err)
	}
	if _, err := s.Reduce(func(acc, _, _, _ any) any { return acc }, 0); err == nil {
		t.Error("Reduce() should return the construction error")
	}
	if _, _, err := s.First(); err == nil {
		t.Error("First() should return the construction error")
	}
	if r := s.Reverse(); r.Err() == nil {
		t.Error("Reverse() should carry the construction error")
	}
	if src.pulls != 0 {
		t.Errorf("erroring terminals pulled %d elements", src.pulls)
	}
}

func TestConstructionError_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Sequence) *Sequence
	}{
		{"map", func(s *Sequence) *Sequence { return s.Map(nil) }},
		{"filter", func(s *Sequence) *Sequence { return s.Filter(nil) }},
		{"reject", func(s *Sequence) *Sequence { return s.Reject(nil) }},
		{"takeWhile", func(s *Sequence) *Sequence { return s.TakeWhile(nil) }},
		{"dropWhile", func(s *Sequence) *Sequence { return s.DropWhile(nil) }},
		{"tap", func(s *Sequence) *Sequence { return s.Tap(nil) }},
		{"chunk zero", func(s *Sequence) *Sequence { return s.Chunk(0) }},
		{"chunk negative", func(s *Sequence) *Sequence { return s.Chunk(-3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build(Of(1, 2))
			if !errors.IsInvalidArgument(s.Err()) {
				t.Errorf("Err() = %v, want INVALID_ARGUMENT", s.Err())
			}
		})
	}
}

func TestRerun_FreshStageState(t *testing.T) {
	src := &countingSource{items: ints(1, 2, 3, 4)}
	s := New(src).Drop(1).Take(2).Chunk(2)

	for i := 0; i < 2; i++ {
		got := mustArray(t, s)
		if !sliceEqual(got, []any{ints(2, 3)}) {
			t.Errorf("drive %d = %v", i, got)
		}
	}
	if src.closed != 2 {
		t.Errorf("cursor closed %d times, want 2", src.closed)
	}
}

func TestRerun_SinglePassSource(t *testing.T) {
	s := New(generate.RangeTo(3))
	if n, _ := s.Count(); n != 3 {
		t.Fatalf("first Count() = %d", n)
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("second Count() over a single-pass source = %d, want 0", n)
	}
}

func TestSeq(t *testing.T) {
	var keys, values []any
	for k, v := range New([]string{"a", "b", "c"}).Seq() {
		if v == "c" {
			break
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	if !sliceEqual(keys, ints(0, 1)) || !sliceEqual(values, []any{"a", "b"}) {
		t.Errorf("keys = %v, values = %v", keys, values)
	}

	for range New([]int{1}).Map(nil).Seq() {
		t.Fatal("erroring sequence should yield nothing")
	}
}
