package source

// Map is an insertion-ordered map. The zero value is an empty map ready to
// use. Re-setting an existing key keeps its position.
type Map[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

// NewMap returns an empty ordered map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set stores v under k and returns m for chaining.
func (m *Map[K, V]) Set(k K, v V) *Map[K, V] {
	if i, ok := m.index[k]; ok {
		m.values[i] = v
		return m
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
	return m
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// EntryKeys implements MapLike.
func (m *Map[K, V]) EntryKeys() []any {
	out := make([]any, len(m.keys))
	for i, k := range m.keys {
		out[i] = k
	}
	return out
}

// Lookup implements MapLike.
func (m *Map[K, V]) Lookup(key any) (any, bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}
	return m.Get(k)
}

// Set is an insertion-ordered set. The zero value is an empty set.
type Set[T comparable] struct {
	m Map[T, struct{}]
}

// NewSet returns a set holding values; duplicates keep their first position.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and returns s for chaining.
func (s *Set[T]) Add(v T) *Set[T] {
	s.m.Set(v, struct{}{})
	return s
}

// Has reports whether v is a member.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.m.Get(v)
	return ok
}

// Delete removes v and reports whether it was present.
func (s *Set[T]) Delete(v T) bool { return s.m.Delete(v) }

// Values returns the members in insertion order.
func (s *Set[T]) Values() []T { return s.m.Keys() }

// Len returns the number of members.
func (s *Set[T]) Len() int { return s.m.Len() }

// Members implements SetLike.
func (s *Set[T]) Members() []any { return s.m.EntryKeys() }
