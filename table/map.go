package table

// Map is a hash-backed table. It is the default collaborator used by
// the priority package.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// NewMap creates an empty hash-backed table.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Add registers key with value. It fails if key is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, ok := m.entries[key]; ok {
		return ErrDuplicateKey
	}
	m.entries[key] = value
	return nil
}

// Get returns the value registered under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.entries[key]
	return value, ok
}

// Remove deletes the entry for key. It fails if key is absent.
func (m *Map[K, V]) Remove(key K) error {
	if _, ok := m.entries[key]; !ok {
		return ErrNotFound
	}
	delete(m.entries, key)
	return nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}
