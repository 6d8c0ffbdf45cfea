package table

import (
	"cmp"

	"github.com/google/btree"
)

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Tree is a B-tree-backed table. Lookups are O(log n) rather than the
// hash table's O(1), in exchange for ordered key traversal via Ascend.
type Tree[K cmp.Ordered, V any] struct {
	entries *btree.BTreeG[entry[K, V]]
}

// NewTree creates an empty B-tree-backed table.
func NewTree[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		entries: btree.NewG(2, func(a, b entry[K, V]) bool {
			return cmp.Less(a.key, b.key)
		}),
	}
}

// Add registers key with value. It fails if key is already present.
func (t *Tree[K, V]) Add(key K, value V) error {
	if t.entries.Has(entry[K, V]{key: key}) {
		return ErrDuplicateKey
	}
	t.entries.ReplaceOrInsert(entry[K, V]{key: key, value: value})
	return nil
}

// Get returns the value registered under key, if any.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	e, ok := t.entries.Get(entry[K, V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Remove deletes the entry for key. It fails if key is absent.
func (t *Tree[K, V]) Remove(key K) error {
	if _, ok := t.entries.Delete(entry[K, V]{key: key}); !ok {
		return ErrNotFound
	}
	return nil
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int {
	return t.entries.Len()
}

// Ascend visits every entry in ascending key order until fn returns
// false.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	t.entries.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.value)
	})
}
