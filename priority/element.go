package priority

// Element is a member of a Heap: a unique key, the priority it is
// currently ranked by, and the heap slot it currently occupies. The key
// is fixed at construction. While the element belongs to a heap, its
// priority changes only through Heap.Alter and its slot only through
// the heap's sift primitives; writing the priority any other way would
// bypass the bookkeeping that keeps the heap ordered.
type Element[K comparable, V any] struct {
	key      K
	priority V
	index    int
}

// NewElement creates an element ready to be inserted into a Heap.
func NewElement[K comparable, V any](key K, priority V) *Element[K, V] {
	return &Element[K, V]{key: key, priority: priority}
}

// Key returns the element's identifier.
func (e *Element[K, V]) Key() K {
	return e.key
}

// Priority returns the element's current priority.
func (e *Element[K, V]) Priority() V {
	return e.priority
}
