package priority

import (
	"cmp"
	"errors"

	"github.com/elem-azar-unis/undergraduate-rpq-impl/table"
)

var (
	ErrDuplicateKey = errors.New("priority: duplicate key")
	ErrNotFound     = errors.New("priority: key not found")
)

// Table is the associative collaborator the heap keeps its secondary
// index in. It must map each key to the element currently occupying a
// heap slot, and nothing else; the heap is the only writer. Any
// container with this capability set works — see the table package for
// a hash-backed and a B-tree-backed implementation.
type Table[K comparable, T any] interface {
	// Add registers key with value. Fails if key is already present.
	Add(key K, value T) error
	// Get returns the value registered under key, if any.
	Get(key K) (T, bool)
	// Remove deletes the entry for key. Fails if key is absent.
	Remove(key K) error
}

// Heap is an unbounded indexed max-heap. The root holds an element no
// other element outranks, and every element is also reachable by key in
// a single table lookup, so changing the priority of or removing an
// arbitrary element costs O(log n) instead of a linear scan.
//
// A Heap is not safe for concurrent use; callers must serialize access.
type Heap[K comparable, V any] struct {
	elements []*Element[K, V]
	table    Table[K, *Element[K, V]]
	lessF    func(a, b V) bool // strict order on priorities; the heap maximizes it
}

// New creates a heap ordered by less, indexed by a hash-backed table.
// The element whose priority is greatest under less sits at the root.
func New[K comparable, V any](less func(a, b V) bool) *Heap[K, V] {
	return NewWithTable[K, V](table.NewMap[K, *Element[K, V]](), less)
}

// NewOrdered creates a heap over a naturally ordered priority type.
func NewOrdered[K comparable, V cmp.Ordered]() *Heap[K, V] {
	return New[K](cmp.Less[V])
}

// NewWithTable creates a heap using the given table as its secondary
// index. The table must be empty and must not be mutated by anyone but
// the heap afterwards.
func NewWithTable[K comparable, V any](t Table[K, *Element[K, V]], less func(a, b V) bool) *Heap[K, V] {
	return &Heap[K, V]{
		elements: make([]*Element[K, V], 0),
		table:    t,
		lessF:    less,
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return len(h.elements)
}

// Insert adds e to the heap. It fails with ErrDuplicateKey, touching
// nothing, if an element with the same key is already present. On
// success the heap owns e's priority and position until the element is
// removed again.
func (h *Heap[K, V]) Insert(e *Element[K, V]) error {
	if _, ok := h.table.Get(e.key); ok {
		return ErrDuplicateKey
	}
	if err := h.table.Add(e.key, e); err != nil {
		return err
	}
	e.index = len(h.elements)
	h.elements = append(h.elements, e)
	h.up(e.index)
	return nil
}

// Alter changes the priority of the element with the given key. A
// lowered priority can only violate the order against the element's
// children, a raised one only against its parent, so a single repair in
// the direction of the change suffices. Fails with ErrNotFound if no
// element has the key.
func (h *Heap[K, V]) Alter(key K, priority V) error {
	e, ok := h.table.Get(key)
	if !ok {
		return ErrNotFound
	}
	old := e.priority
	e.priority = priority
	if h.lessF(priority, old) {
		h.down(e.index)
	} else {
		h.up(e.index)
	}
	return nil
}

// Max returns the highest-priority element without removing it, or
// (nil, false) on an empty heap.
func (h *Heap[K, V]) Max() (*Element[K, V], bool) {
	if len(h.elements) == 0 {
		return nil, false
	}
	return h.elements[0], true
}

// PopMax removes and returns the highest-priority element, or
// (nil, false) on an empty heap. The returned element's position is
// stale from this point on.
func (h *Heap[K, V]) PopMax() (*Element[K, V], bool) {
	if len(h.elements) == 0 {
		return nil, false
	}
	return h.Remove(h.elements[0].key)
}

// Get returns the element with the given key, if present. Lookup only,
// no mutation.
func (h *Heap[K, V]) Get(key K) (*Element[K, V], bool) {
	return h.table.Get(key)
}

// Remove removes and returns the element with the given key, or
// (nil, false) if no element has it. The last element moves into the
// vacated slot and is repaired in whichever single direction its
// priority demands: sunk if it ranks below the element it replaces,
// raised otherwise. Removing the element in the last slot needs no
// repair at all.
func (h *Heap[K, V]) Remove(key K) (*Element[K, V], bool) {
	e, ok := h.table.Get(key)
	if !ok {
		return nil, false
	}
	// Get proved presence, so Remove cannot fail.
	_ = h.table.Remove(key)

	last := len(h.elements) - 1
	moved := h.elements[last]
	h.elements[last] = nil // release the slot's reference
	h.elements = h.elements[:last]

	if e.index != last {
		h.elements[e.index] = moved
		moved.index = e.index
		if h.lessF(moved.priority, e.priority) {
			h.down(e.index)
		} else {
			h.up(e.index)
		}
	}
	return e, true
}

// up promotes the element at slot k while it outranks its parent. The
// element is held aside and each displaced ancestor shifts into the
// hole with its index updated immediately, so no slot ever disagrees
// with its element's recorded position.
func (h *Heap[K, V]) up(k int) {
	e := h.elements[k]
	for k > 0 {
		parent := (k - 1) / 2
		p := h.elements[parent]
		if !h.lessF(p.priority, e.priority) {
			break
		}
		h.elements[k] = p
		p.index = k
		k = parent
	}
	h.elements[k] = e
	e.index = k
}

// down demotes the element at slot k while it ranks below the greater
// of its children, using the same hole-and-shift pattern as up. Equal
// children resolve to the left one; the heap makes no ordering promise
// between equal priorities.
func (h *Heap[K, V]) down(k int) {
	e := h.elements[k]
	n := len(h.elements)
	for {
		child := 2*k + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.lessF(h.elements[child].priority, h.elements[right].priority) {
			child = right
		}
		c := h.elements[child]
		if !h.lessF(e.priority, c.priority) {
			break
		}
		h.elements[k] = c
		c.index = k
		k = child
	}
	h.elements[k] = e
	e.index = k
}
