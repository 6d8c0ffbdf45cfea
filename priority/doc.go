// Package priority implements an unbounded indexed max-heap: a binary
// heap over key/priority elements, augmented with a secondary index
// that maps every key to the element's current heap slot. The index
// makes arbitrary elements addressable, so a priority change or a
// removal by key costs O(log n) instead of a linear scan for the
// element.
//
// The heap is maximum-oriented: the root always holds an element whose
// priority is greatest under the comparator, and the comparator is a
// user-provided less function defining a strict order on priorities.
//
// Key features:
//   - Generic over any comparable key type and any priority type
//   - O(log n) insertion, removal, and priority updates
//   - O(1) peek of the maximum and O(1) lookup by key
//   - Pluggable index table (any container with Add/Get/Remove by key)
//
// Basic usage:
//
//	h := priority.NewOrdered[string, int]()
//
//	// Insert elements
//	_ = h.Insert(priority.NewElement("a", 5))
//	_ = h.Insert(priority.NewElement("b", 9))
//
//	// Peek at the maximum
//	if e, ok := h.Max(); ok {
//	    fmt.Printf("max: %s = %d\n", e.Key(), e.Priority())
//	}
//
//	// Change a priority; the heap reorders itself
//	_ = h.Alter("a", 100)
//
//	// Remove an arbitrary element by key
//	if e, ok := h.Remove("b"); ok {
//	    fmt.Printf("removed: %s\n", e.Key())
//	}
//
//	// Drain in priority order
//	for h.Len() > 0 {
//	    e, _ := h.PopMax()
//	    fmt.Println(e.Key(), e.Priority())
//	}
//
// Elements with equal priorities come out in no particular order: the
// heap guarantees nothing between them, and callers must not rely on
// the order any particular build happens to produce.
//
// A Heap is a plain single-threaded structure. It takes no locks and
// must not be shared between goroutines without external
// synchronization; one mutex around every call is sufficient.
package priority
