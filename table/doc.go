// Package table provides associative containers mapping a unique key to
// a value. It exists to serve as the index collaborator of the priority
// package, which only requires the Add/Get/Remove capability set, but
// both containers are usable on their own.
//
// Two implementations are provided:
//   - Map: backed by the built-in Go map; O(1) operations
//   - Tree: backed by a B-tree; O(log n) operations, ordered traversal
//
// Both enforce key uniqueness: Add fails with ErrDuplicateKey when the
// key is already present, and Remove fails with ErrNotFound when it is
// not.
//
// Basic usage:
//
//	tbl := table.NewMap[string, int]()
//
//	if err := tbl.Add("a", 1); err != nil {
//	    // key already present
//	}
//
//	value, ok := tbl.Get("a")
//	if ok {
//	    fmt.Println(value)
//	}
//
//	_ = tbl.Remove("a")
//
// Tree additionally supports visiting entries in ascending key order:
//
//	tbl := table.NewTree[string, int]()
//	tbl.Ascend(func(key string, value int) bool {
//	    fmt.Println(key, value)
//	    return true
//	})
package table
