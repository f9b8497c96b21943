// Package dlist implements a generic doubly linked list with O(1) insertion and
// removal at both ends, O(1) removal of a known node and O(1) relocation of a
// known node to either end.
//
// Insertions return a *Node handle. Pass it back to Delete, MoveToFront or
// MoveToEnd to target that node without searching. A handle is valid only while
// its node is in the list that created it; anything else is rejected with
// ErrInvalidHandle.
//
// A List is not safe for concurrent use. The cache subpackage builds an MRU
// cache on top of it and offers a mutex-guarded variant.
package dlist
