package dlist

// Node is an element of a List. Pointers returned by the insert methods
// serve as handles for Delete, MoveToFront and MoveToEnd.
type Node[T any] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
	// Owning list; nil once the node has been removed.
	list *List[T]
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// spliceOut links the node's neighbors to each other and clears the node's own links.
// Head and tail of the owning list are left for the caller to fix up.
func (n *Node[T]) spliceOut() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// spliceAfter links the detached node in right after mark.
func (n *Node[T]) spliceAfter(mark *Node[T]) {
	n.prev = mark
	n.next = mark.next
	if mark.next != nil {
		mark.next.prev = n
	}
	mark.next = n
}

// spliceBefore links the detached node in right before mark.
func (n *Node[T]) spliceBefore(mark *Node[T]) {
	n.next = mark
	n.prev = mark.prev
	if mark.prev != nil {
		mark.prev.next = n
	}
	mark.prev = n
}
