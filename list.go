package dlist

import (
	log "log/slog"
)

// List is a doubly linked list. Create one with New so it gets an identity;
// a zero List works but reports NilUUID as its ID.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
	id     UUID
}

// New creates a list, appending the given values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{id: NewUUID()}
	for _, v := range values {
		l.AddToTail(v)
	}
	return l
}

// ID returns the list's identity, used to tag its errors and log entries.
func (l *List[T]) ID() UUID {
	return l.id
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Front returns the head node or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the tail node or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// AddToHead inserts a new node with value v at the head of the list and returns it.
func (l *List[T]) AddToHead(v T) *Node[T] {
	n := &Node[T]{value: v}
	l.linkHead(n)
	return n
}

// AddToTail inserts a new node with value v at the tail of the list and returns it.
func (l *List[T]) AddToTail(v T) *Node[T] {
	n := &Node[T]{value: v}
	l.linkTail(n)
	return n
}

// InsertAfter inserts a new node with value v right after mark and returns it.
func (l *List[T]) InsertAfter(v T, mark *Node[T]) (*Node[T], error) {
	if !l.owns(mark) {
		return nil, l.invalidHandle("InsertAfter")
	}
	n := &Node[T]{value: v, list: l}
	n.spliceAfter(mark)
	if mark == l.tail {
		l.tail = n
	}
	l.length++
	return n, nil
}

// InsertBefore inserts a new node with value v right before mark and returns it.
func (l *List[T]) InsertBefore(v T, mark *Node[T]) (*Node[T], error) {
	if !l.owns(mark) {
		return nil, l.invalidHandle("InsertBefore")
	}
	n := &Node[T]{value: v, list: l}
	n.spliceBefore(mark)
	if mark == l.head {
		l.head = n
	}
	l.length++
	return n, nil
}

// RemoveFromHead detaches the head node and returns its value.
// It fails with ErrEmptyList if there is nothing to remove.
func (l *List[T]) RemoveFromHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, Error{Code: EmptyList, Err: ErrEmptyList, UserData: l.id}
	}
	n := l.head
	l.unlink(n)
	return n.value, nil
}

// RemoveFromTail detaches the tail node and returns its value.
// It fails with ErrEmptyList if there is nothing to remove.
func (l *List[T]) RemoveFromTail() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, Error{Code: EmptyList, Err: ErrEmptyList, UserData: l.id}
	}
	n := l.tail
	l.unlink(n)
	return n.value, nil
}

// Delete removes node n from the list. The handle is invalid afterwards.
func (l *List[T]) Delete(n *Node[T]) error {
	if !l.owns(n) {
		return l.invalidHandle("Delete")
	}
	l.unlink(n)
	return nil
}

// MoveToFront relocates node n to the head of the list. The handle stays valid.
func (l *List[T]) MoveToFront(n *Node[T]) error {
	if !l.owns(n) {
		return l.invalidHandle("MoveToFront")
	}
	if n == l.head {
		return nil
	}
	l.unlink(n)
	l.linkHead(n)
	return nil
}

// MoveToEnd relocates node n to the tail of the list. The handle stays valid.
func (l *List[T]) MoveToEnd(n *Node[T]) error {
	if !l.owns(n) {
		return l.invalidHandle("MoveToEnd")
	}
	if n == l.tail {
		return nil
	}
	l.unlink(n)
	l.linkTail(n)
	return nil
}

// Values returns a copy of the list's values, head to tail.
func (l *List[T]) Values() []T {
	r := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		r = append(r, n.value)
	}
	return r
}

// Clear removes every node. Outstanding handles become invalid.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		nxt := n.next
		n.prev, n.next, n.list = nil, nil, nil
		n = nxt
	}
	l.head, l.tail, l.length = nil, nil, 0
}

func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l
}

func (l *List[T]) invalidHandle(op string) error {
	log.Debug("rejected node handle", "op", op, "list", l.id.String(), "len", l.length)
	return Error{Code: InvalidHandle, Err: ErrInvalidHandle, UserData: l.id}
}

func (l *List[T]) linkHead(n *Node[T]) {
	n.list = l
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.spliceBefore(l.head)
		l.head = n
	}
	l.length++
}

func (l *List[T]) linkTail(n *Node[T]) {
	n.list = l
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.spliceAfter(l.tail)
		l.tail = n
	}
	l.length++
}

// unlink detaches an owned node, fixing up the endpoints.
func (l *List[T]) unlink(n *Node[T]) {
	if n == l.head {
		l.head = n.next
	}
	if n == l.tail {
		l.tail = n.prev
	}
	n.spliceOut()
	n.list = nil
	l.length--
}
