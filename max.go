package dlist

import "cmp"

// GetMax scans the list head to tail and returns its largest value.
// It returns false if the list is empty. The running maximum starts at the head's
// value so lists holding only negative numbers are handled. NaN ranks lowest.
func GetMax[T cmp.Ordered](l *List[T]) (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	m := l.head.value
	for n := l.head.next; n != nil; n = n.next {
		if cmp.Compare(n.value, m) > 0 {
			m = n.value
		}
	}
	return m, true
}
