package dlist

// KeyValuePair is a tuple used by the cache package to set entries in bulk.
type KeyValuePair[TK any, TV any] struct {
	Key   TK
	Value TV
}
