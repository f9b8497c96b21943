package cache

import (
	"sync"

	"github.com/sharedcode/dlist"
)

// syncCache wraps a Cache with a mutex to provide thread-safe operations.
type syncCache[TK comparable, TV any] struct {
	// Inherit from Cache.
	Cache[TK, TV]
	locker *sync.Mutex
}

// NewSynchronizedCache returns a thread-safe Cache instance backed by an MRU cache.
func NewSynchronizedCache[TK comparable, TV any](opts dlist.CacheOptions) (Cache[TK, TV], error) {
	c, err := NewCache[TK, TV](opts)
	if err != nil {
		return nil, err
	}
	return &syncCache[TK, TV]{
		locker: &sync.Mutex{},
		Cache:  c,
	}, nil
}

func (sc *syncCache[TK, TV]) Set(items []dlist.KeyValuePair[TK, TV]) {
	sc.locker.Lock()
	sc.Cache.Set(items)
	sc.locker.Unlock()
}

// Get takes the exclusive lock since lookups reorder the MRU list.
func (sc *syncCache[TK, TV]) Get(keys []TK) []TV {
	sc.locker.Lock()
	defer sc.locker.Unlock()
	return sc.Cache.Get(keys)
}

func (sc *syncCache[TK, TV]) Delete(keys []TK) {
	sc.locker.Lock()
	sc.Cache.Delete(keys)
	sc.locker.Unlock()
}

func (sc *syncCache[TK, TV]) Clear() {
	sc.locker.Lock()
	sc.Cache.Clear()
	sc.locker.Unlock()
}

func (sc *syncCache[TK, TV]) Count() int {
	sc.locker.Lock()
	defer sc.locker.Unlock()
	return sc.Cache.Count()
}

func (sc *syncCache[TK, TV]) IsFull() bool {
	sc.locker.Lock()
	defer sc.locker.Unlock()
	return sc.Cache.IsFull()
}

func (sc *syncCache[TK, TV]) Evict() {
	sc.locker.Lock()
	sc.Cache.Evict()
	sc.locker.Unlock()
}
