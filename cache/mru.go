package cache

import (
	log "log/slog"

	"github.com/sharedcode/dlist"
)

// mru manages MRU ordering and eviction for the generic cache type.
// Most recently used keys sit at the head of the list.
type mru[TK comparable, TV any] struct {
	minCapacity int
	maxCapacity int
	dll         *dlist.List[TK]
	cache       *cache[TK, TV]
}

func newMru[TK comparable, TV any](c *cache[TK, TV], minCapacity, maxCapacity int) *mru[TK, TV] {
	return &mru[TK, TV]{
		cache:       c,
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
		dll:         dlist.New[TK](),
	}
}

// add inserts the id at the head of the MRU list and returns its node handle.
func (m *mru[TK, TV]) add(id TK) *dlist.Node[TK] {
	return m.dll.AddToHead(id)
}

// touch marks the node as most recently used.
func (m *mru[TK, TV]) touch(n *dlist.Node[TK]) {
	if err := m.dll.MoveToFront(n); err != nil {
		log.Warn(err.Error())
	}
}

// remove unchains the node from the MRU list.
func (m *mru[TK, TV]) remove(n *dlist.Node[TK]) {
	if err := m.dll.Delete(n); err != nil {
		log.Warn(err.Error())
	}
}

func (m *mru[TK, TV]) clear() {
	m.dll.Clear()
}

// evict removes entries from the tail, updating the index, once the cache is over capacity.
func (m *mru[TK, TV]) evict() {
	if m.dll.Len() <= m.maxCapacity {
		return
	}
	evicted := 0
	for m.dll.Len() > m.minCapacity {
		id, err := m.dll.RemoveFromTail()
		if err != nil {
			break
		}
		if v, found := m.cache.lookup[id]; found {
			v.dllNode = nil
			delete(m.cache.lookup, id)
		}
		evicted++
	}
	log.Debug("mru eviction", "evicted", evicted, "count", m.dll.Len(), "list", m.dll.ID().String())
}

// isFull reports whether the cache has reached its maximum capacity.
func (m *mru[TK, TV]) isFull() bool {
	return m.dll.Len() >= m.maxCapacity
}
