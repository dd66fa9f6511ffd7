package cache

// lruNode links one key into the recency ring.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is a circular list around a sentinel root: root.next is the most
// recently used key and root.prev the least. Not safe for concurrent use.
type lruList[K comparable] struct {
	root lruNode[K]
}

func newLRUList[K comparable]() *lruList[K] {
	l := &lruList[K]{}
	l.reset()
	return l
}

// reset drops every node.
func (l *lruList[K]) reset() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

// pushFront inserts key as the most recently used.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.link(n)
	return n
}

func (l *lruList[K]) moveToFront(n *lruNode[K]) {
	if l.root.next == n {
		return
	}
	l.unlink(n)
	l.link(n)
}

// popBack removes and returns the least recently used key.
func (l *lruList[K]) popBack() (key K, ok bool) {
	n := l.root.prev
	if n == &l.root {
		return key, false
	}
	l.unlink(n)
	return n.key, true
}

func (l *lruList[K]) link(n *lruNode[K]) {
	n.prev = &l.root
	n.next = l.root.next
	l.root.next.prev = n
	l.root.next = n
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}
