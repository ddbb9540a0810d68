package textcache

// node is an entry in the recency list. It holds the key so eviction can
// delete the map entry.
type node struct {
	key     Key
	metrics Metrics
	prev    *node
	next    *node
}

// lruList is a doubly-linked list, most recently used at the head.
// It is not safe for concurrent use.
type lruList struct {
	head *node
	tail *node
	len  int
}

func (l *lruList) pushFront(n *node) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList) moveToFront(n *node) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.pushFront(n)
}

// removeOldest unlinks and returns the tail, or nil when empty.
func (l *lruList) removeOldest() *node {
	n := l.tail
	if n != nil {
		l.unlink(n)
	}
	return n
}

func (l *lruList) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
