// Package xlist is a circular doubly-linked list closed by a sentinel node.
package xlist

// List is a ring of nodes threaded through a sentinel. An empty list is the sentinel linked to
// itself, so no splice needs to special-case the ends.
//
// The zero value is an empty list. List values can be copied; a copy shares its nodes with the
// original, so exactly one of the two may be used afterwards.
type List[T any] struct {
	root *Node[T]
	size int
}

func (l *List[T]) lazyInit() {
	if l.root == nil {
		l.root = &Node[T]{sentinel: true}
		l.root.next = l.root
		l.root.prev = l.root
	}
}

func (l *List[T]) Len() int { return l.size }

func (l *List[T]) Front() *Node[T] {
	if l.size == 0 {
		return nil
	}
	return l.root.next
}

func (l *List[T]) Back() *Node[T] {
	if l.size == 0 {
		return nil
	}
	return l.root.prev
}

// Clear unlinks every node, leaving the sentinel pointing at itself.
func (l *List[T]) Clear() {
	if l.root == nil {
		return
	}
	for node := l.root.next; node != l.root; {
		next := node.next
		node.prev = nil
		node.next = nil
		node = next
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.size = 0
}

func (l *List[T]) PushFront(value T) *Node[T] {
	l.lazyInit()
	return l.insertAfter(&Node[T]{Value: value}, l.root)
}

func (l *List[T]) PushBack(value T) *Node[T] {
	l.lazyInit()
	return l.insertAfter(&Node[T]{Value: value}, l.root.prev)
}

func (l *List[T]) Remove(node *Node[T]) {
	l.unlink(node)
	node.prev = nil
	node.next = nil
}

// MoveToFront relinks node as the first node. The relative order of every other node is unchanged.
func (l *List[T]) MoveToFront(node *Node[T]) {
	if l.root.next == node {
		return
	}
	l.unlink(node)
	l.insertAfter(node, l.root)
}

// MoveBefore relinks node immediately before mark. Moving a node before its own successor is a
// no-op, and moving it before its predecessor swaps the two.
func (l *List[T]) MoveBefore(node *Node[T], mark *Node[T]) {
	if node == mark || node.next == mark {
		return
	}
	l.unlink(node)
	l.insertAfter(node, mark.prev)
}

func (l *List[T]) insertAfter(node *Node[T], mark *Node[T]) *Node[T] {
	node.prev = mark
	node.next = mark.next
	mark.next.prev = node
	mark.next = node
	l.size++
	return node
}

func (l *List[T]) unlink(node *Node[T]) {
	node.prev.next = node.next
	node.next.prev = node.prev
	l.size--
}

type Node[T any] struct {
	prev     *Node[T]
	next     *Node[T]
	sentinel bool
	Value    T
}

// Next returns the node after n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if n.next == nil || n.next.sentinel {
		return nil
	}
	return n.next
}

// Prev returns the node before n, or nil if n is the first node.
func (n *Node[T]) Prev() *Node[T] {
	if n.prev == nil || n.prev.sentinel {
		return nil
	}
	return n.prev
}
