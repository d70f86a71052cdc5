// Package bst is an unbalanced binary search tree with iterative traversals.
package bst

import (
	"github.com/bradenaw/juniper/container/deque"
	"github.com/bradenaw/juniper/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree of distinct values. The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

func (t *Tree[T]) Len() int { return t.size }

// Insert adds value to the tree, returning false if it was already present.
func (t *Tree[T]) Insert(value T) bool {
	link := &t.root
	for *link != nil {
		switch {
		case value < (*link).value:
			link = &(*link).left
		case value > (*link).value:
			link = &(*link).right
		default:
			return false
		}
	}
	*link = &node[T]{value: value}
	t.size++
	return true
}

func (t *Tree[T]) Contains(value T) bool {
	return t.find(value) != nil
}

// PreOrder returns the subtree rooted at from in root, left, right order. It returns nil if from is
// not in the tree.
func (t *Tree[T]) PreOrder(from T) []T {
	start := t.find(from)
	if start == nil {
		return nil
	}

	var out deque.Deque[T]
	var stack deque.Deque[*node[T]]
	stack.PushBack(start)
	for stack.Len() > 0 {
		curr := stack.PopBack()
		out.PushBack(curr.value)
		// Right first so that left comes off the stack first.
		if curr.right != nil {
			stack.PushBack(curr.right)
		}
		if curr.left != nil {
			stack.PushBack(curr.left)
		}
	}
	return iterator.Collect(out.Iterate())
}

// InOrder returns the subtree rooted at from in left, root, right order, which is ascending. It
// returns nil if from is not in the tree.
func (t *Tree[T]) InOrder(from T) []T {
	start := t.find(from)
	if start == nil {
		return nil
	}

	var out deque.Deque[T]
	var stack deque.Deque[*node[T]]
	curr := start
	for curr != nil || stack.Len() > 0 {
		for curr != nil {
			stack.PushBack(curr)
			curr = curr.left
		}
		curr = stack.PopBack()
		out.PushBack(curr.value)
		curr = curr.right
	}
	return iterator.Collect(out.Iterate())
}

// PostOrder returns the subtree rooted at from in left, right, root order. It returns nil if from
// is not in the tree.
func (t *Tree[T]) PostOrder(from T) []T {
	start := t.find(from)
	if start == nil {
		return nil
	}

	var out deque.Deque[T]
	var stack deque.Deque[*node[T]]
	var lastVisited *node[T]
	curr := start
	for curr != nil || stack.Len() > 0 {
		if curr != nil {
			stack.PushBack(curr)
			curr = curr.left
			continue
		}
		top := stack.Back()
		if top.right != nil && top.right != lastVisited {
			curr = top.right
			continue
		}
		out.PushBack(top.value)
		lastVisited = stack.PopBack()
	}
	return iterator.Collect(out.Iterate())
}

func (t *Tree[T]) find(value T) *node[T] {
	curr := t.root
	for curr != nil {
		switch {
		case value < curr.value:
			curr = curr.left
		case value > curr.value:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}
