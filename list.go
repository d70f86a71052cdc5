package selfadjust

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/selfadjust/internal/xlist"
)

// List is a circular doubly-linked list of distinct values that reorders itself on Contains
// according to its Policy.
//
// Every operation that walks the list charges one unit of access cost per node it examines. The
// cost survives Clear so that it can measure cumulative work; use ResetCost to start a new
// measurement window.
//
// The zero value is an empty list with the Plain policy. List's methods may not be called
// concurrently, including Contains, which mutates the list; see Locked.
type List[T comparable] struct {
	ring   xlist.List[T]
	policy Policy
	cost   int
}

// New returns an empty list that applies policy on every successful Contains.
func New[T comparable](policy Policy) *List[T] {
	return &List[T]{policy: policy}
}

// NewPlain returns an empty list that never reorders.
func NewPlain[T comparable]() *List[T] { return New[T](Plain) }

// NewMoveToFront returns an empty list that moves every value found by Contains to the front.
func NewMoveToFront[T comparable]() *List[T] { return New[T](MoveToFront) }

// NewTranspose returns an empty list that swaps every value found by Contains with its
// predecessor.
func NewTranspose[T comparable]() *List[T] { return New[T](Transpose) }

func (l *List[T]) Policy() Policy { return l.policy }
func (l *List[T]) Len() int       { return l.ring.Len() }
func (l *List[T]) IsEmpty() bool  { return l.ring.Len() == 0 }
func (l *List[T]) Cost() int      { return l.cost }
func (l *List[T]) ResetCost()     { l.cost = 0 }

// Add inserts value at the front of the list. It returns false, leaving the list as it was, if
// value is already present.
//
// The duplicate check is a Contains, so it is charged to the access cost and, for a value that is
// already present, applies the list's policy.
func (l *List[T]) Add(value T) bool {
	if l.Contains(value) {
		return false
	}
	l.ring.PushFront(value)
	return true
}

// Remove deletes value from the list, returning false if it was not present.
func (l *List[T]) Remove(value T) bool {
	node := l.find(value)
	if node == nil {
		return false
	}
	l.ring.Remove(node)
	return true
}

// Contains reports whether value is in the list, and if so reorders the list according to its
// policy.
func (l *List[T]) Contains(value T) bool {
	node := l.find(value)
	if node == nil {
		return false
	}
	switch l.policy {
	case MoveToFront:
		l.ring.MoveToFront(node)
	case Transpose:
		if prev := node.Prev(); prev != nil {
			l.ring.MoveBefore(node, prev)
		}
	}
	return true
}

// Clear removes every value from the list. The access cost is left as it is.
func (l *List[T]) Clear() { l.ring.Clear() }

// At returns the value at index, counting from 0 at the front. It returns false in the second
// return if index is outside [0, Len()), in which case no cost is charged.
func (l *List[T]) At(index int) (T, bool) {
	if index < 0 || index >= l.ring.Len() {
		var zero T
		return zero, false
	}
	node := l.ring.Front()
	l.cost++
	for i := 0; i < index; i++ {
		node = node.Next()
		l.cost++
	}
	return node.Value, true
}

// IndexOf returns the position of value, or -1 if it is not present. Unlike Contains it neither
// charges access cost nor reorders.
func (l *List[T]) IndexOf(value T) int {
	i := 0
	for node := l.ring.Front(); node != nil; node = node.Next() {
		if node.Value == value {
			return i
		}
		i++
	}
	return -1
}

// Clone returns a deep copy of l with the same order and policy. The copy's access cost starts at
// zero.
func (l *List[T]) Clone() *List[T] {
	c := New[T](l.policy)
	for node := l.ring.Front(); node != nil; node = node.Next() {
		c.ring.PushBack(node.Value)
	}
	return c
}

// Move returns a list that takes over l's values, policy and access cost. l is left empty with
// zero access cost and remains usable.
func (l *List[T]) Move() *List[T] {
	moved := &List[T]{
		ring:   l.ring,
		policy: l.policy,
		cost:   l.cost,
	}
	l.ring = xlist.List[T]{}
	l.cost = 0
	return moved
}

// Iterate iterates over the values front to back without charging access cost. The list must not
// be modified during iteration.
func (l *List[T]) Iterate() iterator.Iterator[T] {
	return &listIterator[T]{next: l.ring.Front()}
}

// Values returns the values front to back without charging access cost.
func (l *List[T]) Values() []T {
	return iterator.Collect(l.Iterate())
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}

func (l *List[T]) find(value T) *xlist.Node[T] {
	for node := l.ring.Front(); node != nil; node = node.Next() {
		l.cost++
		if node.Value == value {
			return node
		}
	}
	return nil
}

type listIterator[T any] struct {
	next *xlist.Node[T]
}

func (iter *listIterator[T]) Next() (T, bool) {
	if iter.next == nil {
		var zero T
		return zero, false
	}
	value := iter.next.Value
	iter.next = iter.next.Next()
	return value, true
}
