package selfadjust

import (
	"sync"
)

// Locked wraps a List with a mutex so that it can be shared between goroutines. Every method holds
// the lock for its whole duration, including Contains, which both reorders the list and charges
// access cost.
//
// Locked's methods may be called concurrently.
type Locked[T comparable] struct {
	m sync.Mutex

	l *List[T]
}

// NewLocked returns a Locked that takes ownership of l. l must not be used directly afterwards. A
// nil l is replaced with an empty Plain list.
func NewLocked[T comparable](l *List[T]) *Locked[T] {
	if l == nil {
		l = NewPlain[T]()
	}
	return &Locked[T]{l: l}
}

func (c *Locked[T]) list() *List[T] {
	if c.l == nil {
		c.l = NewPlain[T]()
	}
	return c.l
}

func (c *Locked[T]) Add(value T) bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().Add(value)
}

func (c *Locked[T]) Remove(value T) bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().Remove(value)
}

func (c *Locked[T]) Contains(value T) bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().Contains(value)
}

func (c *Locked[T]) Clear() {
	c.m.Lock()
	defer c.m.Unlock()
	c.list().Clear()
}

func (c *Locked[T]) At(index int) (T, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().At(index)
}

func (c *Locked[T]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().Len()
}

func (c *Locked[T]) IsEmpty() bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().IsEmpty()
}

func (c *Locked[T]) Cost() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().Cost()
}

func (c *Locked[T]) ResetCost() {
	c.m.Lock()
	defer c.m.Unlock()
	c.list().ResetCost()
}

// Snapshot returns a deep copy of the underlying list, taken under the lock.
func (c *Locked[T]) Snapshot() *List[T] {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list().Clone()
}
