package xlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func values[T any](l *List[T]) []T {
	var out []T
	for node := l.Front(); node != nil; node = node.Next() {
		out = append(out, node.Value)
	}
	return out
}

func backwards[T any](l *List[T]) []T {
	var out []T
	for node := l.Back(); node != nil; node = node.Prev() {
		out = append([]T{node.Value}, out...)
	}
	return out
}

// checkRing walks the ring from the sentinel and verifies every link is mutual and the walk
// returns to the sentinel after exactly Len() nodes.
func checkRing[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.root == nil {
		require.Zero(t, l.Len())
		return
	}
	n := 0
	for node := l.root.next; node != l.root; node = node.next {
		require.False(t, node.sentinel)
		require.Same(t, node, node.next.prev)
		require.Same(t, node, node.prev.next)
		n++
		require.LessOrEqual(t, n, l.Len(), "ring longer than Len()")
	}
	require.Equal(t, l.Len(), n)
	require.Same(t, l.root, l.root.next.prev)
	require.Equal(t, values(l), backwards(l))
}

func TestZeroValue(t *testing.T) {
	var l List[int]
	require.Zero(t, l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
	l.Clear()
	checkRing(t, &l)
}

func TestPush(t *testing.T) {
	var l List[int]
	l.PushFront(2)
	l.PushFront(1)
	l.PushBack(3)
	checkRing(t, &l)
	require.Equal(t, []int{1, 2, 3}, values(&l))
	require.Equal(t, 1, l.Front().Value)
	require.Equal(t, 3, l.Back().Value)
	require.Nil(t, l.Front().Prev())
	require.Nil(t, l.Back().Next())
}

func TestRemove(t *testing.T) {
	var l List[int]
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	l.Remove(b)
	checkRing(t, &l)
	require.Equal(t, []int{1, 3}, values(&l))
	require.Nil(t, b.Next())
	require.Nil(t, b.Prev())

	l.Remove(a)
	l.Remove(c)
	checkRing(t, &l)
	require.Zero(t, l.Len())
	require.Nil(t, l.Front())
}

func TestMoveToFront(t *testing.T) {
	var l List[int]
	nodes := []*Node[int]{l.PushBack(1), l.PushBack(2), l.PushBack(3), l.PushBack(4)}

	l.MoveToFront(nodes[0])
	checkRing(t, &l)
	require.Equal(t, []int{1, 2, 3, 4}, values(&l))

	l.MoveToFront(nodes[2])
	checkRing(t, &l)
	require.Equal(t, []int{3, 1, 2, 4}, values(&l))

	l.MoveToFront(nodes[3])
	checkRing(t, &l)
	require.Equal(t, []int{4, 3, 1, 2}, values(&l))
}

func TestMoveBefore(t *testing.T) {
	var l List[int]
	nodes := []*Node[int]{l.PushBack(1), l.PushBack(2), l.PushBack(3)}

	l.MoveBefore(nodes[2], nodes[1])
	checkRing(t, &l)
	require.Equal(t, []int{1, 3, 2}, values(&l))

	l.MoveBefore(nodes[2], nodes[0])
	checkRing(t, &l)
	require.Equal(t, []int{3, 1, 2}, values(&l))

	// Before its own successor: nothing to do.
	l.MoveBefore(nodes[2], nodes[0])
	checkRing(t, &l)
	require.Equal(t, []int{3, 1, 2}, values(&l))

	l.MoveBefore(nodes[0], nodes[0])
	checkRing(t, &l)
	require.Equal(t, []int{3, 1, 2}, values(&l))
}

func TestClear(t *testing.T) {
	var l List[int]
	a := l.PushBack(1)
	l.PushBack(2)
	l.Clear()
	checkRing(t, &l)
	require.Nil(t, a.Next())

	l.PushFront(5)
	checkRing(t, &l)
	require.Equal(t, []int{5}, values(&l))
}

func TestCopyTransfersNodes(t *testing.T) {
	var l List[int]
	l.PushBack(1)
	l.PushBack(2)

	moved := l
	l = List[int]{}
	checkRing(t, &moved)
	checkRing(t, &l)
	require.Equal(t, []int{1, 2}, values(&moved))
	require.Zero(t, l.Len())
}
