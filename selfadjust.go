// Package selfadjust contains self-organizing lists: circular doubly-linked lists that reorder
// themselves on lookup so that frequently searched values become cheaper to find.
//
// Every list counts the nodes it examines. That count, the access cost, is how the different
// reordering policies are compared.
package selfadjust

import (
	"fmt"
	"strings"
)

// Searcher is the self-adjusting lookup. Contains reports whether value is present and may
// reorder the underlying list as a side effect, so it is not safe to call concurrently with any
// other operation.
type Searcher[T comparable] interface {
	Contains(value T) bool
}

// Set is a collection of distinct values with access-cost accounting.
//
// There are two provided implementations: List, which is not safe for concurrent use, and Locked,
// which is.
type Set[T comparable] interface {
	Searcher[T]
	// Add inserts value at the front, returning false if it was already present.
	Add(value T) bool
	// Remove deletes value, returning false if it was not present.
	Remove(value T) bool
	// Clear removes every value. It does not reset the access cost.
	Clear()
	// At returns the value at the given 0-based position, or false in the second return if the
	// position is out of range.
	At(index int) (T, bool)
	Len() int
	IsEmpty() bool
	// Cost returns the number of nodes examined since construction or the last ResetCost.
	Cost() int
	ResetCost()
}

var (
	_ Set[byte] = &List[byte]{}
	_ Set[byte] = &Locked[byte]{}
)

// Policy is the reordering a list applies to a value found by Contains.
type Policy int

const (
	// Plain never reorders.
	Plain Policy = iota
	// MoveToFront relinks a found value as the first in the list, leaving the relative order of
	// everything else untouched. Popular values migrate to the front in one access.
	MoveToFront
	// Transpose swaps a found value with its predecessor. A value needs k accesses to climb k
	// positions, so a single rare access can't push it ahead of many popular ones.
	Transpose
)

var policyNames = [...]string{
	Plain:       "plain",
	MoveToFront: "mtf",
	Transpose:   "transpose",
}

// Policies returns every policy in declaration order.
func Policies() []Policy { return []Policy{Plain, MoveToFront, Transpose} }

// Valid reports whether p is one of the policies returned by Policies.
func (p Policy) Valid() bool { return p >= Plain && p <= Transpose }

func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy parses the name of a policy as returned by Policy.String. It also accepts a few
// long-form spellings: "base", "move-to-front" and "swap".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "base":
		return Plain, nil
	case "mtf", "move-to-front", "movetofront":
		return MoveToFront, nil
	case "transpose", "swap":
		return Transpose, nil
	}
	return 0, fmt.Errorf("unknown policy %q", s)
}
