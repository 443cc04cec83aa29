// Package intitem supplies the simplest possible embedding of
// sumtree.Item/Summary/Dimension: a tree item that is just an int, summarized
// by its count and running sum. It exercises push/splice/cursor behavior
// independently of any "real" domain, and is used as the fixture for the
// core package's own tests.
package intitem

import "github.com/npillmayer/sumtree"

// Item is a single integer value stored in a tree.
type Item int

// Summary tracks how many items a subtree holds and their total value.
type Summary struct {
	Count int
	Sum   int
}

// Add implements sumtree.Summary. Order does not matter here since both
// fields are commutative, but Add is still written left-biased to honor
// the monoid contract.
func (s Summary) Add(other Summary) Summary {
	return Summary{Count: s.Count + other.Count, Sum: s.Sum + other.Sum}
}

// Summarize implements sumtree.Item.
func (it Item) Summarize() Summary {
	return Summary{Count: 1, Sum: int(it)}
}

// Count projects a Summary onto the number of items it covers.
type Count int

func (Count) FromSummary(s Summary) Count { return Count(s.Count) }
func (c Count) Add(other Count) Count     { return c + other }
func (c Count) Compare(other Count) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

// Sum projects a Summary onto the running total of item values.
type Sum int

func (Sum) FromSummary(s Summary) Sum { return Sum(s.Sum) }
func (s Sum) Add(other Sum) Sum       { return s + other }
func (s Sum) Compare(other Sum) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// Tree is the instantiation of sumtree.Tree used throughout this package's
// tests and the core package's own property tests.
type Tree = sumtree.Tree[Item, Summary]

// New returns an empty Tree of integers.
func New() Tree {
	return sumtree.New[Item, Summary]()
}

// FromSlice builds a Tree holding exactly the given values, in order.
func FromSlice(values []int) Tree {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item(v)
	}
	return New().Extend(items)
}

// ToSlice drains a Tree's items into a plain []int, for comparison against a
// reference oracle in property tests.
func ToSlice(t Tree) []int {
	items := t.Items()
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = int(it)
	}
	return out
}
