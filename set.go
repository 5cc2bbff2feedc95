package blist

import (
	"cmp"
	"iter"

	"github.com/npillmayer/blist/btree"
)

// Set is a sorted collection of unique values.
//
// Sets of predeclared integer types store runs of consecutive values in
// constant space per run.
type Set[T cmp.Ordered] struct {
	tree btree.Tree[T]
}

// SetOf creates a set holding values.
func SetOf[T cmp.Ordered](values ...T) Set[T] {
	var s Set[T]
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Count returns the number of values.
func (s *Set[T]) Count() int {
	return s.tree.Len()
}

// Insert adds v and reports whether it was not yet present. Inserting a
// present value leaves the set untouched.
func (s *Set[T]) Insert(v T) bool {
	return s.tree.Insert(v, cmp.Compare[T], btree.DenseRuns) == btree.Inserted
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	_, found := s.tree.Remove(v, cmp.Compare[T])
	return found
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	return s.tree.Contains(v, cmp.Compare[T])
}

// Find returns a locator to v.
func (s *Set[T]) Find(v T) (Locator[T], bool) {
	return s.tree.Find(v, cmp.Compare[T])
}

// LowerBound returns a locator to the smallest value not less than v.
func (s *Set[T]) LowerBound(v T) (Locator[T], bool) {
	loc := s.tree.LowerBound(v, cmp.Compare[T])
	return loc, loc.Valid()
}

// At returns the i-th smallest value.
func (s *Set[T]) At(i int) (T, bool) {
	return s.tree.At(i)
}

// AtLocator returns the value loc points to.
func (s *Set[T]) AtLocator(loc Locator[T]) T {
	return s.tree.AtLocator(loc)
}

// IsDense reports whether the set consists of one contiguous range of
// integers stored as runs.
//
// IsDense describes the storage, not just the values: a contiguous set may
// still report false. This happens when a value extending a run was placed
// into the following leaf, or when rebalancing moved edge values of a run
// into a plain leaf.
func (s *Set[T]) IsDense() bool {
	return s.tree.IsDense()
}

// Sorted returns a clone; a set is always sorted.
func (s *Set[T]) Sorted() Set[T] {
	return s.Clone()
}

// Clone returns an independent copy of s in constant time.
func (s *Set[T]) Clone() Set[T] {
	return Set[T]{tree: s.tree.Clone()}
}

// Deplete empties the set and releases the storage not shared with clones.
func (s *Set[T]) Deplete() {
	s.tree.Deplete()
}

// All returns an iterator over the values in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.tree.All()
}

// Backward returns an iterator over the values in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return s.tree.Backward()
}

// Check validates the internal structure and the order of the set.
func (s *Set[T]) Check() error {
	if err := s.tree.Check(); err != nil {
		return err
	}
	return s.tree.CheckOrder(cmp.Compare[T], true)
}
