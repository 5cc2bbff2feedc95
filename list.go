package blist

import (
	"cmp"
	"iter"

	"github.com/npillmayer/blist/btree"
)

// Locator is a position within a container, see btree.Locator.
type Locator[T any] = btree.Locator[T]

// List is a sequence of elements with positional access.
//
// The zero List is empty and ready to use. Use Clone to copy a list;
// plain assignment makes two handles for the same list.
type List[T any] struct {
	tree btree.Tree[T]
}

// ListOf creates a list holding items in order.
func ListOf[T any](items ...T) List[T] {
	return List[T]{tree: btree.FromSlice(items)}
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return l.tree.Len()
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.tree.IsEmpty()
}

// At returns the element at position i.
func (l *List[T]) At(i int) (T, bool) {
	return l.tree.At(i)
}

// AtLocator returns the element loc points to. loc has to be a valid locator
// taken from l; anything else is a programming error and panics.
func (l *List[T]) AtLocator(loc Locator[T]) T {
	return l.tree.AtLocator(loc)
}

// LocatorAt returns a locator to the element at position i.
func (l *List[T]) LocatorAt(i int) (Locator[T], bool) {
	return l.tree.LocatorAt(i)
}

// Head returns a locator to the first element.
func (l *List[T]) Head() (Locator[T], bool) {
	return l.tree.First()
}

// Tail returns a locator to the last element.
func (l *List[T]) Tail() (Locator[T], bool) {
	return l.tree.Last()
}

// Append adds v at the end of the list.
func (l *List[T]) Append(v T) {
	l.tree.Append(v)
}

// PushFront adds v at the beginning of the list.
func (l *List[T]) PushFront(v T) {
	l.tree.PushFront(v)
}

// InsertAt inserts v so that it ends up at position i. i may equal Count(),
// which appends. Otherwise ErrIndexOutOfBounds is returned.
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.tree.Len() {
		return ErrIndexOutOfBounds
	}
	err := l.tree.InsertAt(i, v)
	assert(err == nil, "list insert failed for valid position")
	return nil
}

// RemoveAt removes the element at position i and returns it.
func (l *List[T]) RemoveAt(i int) (T, bool) {
	return l.tree.RemoveAt(i)
}

// SetAt replaces the element at position i.
func (l *List[T]) SetAt(i int, v T) bool {
	return l.tree.SetAt(i, v)
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) {
	return l.tree.RemoveAt(0)
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, bool) {
	return l.tree.RemoveAt(l.tree.Len() - 1)
}

// FindFunc returns a locator to the first element satisfying match.
func (l *List[T]) FindFunc(match func(T) bool) (Locator[T], bool) {
	for loc, ok := l.tree.First(); ok; ok = loc.Next() {
		if match(loc.Value()) {
			return loc, true
		}
	}
	return Locator[T]{}, false
}

// Find returns a locator to the first element of l equal to v.
func Find[T comparable](l *List[T], v T) (Locator[T], bool) {
	return l.FindFunc(func(x T) bool { return x == v })
}

// Index returns the position of the first element of l equal to v, or -1.
func Index[T comparable](l *List[T], v T) int {
	if loc, ok := Find(l, v); ok {
		return loc.Index()
	}
	return -1
}

// SortedFunc returns a new list with the elements of l sorted by cmp. The
// sort is stable; l is left unchanged.
func (l *List[T]) SortedFunc(cmp func(a, b T) int) List[T] {
	return List[T]{tree: l.tree.Sorted(cmp)}
}

// Sorted returns a new list with the elements of l in ascending order.
func Sorted[T cmp.Ordered](l *List[T]) List[T] {
	return l.SortedFunc(cmp.Compare[T])
}

// Clone returns an independent copy of l in constant time.
func (l *List[T]) Clone() List[T] {
	return List[T]{tree: l.tree.Clone()}
}

// Deplete removes all elements and releases the storage not shared with
// clones of l.
func (l *List[T]) Deplete() {
	l.tree.Deplete()
}

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return l.tree.All()
}

// Backward returns an iterator over the elements in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return l.tree.Backward()
}

// Values returns the elements as a slice.
func (l *List[T]) Values() []T {
	return l.tree.Values()
}

// Check validates the internal structure of l. It is meant for tests.
func (l *List[T]) Check() error {
	return l.tree.Check()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
