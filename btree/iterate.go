package btree

import "iter"

// All returns an iterator over the elements in order. The iteration ends
// early if the tree is modified.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for loc, ok := t.First(); ok; ok = loc.Next() {
			if !yield(loc.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse order.
func (t *Tree[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for loc, ok := t.Last(); ok; ok = loc.Prev() {
			if !yield(loc.Value()) {
				return
			}
		}
	}
}

// Values returns the elements in order as a new slice.
func (t *Tree[E]) Values() []E {
	vs := make([]E, 0, t.Len())
	t.eachLeaf(func(leaf *node[E]) bool {
		if leaf.kind == runKind {
			vs = append(vs, leaf.values(0, leaf.size)...)
		} else {
			vs = append(vs, leaf.items[:leaf.fill]...)
		}
		return true
	})
	return vs
}
