package btree

import "slices"

// FromSlice builds a tree holding items in the given order. Nodes are filled
// evenly, so the result is as flat as possible.
func FromSlice[E any](items []E) Tree[E] {
	if len(items) == 0 {
		return Tree[E]{}
	}
	level := make([]*node[E], 0, (len(items)+Capacity-1)/Capacity)
	from := 0
	for _, width := range partition(len(items)) {
		level = append(level, newLeaf(items[from:from+width]...))
		from += width
	}
	for len(level) > 1 {
		upper := make([]*node[E], 0, (len(level)+Capacity-1)/Capacity)
		from = 0
		for _, width := range partition(len(level)) {
			upper = append(upper, newBranch(level[from:from+width]...))
			from += width
		}
		level = upper
	}
	return Tree[E]{root: level[0]}
}

// partition divides n entries into the fewest groups of at most Capacity
// entries, with sizes differing by at most one. With more than one group,
// every group has at least MinFill entries.
func partition(n int) []int {
	groups := (n + Capacity - 1) / Capacity
	widths := make([]int, groups)
	for i := range widths {
		widths[i] = n / groups
		if i < n%groups {
			widths[i]++
		}
	}
	return widths
}

// Sorted returns a new tree with the elements of t sorted stably by cmp.
// t is left unchanged.
func (t *Tree[E]) Sorted(cmp func(a, b E) int) Tree[E] {
	items := t.Values()
	slices.SortStableFunc(items, cmp)
	return FromSlice(items)
}

// IsDense reports whether every leaf of a non-empty tree is a run and
// consecutive runs join without gap, i.e. the tree holds one contiguous
// range of values.
func (t *Tree[E]) IsDense() bool {
	dom := DomainOf[E]()
	if t.IsEmpty() || dom == nil {
		return false
	}
	dense := true
	var prev *node[E]
	t.eachLeaf(func(leaf *node[E]) bool {
		if leaf.kind != runKind || (prev != nil && !dom.Adjacent(prev.last(), *leaf.run)) {
			dense = false
		}
		prev = leaf
		return dense
	})
	return dense
}
