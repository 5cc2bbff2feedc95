package btree

import "sort"

// All helpers that modify a node expect it to be exclusive (see mut).

// --- Plain leaves ----------------------------------------------------------

func (n *node[E]) insertItem(at int, v E) {
	assert(n.kind == leafKind, "insertItem called on non-leaf")
	assert(int(n.fill) < Capacity, "insertItem called on full leaf")
	copy(n.items[at+1:n.fill+1], n.items[at:n.fill])
	n.items[at] = v
	n.fill++
	n.size++
}

func (n *node[E]) removeItem(at int) E {
	assert(n.kind == leafKind, "removeItem called on non-leaf")
	v := n.items[at]
	copy(n.items[at:n.fill], n.items[at+1:n.fill])
	n.fill--
	var zero E
	n.items[n.fill] = zero
	n.size--
	return v
}

// putItem inserts v at offset at of a plain leaf. If the leaf is full it is
// split first and the new right sibling is returned.
func (n *node[E]) putItem(at int, v E) *node[E] {
	if int(n.fill) < Capacity {
		n.insertItem(at, v)
		return nil
	}
	right := newLeaf(n.items[MinFill:n.fill]...)
	clear(n.items[MinFill:n.fill])
	n.fill, n.size = MinFill, MinFill
	if at <= MinFill {
		n.insertItem(at, v)
	} else {
		right.insertItem(at-MinFill, v)
	}
	return right
}

// becomeLeaf turns n into a plain leaf holding items.
func (n *node[E]) becomeLeaf(items []E) {
	assert(n.kind != branchKind, "becomeLeaf called on branch")
	if n.items == nil {
		n.items = new([Capacity]E)
	} else {
		clear(n.items[:])
	}
	copy(n.items[:], items)
	n.kind, n.run = leafKind, nil
	n.fill, n.size = uint8(len(items)), len(items)
}

// --- Run leaves ------------------------------------------------------------

// flatten converts a short run into a plain leaf with the same elements.
func (n *node[E]) flatten() {
	assert(n.kind == runKind, "flatten called on non-run")
	assert(n.size <= Capacity, "flatten called on run exceeding leaf capacity")
	dom := DomainOf[E]()
	items := make([]E, n.size)
	for i := range items {
		items[i] = dom.Offset(*n.run, i)
	}
	n.becomeLeaf(items)
}

// values expands count elements of a run starting at offset from.
func (n *node[E]) values(from, count int) []E {
	dom := DomainOf[E]()
	vs := make([]E, count)
	for i := range vs {
		vs[i] = dom.Offset(*n.run, from+i)
	}
	return vs
}

func (n *node[E]) popFront() E {
	if n.kind == leafKind {
		return n.removeItem(0)
	}
	v := *n.run
	*n.run = DomainOf[E]().Offset(v, 1)
	n.size--
	return v
}

func (n *node[E]) popBack() E {
	if n.kind == leafKind {
		return n.removeItem(int(n.fill) - 1)
	}
	v := n.last()
	n.size--
	return v
}

// --- Branches --------------------------------------------------------------

// insertChild and removeChild leave size and cached keys to refresh.

func (n *node[E]) insertChild(at int, c *node[E]) {
	assert(n.kind == branchKind, "insertChild called on leaf")
	assert(int(n.fill) < Capacity, "insertChild called on full branch")
	copy(n.kids.nodes[at+1:n.fill+1], n.kids.nodes[at:n.fill])
	n.kids.nodes[at] = c
	n.fill++
}

func (n *node[E]) removeChild(at int) *node[E] {
	assert(n.kind == branchKind, "removeChild called on leaf")
	c := n.kids.nodes[at]
	copy(n.kids.nodes[at:n.fill], n.kids.nodes[at+1:n.fill])
	copy(n.kids.last[at:n.fill], n.kids.last[at+1:n.fill])
	n.fill--
	n.kids.nodes[n.fill] = nil
	var zero E
	n.kids.last[n.fill] = zero
	return c
}

// putChild links c as child at slot at, splitting n if it is full. It
// returns the new right sibling of n, if any.
func (n *node[E]) putChild(at int, c *node[E]) *node[E] {
	if int(n.fill) < Capacity {
		n.insertChild(at, c)
		n.refresh()
		return nil
	}
	right := newBranch(n.kids.nodes[MinFill:n.fill]...)
	clear(n.kids.nodes[MinFill:n.fill])
	var zero E
	for i := MinFill; i < int(n.fill); i++ {
		n.kids.last[i] = zero
	}
	n.fill = MinFill
	if at <= MinFill {
		n.insertChild(at, c)
	} else {
		right.insertChild(at-MinFill, c)
	}
	n.refresh()
	right.refresh()
	return right
}

// route maps the position pos within a branch to a child slot and the
// position inside that child. When inserting, a position at a child seam
// lands at the end of the left child.
func (n *node[E]) route(pos int, inserting bool) (slot int, local int) {
	for i, kid := range n.kids.nodes[:n.fill] {
		if pos < kid.size || (inserting && pos == kid.size) {
			return i, pos
		}
		pos -= kid.size
	}
	assert(false, "route: position exceeds subtree size")
	return 0, 0
}

// offset returns the number of elements in the children before slot.
func (n *node[E]) offset(slot int) int {
	off := 0
	for _, kid := range n.kids.nodes[:slot] {
		off += kid.size
	}
	return off
}

// seek returns the slot of the first child whose last element is not less
// than probe, or greater than probe if upper is set. Probes beyond all
// elements land in the last child.
func (n *node[E]) seek(probe E, cmp func(a, b E) int, upper bool) int {
	return sort.Search(int(n.fill)-1, func(i int) bool {
		c := cmp(n.kids.last[i], probe)
		return c > 0 || (!upper && c == 0)
	})
}

// search returns the offset of the first element of a leaf not less than
// probe (greater than probe if upper is set), and whether the element at
// that offset equals probe.
func (n *node[E]) search(probe E, cmp func(a, b E) int, upper bool) (int, bool) {
	if n.kind == runKind {
		if cmp(probe, *n.run) < 0 {
			return 0, false
		}
		if cmp(probe, n.last()) > 0 {
			return n.size, false
		}
		k := DomainOf[E]().Distance(*n.run, probe)
		if upper {
			return k + 1, false
		}
		return k, true
	}
	at := sort.Search(int(n.fill), func(i int) bool {
		c := cmp(n.items[i], probe)
		return c > 0 || (!upper && c == 0)
	})
	return at, !upper && at < int(n.fill) && cmp(n.items[at], probe) == 0
}

// --- Rebalancing -----------------------------------------------------------

func (n *node[E]) underflows() bool {
	if n.kind == branchKind {
		return n.fill < MinFill
	}
	return n.size < MinFill
}

func (n *node[E]) canLend() bool {
	if n.kind == branchKind {
		return n.fill > MinFill
	}
	return n.size > MinFill
}

// rebalance repairs an underflowing child at slot of branch n, trying
// borrow-left, borrow-right, merge-left, merge-right in this order. The child
// has to be exclusive already.
func (n *node[E]) rebalance(slot int) {
	child := n.kids.nodes[slot]
	if !child.underflows() {
		return
	}
	if child.kind == runKind {
		child.flatten()
	}
	hasLeft := slot > 0
	hasRight := slot+1 < int(n.fill)
	switch {
	case hasLeft && n.kids.nodes[slot-1].canLend():
		n.borrowLeft(slot)
	case hasRight && n.kids.nodes[slot+1].canLend():
		n.borrowRight(slot)
	case hasLeft:
		n.merge(slot - 1)
	case hasRight:
		n.merge(slot)
	}
}

func (n *node[E]) borrowLeft(slot int) {
	left := mut(&n.kids.nodes[slot-1])
	child := n.kids.nodes[slot]
	if child.kind == branchKind {
		child.insertChild(0, left.removeChild(int(left.fill)-1))
		left.refresh()
		child.refresh()
	} else {
		child.insertItem(0, left.popBack())
	}
	n.kids.last[slot-1] = left.last()
	n.kids.last[slot] = child.last()
}

func (n *node[E]) borrowRight(slot int) {
	right := mut(&n.kids.nodes[slot+1])
	child := n.kids.nodes[slot]
	if child.kind == branchKind {
		child.insertChild(int(child.fill), right.removeChild(0))
		right.refresh()
		child.refresh()
	} else {
		child.insertItem(int(child.fill), right.popFront())
	}
	n.kids.last[slot] = child.last()
}

// merge moves all content of the child at slot+1 into the child at slot and
// drops the emptied node.
func (n *node[E]) merge(slot int) {
	left := mut(&n.kids.nodes[slot])
	right := mut(&n.kids.nodes[slot+1])
	if left.kind == runKind {
		left.flatten()
	}
	if right.kind == runKind {
		right.flatten()
	}
	if left.kind == branchKind {
		assert(int(left.fill+right.fill) <= Capacity, "merge: branch overflow")
		for _, kid := range right.kids.nodes[:right.fill] {
			left.insertChild(int(left.fill), kid)
		}
		left.refresh()
	} else {
		assert(int(left.fill+right.fill) <= Capacity, "merge: leaf overflow")
		copy(left.items[left.fill:], right.items[:right.fill])
		left.fill += right.fill
		left.size = int(left.fill)
	}
	n.removeChild(slot + 1)
	discard(right)
	n.kids.last[slot] = left.last()
}
