package btree

// Ordered operations keep the elements of a tree sorted by a comparison
// function. All operations on one tree have to use the same function.

// Insert adds v at its sorted position. Elements comparing equal to v are
// treated according to policy.
//
// With KeepExisting and DenseRuns an already present element leaves the tree
// untouched: no nodes are copied, and locators stay valid.
func (t *Tree[E]) Insert(v E, cmp func(a, b E) int, policy Policy) Outcome {
	p := newPlacement(cmp, policy)
	if t.root == nil {
		if p.dom != nil {
			t.root = newRun(v, 1)
		} else {
			t.root = newLeaf(v)
		}
		return Inserted
	}
	if p.policy == KeepExisting || p.policy == DenseRuns {
		if _, found := t.Find(v, cmp); found {
			return Present
		}
	}
	root := mut(&t.root)
	split, outcome := insert(root, v, p)
	if split != nil {
		t.grow(split)
	}
	return outcome
}

func insert[E any](n *node[E], v E, p placement[E]) (*node[E], Outcome) {
	switch n.kind {
	case runKind:
		return n.putRunValue(v, p)
	case leafKind:
		at, found := n.search(v, p.cmp, p.policy == AppendEqual)
		if found {
			if p.policy == Replace {
				n.items[at] = v
				return nil, Replaced
			}
			return nil, Present
		}
		return n.putItem(at, v), Inserted
	}
	slot := n.seek(v, p.cmp, p.policy == AppendEqual)
	child := mut(&n.kids.nodes[slot])
	split, outcome := insert(child, v, p)
	if split != nil {
		return n.putChild(slot+1, split), outcome
	}
	if outcome == Inserted {
		n.size++
	}
	n.kids.last[slot] = child.last()
	return nil, outcome
}

// Remove deletes the first element comparing equal to probe and returns it.
// If there is none, the tree is left untouched.
func (t *Tree[E]) Remove(probe E, cmp func(a, b E) int) (E, bool) {
	var zero E
	if _, found := t.Find(probe, cmp); !found {
		return zero, false
	}
	root := mut(&t.root)
	split, v := remove(root, probe, cmp)
	if split != nil {
		t.grow(split)
	}
	t.shrink()
	return v, true
}

// remove deletes probe from the exclusive subtree n, which must contain it.
// Cutting a long run in two may yield a new right sibling of n.
func remove[E any](n *node[E], probe E, cmp func(a, b E) int) (*node[E], E) {
	switch n.kind {
	case runKind:
		return n.cutRun(probe, cmp)
	case leafKind:
		at, found := n.search(probe, cmp, false)
		assert(found, "remove: element vanished")
		return nil, n.removeItem(at)
	}
	slot := n.seek(probe, cmp, false)
	child := mut(&n.kids.nodes[slot])
	split, v := remove(child, probe, cmp)
	if split != nil {
		return n.putChild(slot+1, split), v
	}
	n.size--
	if child.size > 0 {
		n.kids.last[slot] = child.last()
	}
	n.rebalance(slot)
	return nil, v
}

// Find returns a locator to the first element comparing equal to probe.
func (t *Tree[E]) Find(probe E, cmp func(a, b E) int) (Locator[E], bool) {
	loc := t.LowerBound(probe, cmp)
	if !loc.Valid() || cmp(loc.Value(), probe) != 0 {
		return Locator[E]{}, false
	}
	return loc, true
}

// Contains reports whether an element equal to probe is present.
func (t *Tree[E]) Contains(probe E, cmp func(a, b E) int) bool {
	_, found := t.Find(probe, cmp)
	return found
}

// LowerBound returns a locator to the first element not less than probe. The
// locator is invalid if all elements are less than probe.
func (t *Tree[E]) LowerBound(probe E, cmp func(a, b E) int) Locator[E] {
	return t.bound(probe, cmp, false)
}

// UpperBound returns a locator to the first element greater than probe. The
// locator is invalid if no element is greater than probe.
func (t *Tree[E]) UpperBound(probe E, cmp func(a, b E) int) Locator[E] {
	return t.bound(probe, cmp, true)
}

func (t *Tree[E]) bound(probe E, cmp func(a, b E) int, upper bool) Locator[E] {
	if t == nil || t.root == nil {
		return Locator[E]{}
	}
	loc := t.locator()
	n, index := t.root, 0
	for !n.isLeaf() {
		slot := n.seek(probe, cmp, upper)
		index += n.offset(slot)
		loc.push(n, slot)
		n = n.kids.nodes[slot]
	}
	off, _ := n.search(probe, cmp, upper)
	if off == n.size {
		return Locator[E]{}
	}
	loc.leaf, loc.off, loc.index = n, off, index+off
	return loc
}
