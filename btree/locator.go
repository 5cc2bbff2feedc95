package btree

// frame is one step of a locator's path: a branch and the slot taken.
type frame[E any] struct {
	n    *node[E]
	slot int
}

// Locator addresses one element of a tree by its position in a specific leaf.
//
// A locator stays valid as long as the tree it was taken from is not
// modified. Modifying that tree invalidates all of its locators, while trees
// sharing structure with it (clones) may be modified freely. Locators are
// values; copies step independently.
type Locator[E any] struct {
	root  *node[E]
	stamp uint32
	path  [maxDepth]frame[E]
	depth int
	leaf  *node[E]
	off   int
	index int
}

func (t *Tree[E]) locator() Locator[E] {
	return Locator[E]{root: t.root, stamp: t.root.stamp}
}

func (loc *Locator[E]) push(n *node[E], slot int) {
	assert(loc.depth < maxDepth, "locator: tree exceeds maximum depth")
	loc.path[loc.depth] = frame[E]{n: n, slot: slot}
	loc.depth++
}

// Valid reports whether the locator addresses an element of an unmodified
// tree.
func (loc *Locator[E]) Valid() bool {
	return loc != nil && loc.leaf != nil && loc.root.ref.Load() > 0 && loc.root.stamp == loc.stamp
}

// Value returns the element the locator points to. It panics on an invalid
// locator.
func (loc *Locator[E]) Value() E {
	assert(loc.Valid(), "btree: access through invalid locator")
	return loc.leaf.elem(loc.off)
}

// Index returns the position of the element within its tree.
func (loc *Locator[E]) Index() int {
	return loc.index
}

// Next moves to the following element. It returns false, and invalidates
// the locator, when stepping past the last element.
func (loc *Locator[E]) Next() bool {
	if !loc.Valid() {
		return false
	}
	loc.index++
	if loc.off+1 < loc.leaf.size {
		loc.off++
		return true
	}
	for d := loc.depth - 1; d >= 0; d-- {
		f := &loc.path[d]
		if f.slot+1 < int(f.n.fill) {
			f.slot++
			loc.depth = d + 1
			loc.descend(f.n.kids.nodes[f.slot], false)
			return true
		}
	}
	loc.leaf = nil
	return false
}

// Prev moves to the preceding element. It returns false, and invalidates
// the locator, when stepping before the first element.
func (loc *Locator[E]) Prev() bool {
	if !loc.Valid() {
		return false
	}
	loc.index--
	if loc.off > 0 {
		loc.off--
		return true
	}
	for d := loc.depth - 1; d >= 0; d-- {
		f := &loc.path[d]
		if f.slot > 0 {
			f.slot--
			loc.depth = d + 1
			loc.descend(f.n.kids.nodes[f.slot], true)
			return true
		}
	}
	loc.leaf = nil
	return false
}

// descend walks down to the leftmost (or rightmost) leaf of n.
func (loc *Locator[E]) descend(n *node[E], rightmost bool) {
	for !n.isLeaf() {
		slot := 0
		if rightmost {
			slot = int(n.fill) - 1
		}
		loc.push(n, slot)
		n = n.kids.nodes[slot]
	}
	loc.leaf, loc.off = n, 0
	if rightmost {
		loc.off = n.size - 1
	}
}

// LocatorAt returns a locator to the element at position pos.
func (t *Tree[E]) LocatorAt(pos int) (Locator[E], bool) {
	if pos < 0 || pos >= t.Len() {
		return Locator[E]{}, false
	}
	loc := t.locator()
	loc.index = pos
	n := t.root
	for !n.isLeaf() {
		var slot int
		slot, pos = n.route(pos, false)
		loc.push(n, slot)
		n = n.kids.nodes[slot]
	}
	loc.leaf, loc.off = n, pos
	return loc, true
}

// First returns a locator to the first element.
func (t *Tree[E]) First() (Locator[E], bool) {
	return t.LocatorAt(0)
}

// Last returns a locator to the last element.
func (t *Tree[E]) Last() (Locator[E], bool) {
	return t.LocatorAt(t.Len() - 1)
}

// AtLocator returns the element loc points to. The locator has to be valid
// and taken from t.
func (t *Tree[E]) AtLocator(loc Locator[E]) E {
	assert(t != nil && loc.root == t.root, "btree: locator belongs to another tree")
	return loc.Value()
}
