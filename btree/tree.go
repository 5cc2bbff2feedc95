package btree

import (
	"fmt"
)

// Tree is a copy-on-write multiway tree of elements E.
//
// The zero Tree is empty and ready to use. A Tree is a single pointer; copies
// made by plain assignment alias the same tree and must not both be used.
// Use Clone to obtain an independent tree sharing the current structure.
type Tree[E any] struct {
	root *node[E]
}

// Clone returns an independent tree with the same contents in O(1). Both
// trees share their nodes until either of them is modified.
func (t *Tree[E]) Clone() Tree[E] {
	if t == nil || t.root == nil {
		return Tree[E]{}
	}
	t.root.incRef()
	return Tree[E]{root: t.root}
}

// Shares reports whether t and other currently share their root node.
func (t *Tree[E]) Shares(other *Tree[E]) bool {
	return t != nil && other != nil && t.root != nil && t.root == other.root
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements in O(1).
func (t *Tree[E]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.size
}

// Height returns the number of levels, where 0 means empty and 1 means the
// root is a leaf.
func (t *Tree[E]) Height() int {
	if t == nil {
		return 0
	}
	h := 0
	for n := t.root; n != nil; h++ {
		if n.isLeaf() {
			return h + 1
		}
		n = n.kids.nodes[0]
	}
	return h
}

// At returns the element at position pos.
func (t *Tree[E]) At(pos int) (E, bool) {
	var zero E
	if pos < 0 || pos >= t.Len() {
		return zero, false
	}
	n := t.root
	for !n.isLeaf() {
		var slot int
		slot, pos = n.route(pos, false)
		n = n.kids.nodes[slot]
	}
	return n.elem(pos), true
}

// InsertAt inserts v before the element at position pos; pos == Len()
// appends.
func (t *Tree[E]) InsertAt(pos int, v E) error {
	if pos < 0 || pos > t.Len() {
		return fmt.Errorf("%w: insert at %d into tree of length %d", ErrIndexOutOfBounds, pos, t.Len())
	}
	if t.root == nil {
		t.root = newLeaf(v)
		return nil
	}
	root := mut(&t.root)
	if split := insertAt(root, pos, v); split != nil {
		t.grow(split)
	}
	return nil
}

// Append adds v behind the last element.
func (t *Tree[E]) Append(v E) {
	err := t.InsertAt(t.Len(), v)
	assert(err == nil, "append failed")
}

// PushFront inserts v before the first element.
func (t *Tree[E]) PushFront(v E) {
	err := t.InsertAt(0, v)
	assert(err == nil, "push-front failed")
}

// insertAt inserts v at position pos of the exclusive subtree n and returns
// a new right sibling of n if n had to be split.
func insertAt[E any](n *node[E], pos int, v E) *node[E] {
	if n.isLeaf() {
		assert(n.kind == leafKind, "positional insert into a run leaf")
		return n.putItem(pos, v)
	}
	slot, local := n.route(pos, true)
	child := mut(&n.kids.nodes[slot])
	if split := insertAt(child, local, v); split != nil {
		return n.putChild(slot+1, split)
	}
	n.size++
	n.kids.last[slot] = child.last()
	return nil
}

// RemoveAt removes and returns the element at position pos.
func (t *Tree[E]) RemoveAt(pos int) (E, bool) {
	var zero E
	if pos < 0 || pos >= t.Len() {
		return zero, false
	}
	root := mut(&t.root)
	v := removeAt(root, pos)
	t.shrink()
	return v, true
}

func removeAt[E any](n *node[E], pos int) E {
	if n.isLeaf() {
		assert(n.kind == leafKind, "positional removal from a run leaf")
		return n.removeItem(pos)
	}
	slot, local := n.route(pos, false)
	child := mut(&n.kids.nodes[slot])
	v := removeAt(child, local)
	n.size--
	if child.size > 0 {
		n.kids.last[slot] = child.last()
	}
	n.rebalance(slot)
	return v
}

// SetAt overwrites the element at position pos.
func (t *Tree[E]) SetAt(pos int, v E) bool {
	if pos < 0 || pos >= t.Len() {
		return false
	}
	setAt(mut(&t.root), pos, v)
	return true
}

func setAt[E any](n *node[E], pos int, v E) {
	if n.isLeaf() {
		assert(n.kind == leafKind, "positional update of a run leaf")
		n.items[pos] = v
		return
	}
	slot, local := n.route(pos, false)
	child := mut(&n.kids.nodes[slot])
	setAt(child, local, v)
	n.kids.last[slot] = child.last()
}

// grow puts a new root above the current one and its split sibling.
func (t *Tree[E]) grow(split *node[E]) {
	t.root = newBranch(t.root, split)
	tracer().Debugf("btree: root split, tree of %d elements grows to height %d", t.root.size, t.Height())
}

// shrink restores the root rules after a removal: an empty tree has no root
// and a branch root has at least two children.
func (t *Tree[E]) shrink() {
	for t.root != nil {
		switch {
		case t.root.size == 0:
			release(t.root)
			t.root = nil
		case t.root.kind == branchKind && t.root.fill == 1:
			old := t.root
			t.root = old.kids.nodes[0]
			discard(old)
		default:
			return
		}
	}
}

// Deplete empties the tree and releases its nodes. Nodes still shared with
// other trees are not visited, so depleting a clone costs time proportional
// to the nodes it owns exclusively. Deplete returns the number of nodes
// freed.
func (t *Tree[E]) Deplete() int {
	if t == nil || t.root == nil {
		return 0
	}
	freed := release(t.root)
	t.root = nil
	tracer().Debugf("btree: depleted tree, %d nodes freed", freed)
	return freed
}

// Detach moves the contents of t into a new tree and leaves t empty. Run
// leaves are expanded, so the result supports positional editing.
func (t *Tree[E]) Detach() Tree[E] {
	if t == nil || t.root == nil {
		return Tree[E]{}
	}
	moved := Tree[E]{root: t.root}
	t.root = nil
	if !moved.hasRuns() {
		return moved
	}
	items := moved.Values()
	moved.Deplete()
	return FromSlice(items)
}

func (t *Tree[E]) hasRuns() bool {
	found := false
	t.eachLeaf(func(leaf *node[E]) bool {
		found = leaf.kind == runKind
		return !found
	})
	return found
}

// eachLeaf calls f for every leaf in order until f returns false.
func (t *Tree[E]) eachLeaf(f func(leaf *node[E]) bool) {
	if t == nil || t.root == nil {
		return
	}
	var walk func(n *node[E]) bool
	walk = func(n *node[E]) bool {
		if n.isLeaf() {
			return f(n)
		}
		for _, kid := range n.kids.nodes[:n.fill] {
			if !walk(kid) {
				return false
			}
		}
		return true
	}
	walk(t.root)
}
