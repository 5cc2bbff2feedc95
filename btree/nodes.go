package btree

import "sync/atomic"

type nodeKind uint8

const (
	leafKind   nodeKind = iota // plain leaf, elements in items
	runKind                    // dense range start, start+1, …, start+size-1
	branchKind                 // inner node, children in kids
)

func (k nodeKind) String() string {
	switch k {
	case leafKind:
		return "leaf"
	case runKind:
		return "run"
	case branchKind:
		return "branch"
	}
	return "?"
}

// node is a tree node of any kind. Only the payload pointer matching kind is
// set; the others are nil.
//
// A node with ref == 1 is owned by exactly one parent (or tree) and may be
// modified in place. Shared nodes are immutable and have to be copied first,
// see mut.
type node[E any] struct {
	ref   atomic.Int32
	stamp uint32 // bumped on every in-place modification
	kind  nodeKind
	fill  uint8 // elements of a plain leaf, children of a branch
	size  int   // elements in this subtree
	items *[Capacity]E
	run   *E // first element of a run leaf
	kids  *children[E]
}

type children[E any] struct {
	nodes [Capacity]*node[E]
	last  [Capacity]E // last element of each child subtree
}

func newLeaf[E any](items ...E) *node[E] {
	assert(len(items) <= Capacity, "btree: leaf overflow")
	n := &node[E]{kind: leafKind, items: new([Capacity]E)}
	n.ref.Store(1)
	copy(n.items[:], items)
	n.fill = uint8(len(items))
	n.size = len(items)
	return n
}

func newRun[E any](start E, length int) *node[E] {
	assert(length > 0, "btree: empty run")
	n := &node[E]{kind: runKind, run: &start, size: length}
	n.ref.Store(1)
	return n
}

// newBranch takes over one reference to each of kids.
func newBranch[E any](kids ...*node[E]) *node[E] {
	assert(len(kids) <= Capacity, "btree: branch overflow")
	n := &node[E]{kind: branchKind, kids: new(children[E])}
	n.ref.Store(1)
	copy(n.kids.nodes[:], kids)
	n.fill = uint8(len(kids))
	n.refresh()
	return n
}

func (n *node[E]) isLeaf() bool {
	return n.kind != branchKind
}

// elem returns the element at offset i of a leaf.
func (n *node[E]) elem(i int) E {
	if n.kind == runKind {
		return DomainOf[E]().Offset(*n.run, i)
	}
	return n.items[i]
}

func (n *node[E]) first() E {
	if n.kind == branchKind {
		return n.kids.nodes[0].first()
	}
	return n.elem(0)
}

func (n *node[E]) last() E {
	switch n.kind {
	case leafKind:
		return n.items[n.fill-1]
	case runKind:
		return DomainOf[E]().Offset(*n.run, n.size-1)
	}
	return n.kids.last[n.fill-1]
}

// refresh recomputes size and cached last elements of a branch from its
// children.
func (n *node[E]) refresh() {
	if n.kind != branchKind {
		return
	}
	n.size = 0
	for i, kid := range n.kids.nodes[:n.fill] {
		n.size += kid.size
		n.kids.last[i] = kid.last()
	}
}

// --- Reference counting ----------------------------------------------------

func (n *node[E]) incRef() {
	n.ref.Add(1)
}

// clone returns an exclusive shallow copy of n. Children of a branch become
// shared between n and the copy.
func (n *node[E]) clone() *node[E] {
	c := &node[E]{kind: n.kind, fill: n.fill, size: n.size}
	c.ref.Store(1)
	switch n.kind {
	case leafKind:
		items := *n.items
		c.items = &items
	case runKind:
		start := *n.run
		c.run = &start
	case branchKind:
		kids := *n.kids
		c.kids = &kids
		for _, kid := range kids.nodes[:n.fill] {
			kid.incRef()
		}
	}
	return c
}

// mut makes the node at *p exclusive and returns it. A shared node is
// replaced by a copy and loses one reference; an exclusive node is modified
// in place, which invalidates locators pointing into it.
func mut[E any](p **node[E]) *node[E] {
	n := *p
	if n.ref.Load() == 1 {
		n.stamp++
		return n
	}
	c := n.clone()
	release(n)
	*p = c
	return c
}

// release drops one reference to n. Every node losing its last reference is
// cleared and drops the references to its children in turn. It returns the
// number of nodes freed.
func release[E any](n *node[E]) int {
	if n == nil || n.ref.Add(-1) > 0 {
		return 0
	}
	freed := 0
	stack := []*node[E]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		freed++
		if top.kind == branchKind {
			for _, kid := range top.kids.nodes[:top.fill] {
				if kid.ref.Add(-1) == 0 {
					stack = append(stack, kid)
				}
			}
		}
		top.clear()
	}
	return freed
}

// discard frees an exclusive node whose children have been moved elsewhere.
func discard[E any](n *node[E]) {
	assert(n.ref.Load() == 1, "btree: discarding a shared node")
	n.ref.Store(0)
	n.clear()
}

func (n *node[E]) clear() {
	n.stamp++
	n.items, n.run, n.kids = nil, nil, nil
	n.fill, n.size = 0, 0
}
