package btree

import "fmt"

// Check validates the structural invariants of the tree: node fill bounds,
// subtree sizes, uniform leaf depth, root rules, and reference counts.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[E]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	_, err := checkNode(t.root, true)
	return err
}

func checkNode[E any](n *node[E], isRoot bool) (height int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrStructure)
	}
	if n.ref.Load() < 1 {
		return 0, fmt.Errorf("%w: reachable %s node has reference count %d", ErrRefCount, n.kind, n.ref.Load())
	}
	switch n.kind {
	case leafKind:
		if n.items == nil {
			return 0, fmt.Errorf("%w: leaf without storage", ErrStructure)
		}
		if int(n.fill) != n.size || n.size > Capacity {
			return 0, fmt.Errorf("%w: leaf fill %d, size %d", ErrStructure, n.fill, n.size)
		}
	case runKind:
		if n.run == nil || DomainOf[E]() == nil {
			return 0, fmt.Errorf("%w: run leaf without discrete start value", ErrStructure)
		}
	case branchKind:
		return checkBranch(n, isRoot)
	default:
		return 0, fmt.Errorf("%w: unknown node kind %d", ErrStructure, n.kind)
	}
	if isRoot && n.size == 0 {
		return 0, fmt.Errorf("%w: empty root leaf", ErrStructure)
	}
	if !isRoot && n.size < MinFill {
		return 0, fmt.Errorf("%w: %s with %d elements, minimum is %d", ErrStructure, n.kind, n.size, MinFill)
	}
	return 1, nil
}

func checkBranch[E any](n *node[E], isRoot bool) (int, error) {
	if n.kids == nil {
		return 0, fmt.Errorf("%w: branch without children", ErrStructure)
	}
	switch {
	case n.fill > Capacity:
		return 0, fmt.Errorf("%w: branch with %d children exceeds capacity", ErrStructure, n.fill)
	case isRoot && n.fill < 2:
		return 0, fmt.Errorf("%w: root branch with %d children", ErrStructure, n.fill)
	case !isRoot && n.fill < MinFill:
		return 0, fmt.Errorf("%w: branch with %d children, minimum is %d", ErrStructure, n.fill, MinFill)
	}
	size, height := 0, 0
	for i, kid := range n.kids.nodes[:n.fill] {
		h, err := checkNode(kid, false)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			height = h
		} else if h != height {
			return 0, fmt.Errorf("%w: non-uniform subtree heights (%d != %d)", ErrStructure, h, height)
		}
		size += kid.size
	}
	if size != n.size {
		return 0, fmt.Errorf("%w: branch size %d, children hold %d", ErrStructure, n.size, size)
	}
	return height + 1, nil
}

// CheckOrder validates that the elements are sorted by cmp and that the
// cached last element of every child is accurate. With strict set, equal
// neighbours are reported as well.
func (t *Tree[E]) CheckOrder(cmp func(a, b E) int, strict bool) error {
	if t == nil || t.root == nil {
		return nil
	}
	if err := checkKeys(t.root, cmp); err != nil {
		return err
	}
	var prev E
	index := 0
	for v := range t.All() {
		if index > 0 {
			c := cmp(prev, v)
			if c > 0 || (strict && c == 0) {
				return fmt.Errorf("%w: elements %d and %d out of order", ErrOrder, index-1, index)
			}
		}
		prev = v
		index++
	}
	return nil
}

// CheckSeparators validates only the cached last elements of branch children,
// for trees without an order.
func (t *Tree[E]) CheckSeparators(eq func(a, b E) bool) error {
	if t == nil || t.root == nil {
		return nil
	}
	return checkKeys(t.root, func(a, b E) int {
		if eq(a, b) {
			return 0
		}
		return 1
	})
}

func checkKeys[E any](n *node[E], cmp func(a, b E) int) error {
	if n.isLeaf() {
		return nil
	}
	for i, kid := range n.kids.nodes[:n.fill] {
		if cmp(n.kids.last[i], kid.last()) != 0 {
			return fmt.Errorf("%w: stale separator at slot %d", ErrOrder, i)
		}
		if err := checkKeys(kid, cmp); err != nil {
			return err
		}
	}
	return nil
}
