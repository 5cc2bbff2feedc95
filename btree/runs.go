package btree

// A run leaf stores the dense range start, start+1, …, start+size-1 of a
// discrete domain in constant space. Runs have no upper size limit. Values
// adjacent to either end extend the run; any other value turns the affected
// part of the run into plain leaves.

// putRunValue inserts v into the run leaf n. It returns the new right sibling
// if the run had to be divided.
func (n *node[E]) putRunValue(v E, p placement[E]) (*node[E], Outcome) {
	assert(p.dom != nil, "run leaf in a tree without discrete domain")
	first, last := *n.run, n.last()
	switch {
	case p.cmp(v, first) >= 0 && p.cmp(v, last) <= 0:
		return nil, Present
	case p.dom.Adjacent(last, v):
		n.size++
		return nil, Inserted
	case p.dom.Adjacent(v, first):
		*n.run = v
		n.size++
		return nil, Inserted
	case n.size <= Capacity:
		n.flatten()
		at, _ := n.search(v, p.cmp, false)
		return n.putItem(at, v), Inserted
	}
	return n.carve(v, p.cmp), Inserted
}

// carve detaches MinFill-1 values from the end of a long run nearest to v
// and puts them into a plain leaf together with v.
func (n *node[E]) carve(v E, cmp func(a, b E) int) *node[E] {
	const k = MinFill - 1
	if cmp(v, *n.run) < 0 {
		items := append([]E{v}, n.values(0, k)...)
		rest := newRun(DomainOf[E]().Offset(*n.run, k), n.size-k)
		n.becomeLeaf(items)
		return rest
	}
	items := append(n.values(n.size-k, k), v)
	n.size -= k
	return newLeaf(items...)
}

// cutRun removes v from the run leaf n. Removing an inner value from a long
// run divides it; the part right of v is returned as a new sibling. Parts
// shorter than MinFill are topped up from the other part as plain leaves.
func (n *node[E]) cutRun(v E, cmp func(a, b E) int) (*node[E], E) {
	dom := DomainOf[E]()
	assert(cmp(v, *n.run) >= 0 && cmp(v, n.last()) <= 0, "cutRun: value outside of run")
	k := dom.Distance(*n.run, v)
	switch {
	case k == 0:
		*n.run = dom.Offset(v, 1)
		n.size--
		return nil, v
	case k == n.size-1:
		n.size--
		return nil, v
	case n.size <= Capacity:
		n.flatten()
		return nil, n.removeItem(k)
	}
	leftLen, rightLen := k, n.size-k-1
	switch {
	case leftLen < MinFill:
		take := MinFill - leftLen
		items := append(n.values(0, leftLen), n.values(k+1, take)...)
		rest := newRun(dom.Offset(v, 1+take), rightLen-take)
		n.becomeLeaf(items)
		return rest, v
	case rightLen < MinFill:
		take := MinFill - rightLen
		items := append(n.values(leftLen-take, take), n.values(k+1, rightLen)...)
		n.size = leftLen - take
		return newLeaf(items...), v
	}
	rest := newRun(dom.Offset(v, 1), rightLen)
	n.size = leftLen
	return rest, v
}
