/*
Package btree provides the copy-on-write multiway tree behind the blist
containers.

A Tree is a single pointer to a root node. Nodes carry a reference count;
cloning a tree increments the count of its root and costs O(1). Every
mutating operation first makes the path from the root down to the affected
leaf exclusive (copying nodes that are shared with other trees), so trees
that share structure never observe each other's edits.

Node layout:
  - plain leaves hold up to Capacity elements inline,
  - run leaves store a dense range of a discrete element domain as a start
    value plus a length (only for trees of predeclared integer types),
  - branches hold up to Capacity children together with the subtree size and
    the last element of every child.

All non-root nodes keep at least MinFill elements or children; all leaves are
at the same depth.

The same tree serves positional containers (lists) and ordered containers
(sets, maps, multimaps). Positional operations address elements by index,
ordered operations take a comparison function and a Policy for equal
elements. A tree is used either positionally or in order, never both, except
that an ordered tree may be turned into a positional one by Detach.

Trees are not safe for concurrent mutation. Distinct trees sharing structure
may be used from different goroutines, as reference counts are atomic.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'blist'
func tracer() tracing.Trace {
	return tracing.Select("blist")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
