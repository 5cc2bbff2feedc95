package blist

import "cmp"

// ListFromMap turns m into a list of its entries in key order. The storage
// of m moves to the list without copying; m is left empty.
func ListFromMap[K cmp.Ordered, V any](m *Map[K, V]) List[KeyValue[K, V]] {
	l := List[KeyValue[K, V]]{tree: m.tree.Detach()}
	T().Debugf("blist: map of %d entries morphed into list", l.Count())
	return l
}

// ListFromMultiMap turns m into a list of its entries in key order, equal
// keys in insertion order. m is left empty.
func ListFromMultiMap[K cmp.Ordered, V any](m *MultiMap[K, V]) List[KeyValue[K, V]] {
	l := List[KeyValue[K, V]]{tree: m.tree.Detach()}
	T().Debugf("blist: multimap of %d entries morphed into list", l.Count())
	return l
}

// ListFromSet turns s into a list of its values in ascending order. Dense
// ranges are expanded into plain elements. s is left empty.
func ListFromSet[E cmp.Ordered](s *Set[E]) List[E] {
	l := List[E]{tree: s.tree.Detach()}
	T().Debugf("blist: set of %d values morphed into list", l.Count())
	return l
}
