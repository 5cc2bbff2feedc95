package blist

import (
	"cmp"
	"iter"

	"github.com/npillmayer/blist/btree"
)

// MultiMap is a sorted association of keys to values where a key may occur
// more than once. Values of equal keys keep their insertion order.
type MultiMap[K cmp.Ordered, V any] struct {
	tree btree.Tree[KeyValue[K, V]]
}

// Count returns the number of entries.
func (m *MultiMap[K, V]) Count() int {
	return m.tree.Len()
}

// Insert adds an entry behind all entries with key k.
func (m *MultiMap[K, V]) Insert(k K, v V) {
	outcome := m.tree.Insert(KeyValue[K, V]{Key: k, Value: v}, byKey[K, V], btree.AppendEqual)
	assert(outcome == btree.Inserted, "multimap insert did not add an entry")
}

// Find returns a locator to the earliest entry for k.
func (m *MultiMap[K, V]) Find(k K) (Locator[KeyValue[K, V]], bool) {
	return m.tree.Find(probe[K, V](k), byKey[K, V])
}

// Contains reports whether k has at least one entry.
func (m *MultiMap[K, V]) Contains(k K) bool {
	return m.tree.Contains(probe[K, V](k), byKey[K, V])
}

// FindAll returns an iterator over the values of k in insertion order.
func (m *MultiMap[K, V]) FindAll(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		for loc, ok := m.tree.Find(probe[K, V](k), byKey[K, V]); ok; ok = loc.Next() {
			kv := loc.Value()
			if kv.Key != k || !yield(kv.Value) {
				return
			}
		}
	}
}

// CountKey returns the number of entries for k.
func (m *MultiMap[K, V]) CountKey(k K) int {
	first := m.tree.LowerBound(probe[K, V](k), byKey[K, V])
	if !first.Valid() {
		return 0
	}
	end := m.tree.Len()
	if after := m.tree.UpperBound(probe[K, V](k), byKey[K, V]); after.Valid() {
		end = after.Index()
	}
	return end - first.Index()
}

// Remove deletes the earliest entry for k and returns its value.
func (m *MultiMap[K, V]) Remove(k K) (V, bool) {
	kv, found := m.tree.Remove(probe[K, V](k), byKey[K, V])
	return kv.Value, found
}

// RemoveAll deletes all entries for k and returns how many there were.
func (m *MultiMap[K, V]) RemoveAll(k K) int {
	n := 0
	for {
		if _, found := m.tree.Remove(probe[K, V](k), byKey[K, V]); !found {
			return n
		}
		n++
	}
}

// At returns the entry at position i in key order.
func (m *MultiMap[K, V]) At(i int) (KeyValue[K, V], bool) {
	return m.tree.At(i)
}

// AtLocator returns the entry loc points to.
func (m *MultiMap[K, V]) AtLocator(loc Locator[KeyValue[K, V]]) KeyValue[K, V] {
	return m.tree.AtLocator(loc)
}

// All returns an iterator over all entries in key order.
func (m *MultiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for kv := range m.tree.All() {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Sorted returns a clone; a multimap is always sorted by key.
func (m *MultiMap[K, V]) Sorted() MultiMap[K, V] {
	return m.Clone()
}

// Clone returns an independent copy of m in constant time.
func (m *MultiMap[K, V]) Clone() MultiMap[K, V] {
	return MultiMap[K, V]{tree: m.tree.Clone()}
}

// Deplete empties the multimap and releases the storage not shared with clones.
func (m *MultiMap[K, V]) Deplete() {
	m.tree.Deplete()
}

// Check validates the internal structure and the key order of the multimap.
func (m *MultiMap[K, V]) Check() error {
	if err := m.tree.Check(); err != nil {
		return err
	}
	return m.tree.CheckOrder(byKey[K, V], false)
}
