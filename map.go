package blist

import (
	"cmp"
	"iter"

	"github.com/npillmayer/blist/btree"
)

// Map is a sorted association of unique keys to values.
type Map[K cmp.Ordered, V any] struct {
	tree btree.Tree[KeyValue[K, V]]
}

// Count returns the number of keys.
func (m *Map[K, V]) Count() int {
	return m.tree.Len()
}

// Insert associates v with k, replacing a previous value. It reports
// whether k was new.
func (m *Map[K, V]) Insert(k K, v V) bool {
	kv := KeyValue[K, V]{Key: k, Value: v}
	return m.tree.Insert(kv, byKey[K, V], btree.Replace) == btree.Inserted
}

// Value returns the value associated with k.
func (m *Map[K, V]) Value(k K) (V, bool) {
	loc, found := m.tree.Find(probe[K, V](k), byKey[K, V])
	if !found {
		var zero V
		return zero, false
	}
	return loc.Value().Value, true
}

// Contains reports whether k has a value.
func (m *Map[K, V]) Contains(k K) bool {
	return m.tree.Contains(probe[K, V](k), byKey[K, V])
}

// Find returns a locator to the entry for k.
func (m *Map[K, V]) Find(k K) (Locator[KeyValue[K, V]], bool) {
	return m.tree.Find(probe[K, V](k), byKey[K, V])
}

// Remove deletes the entry for k and returns its value.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	kv, found := m.tree.Remove(probe[K, V](k), byKey[K, V])
	return kv.Value, found
}

// At returns the entry with the i-th smallest key.
func (m *Map[K, V]) At(i int) (KeyValue[K, V], bool) {
	return m.tree.At(i)
}

// AtLocator returns the entry loc points to.
func (m *Map[K, V]) AtLocator(loc Locator[KeyValue[K, V]]) KeyValue[K, V] {
	return m.tree.AtLocator(loc)
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for kv := range m.tree.All() {
			if !yield(kv.Key) {
				return
			}
		}
	}
}

// All returns an iterator over keys and values in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for kv := range m.tree.All() {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Sorted returns a clone; a map is always sorted by key.
func (m *Map[K, V]) Sorted() Map[K, V] {
	return m.Clone()
}

// Clone returns an independent copy of m in constant time.
func (m *Map[K, V]) Clone() Map[K, V] {
	return Map[K, V]{tree: m.tree.Clone()}
}

// Deplete empties the map and releases the storage not shared with clones.
func (m *Map[K, V]) Deplete() {
	m.tree.Deplete()
}

// Check validates the internal structure and the key order of the map.
func (m *Map[K, V]) Check() error {
	if err := m.tree.Check(); err != nil {
		return err
	}
	return m.tree.CheckOrder(byKey[K, V], true)
}
