package blist

import (
	"cmp"
	"fmt"
)

// KeyValue is the element type of maps and multimaps.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

func (kv KeyValue[K, V]) String() string {
	return fmt.Sprintf("%v=%v", kv.Key, kv.Value)
}

// byKey orders key-value pairs by key only.
func byKey[K cmp.Ordered, V any](a, b KeyValue[K, V]) int {
	return cmp.Compare(a.Key, b.Key)
}

// probe builds a search element for key k.
func probe[K cmp.Ordered, V any](k K) KeyValue[K, V] {
	return KeyValue[K, V]{Key: k}
}
