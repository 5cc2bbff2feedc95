package blist

import (
	"testing"

	"github.com/npillmayer/blist/random"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMorphMapToList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rnd := random.New(0)
	var m Map[int, int]
	entries := make(map[int]int)
	for range 500 {
		k, v := rnd.Between(0, 10000), rnd.Get()
		m.Insert(k, v)
		entries[k] = v
	}
	list := ListFromMap(&m)
	if m.Count() != 0 {
		t.Fatalf("source map not empty after morph")
	}
	if list.Count() != len(entries) {
		t.Fatalf("morphed list has %d elements, expected %d", list.Count(), len(entries))
	}
	for k, v := range entries {
		if _, ok := Find(&list, KeyValue[int, int]{k, v}); !ok {
			t.Fatalf("entry %d=%d lost by morph", k, v)
		}
	}
	// the list is fully positional now
	list.PushFront(KeyValue[int, int]{-1, -1})
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMorphMultiMapToList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var m MultiMap[int, int]
	for i := range 400 {
		m.Insert(i%10, i)
	}
	list := ListFromMultiMap(&m)
	if m.Count() != 0 || list.Count() != 400 {
		t.Fatalf("morph lost entries or left the source non-empty")
	}
	for i := range 400 {
		if _, ok := Find(&list, KeyValue[int, int]{i % 10, i}); !ok {
			t.Fatalf("entry %d=%d lost by morph", i%10, i)
		}
	}
	first, _ := list.At(0)
	second, _ := list.At(1)
	if first.Key != 0 || first.Value != 0 || second.Value != 10 {
		t.Fatalf("morphed list not in key and insertion order: %v %v", first, second)
	}
}

func TestMorphSetToList(t *testing.T) {
	var s Set[int]
	for i := range 100 {
		s.Insert(i)
	}
	list := ListFromSet(&s)
	if s.Count() != 0 || list.Count() != 100 {
		t.Fatalf("unexpected counts after morph")
	}
	if err := list.InsertAt(50, -1); err != nil {
		t.Fatal(err)
	}
	if v, _ := list.At(50); v != -1 {
		t.Fatalf("positional insert into morphed set failed")
	}
	if err := list.Check(); err != nil {
		t.Fatal(err)
	}
}
