package blist

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMultiMapInsertionOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var m MultiMap[int, string]
	m.Insert(1, "first")
	m.Insert(0, "zero")
	m.Insert(1, "second")
	if m.Count() != 3 || m.CountKey(1) != 2 {
		t.Fatalf("expected two entries for key 1 out of 3, have %d of %d", m.CountKey(1), m.Count())
	}
	loc, ok := m.Find(1)
	if !ok || loc.Value().Value != "first" {
		t.Fatalf("Find(1) did not return the earliest entry")
	}
	if !loc.Next() || loc.Value().Value != "second" {
		t.Fatalf("successive entry for key 1 is not the second one")
	}
	if got := slices.Collect(m.FindAll(1)); !slices.Equal(got, []string{"first", "second"}) {
		t.Fatalf("FindAll(1) = %v", got)
	}
}

func TestMultiMapManyDuplicates(t *testing.T) {
	var m MultiMap[string, int]
	keys := []string{"x", "y", "z"}
	for i := range 3000 {
		m.Insert(keys[i%3], i)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	prev := -1
	for v := range m.FindAll("y") {
		if v <= prev || v%3 != 1 {
			t.Fatalf("values of y out of insertion order: %d after %d", v, prev)
		}
		prev = v
	}
	if v, ok := m.Remove("y"); !ok || v != 1 {
		t.Fatalf("Remove(y) = %d, expected earliest value 1", v)
	}
	if n := m.RemoveAll("y"); n != 999 {
		t.Fatalf("RemoveAll(y) removed %d entries", n)
	}
	if m.Contains("y") || m.CountKey("y") != 0 || m.Count() != 2000 {
		t.Fatalf("unexpected state after RemoveAll")
	}
	if m.CountKey("z") != 1000 {
		t.Fatalf("CountKey(z) = %d", m.CountKey("z"))
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
}
