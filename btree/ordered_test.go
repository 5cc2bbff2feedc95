package btree

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"
)

func compareInts(a, b int) int { return cmp.Compare(a, b) }

type entry struct {
	key, seq int
}

func compareKeys(a, b entry) int { return cmp.Compare(a.key, b.key) }

func TestOrderedInsertRemoveAgainstModel(t *testing.T) {
	for _, policy := range []Policy{KeepExisting, DenseRuns} {
		rnd := rand.New(rand.NewPCG(42, uint64(policy)))
		var tree Tree[int]
		model := make(map[int]bool)
		for step := range 5000 {
			v := rnd.IntN(800)
			if rnd.IntN(3) > 0 {
				outcome := tree.Insert(v, compareInts, policy)
				if model[v] != (outcome == Present) {
					t.Fatalf("policy %d step %d: insert %d reported %s", policy, step, v, outcome)
				}
				model[v] = true
			} else {
				_, found := tree.Remove(v, compareInts)
				if found != model[v] {
					t.Fatalf("policy %d step %d: remove %d reported found=%v", policy, step, v, found)
				}
				delete(model, v)
			}
			if step%101 == 0 {
				checkTree(t, &tree)
				if err := tree.CheckOrder(compareInts, true); err != nil {
					t.Fatalf("policy %d step %d: %v", policy, step, err)
				}
			}
		}
		keys := make([]int, 0, len(model))
		for k := range model {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		checkTree(t, &tree)
		sameValues(t, &tree, keys)
	}
}

func TestInsertExistingDoesNotCopy(t *testing.T) {
	var a Tree[int]
	for i := range 500 {
		a.Insert(i*2, compareInts, KeepExisting)
	}
	b := a.Clone()
	if outcome := a.Insert(40, compareInts, KeepExisting); outcome != Present {
		t.Fatalf("expected present, got %s", outcome)
	}
	if _, found := a.Remove(41, compareInts); found {
		t.Fatalf("removed an absent element")
	}
	if !a.Shares(&b) {
		t.Fatalf("no-op updates must not copy nodes")
	}
}

func TestReplacePolicy(t *testing.T) {
	var tree Tree[entry]
	for i := range 100 {
		tree.Insert(entry{key: i, seq: 0}, compareKeys, Replace)
	}
	if outcome := tree.Insert(entry{key: 37, seq: 1}, compareKeys, Replace); outcome != Replaced {
		t.Fatalf("expected replaced, got %s", outcome)
	}
	if tree.Len() != 100 {
		t.Fatalf("replace changed the length to %d", tree.Len())
	}
	loc, found := tree.Find(entry{key: 37}, compareKeys)
	if !found || loc.Value().seq != 1 || loc.Index() != 37 {
		t.Fatalf("expected replaced entry at index 37, got %+v at %d", loc.Value(), loc.Index())
	}
}

func TestAppendEqualKeepsInsertionOrder(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	var tree Tree[entry]
	for seq := range 2000 {
		tree.Insert(entry{key: rnd.IntN(20), seq: seq}, compareKeys, AppendEqual)
	}
	checkTree(t, &tree)
	if err := tree.CheckOrder(compareKeys, false); err != nil {
		t.Fatal(err)
	}
	vs := tree.Values()
	for i := 1; i < len(vs); i++ {
		if vs[i-1].key == vs[i].key && vs[i-1].seq > vs[i].seq {
			t.Fatalf("equal keys out of insertion order at %d: %v, %v", i, vs[i-1], vs[i])
		}
	}
	// removal takes the earliest of equal entries
	first, _ := tree.Find(entry{key: 5}, compareKeys)
	earliest := first.Value()
	removed, found := tree.Remove(entry{key: 5}, compareKeys)
	if !found || removed != earliest {
		t.Fatalf("expected to remove %v, removed %v", earliest, removed)
	}
	checkTree(t, &tree)
}

func TestBounds(t *testing.T) {
	var tree Tree[int]
	for i := range 200 {
		tree.Insert(i*10, compareInts, KeepExisting)
	}
	lb := tree.LowerBound(55, compareInts)
	if !lb.Valid() || lb.Value() != 60 || lb.Index() != 6 {
		t.Fatalf("unexpected lower bound %d at %d", lb.Value(), lb.Index())
	}
	ub := tree.UpperBound(60, compareInts)
	if !ub.Valid() || ub.Value() != 70 {
		t.Fatalf("unexpected upper bound %d", ub.Value())
	}
	if end := tree.LowerBound(5000, compareInts); end.Valid() {
		t.Fatalf("expected invalid locator beyond last element")
	}
	if _, found := tree.Find(55, compareInts); found {
		t.Fatalf("found absent element")
	}
	if !tree.Contains(1990, compareInts) {
		t.Fatalf("missing last element")
	}
}
