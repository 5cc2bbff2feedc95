package btree

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func dense(from, to int) []int {
	vs := make([]int, 0, to-from)
	for v := from; v < to; v++ {
		vs = append(vs, v)
	}
	return vs
}

func TestAscendingInsertIsDense(t *testing.T) {
	var tree Tree[int]
	for i := range 10000 {
		tree.Insert(i, compareInts, DenseRuns)
	}
	checkTree(t, &tree)
	if !tree.IsDense() {
		t.Fatalf("expected ascending inserts to yield a dense tree")
	}
	if tree.Height() != 1 {
		t.Fatalf("expected a single run leaf, height is %d", tree.Height())
	}
	for _, v := range []int{0, 4711, 9999} {
		loc, found := tree.Find(v, compareInts)
		if !found || loc.Index() != v {
			t.Fatalf("lookup of %d failed", v)
		}
	}
}

func TestDescendingInsertIsDense(t *testing.T) {
	var tree Tree[int]
	for i := 999; i >= 0; i-- {
		tree.Insert(i, compareInts, DenseRuns)
	}
	checkTree(t, &tree)
	if !tree.IsDense() {
		t.Fatalf("expected descending inserts to yield a dense tree")
	}
	sameValues(t, &tree, dense(0, 1000))
}

func TestGapCarvesRun(t *testing.T) {
	var tree Tree[int]
	for i := range 1000 {
		tree.Insert(i, compareInts, DenseRuns)
	}
	tree.Insert(2000, compareInts, DenseRuns)
	checkTree(t, &tree)
	if tree.IsDense() {
		t.Fatalf("tree with a gap reported dense")
	}
	sameValues(t, &tree, append(dense(0, 1000), 2000))

	tree.Insert(-5, compareInts, DenseRuns)
	checkTree(t, &tree)
	sameValues(t, &tree, append(append([]int{-5}, dense(0, 1000)...), 2000))

	tree.Remove(2000, compareInts)
	tree.Remove(-5, compareInts)
	checkTree(t, &tree)
	sameValues(t, &tree, dense(0, 1000))
}

func TestShortRunFlattens(t *testing.T) {
	var tree Tree[int]
	for i := range 5 {
		tree.Insert(i, compareInts, DenseRuns)
	}
	tree.Insert(10, compareInts, DenseRuns)
	checkTree(t, &tree)
	if tree.root.kind != leafKind {
		t.Fatalf("expected short run to become a plain leaf, is %s", tree.root.kind)
	}
	sameValues(t, &tree, []int{0, 1, 2, 3, 4, 10})
}

func TestCutRun(t *testing.T) {
	for _, cut := range []int{0, 3, 11, 500, 990, 996, 999} {
		var tree Tree[int]
		for i := range 1000 {
			tree.Insert(i, compareInts, DenseRuns)
		}
		v, found := tree.Remove(cut, compareInts)
		if !found || v != cut {
			t.Fatalf("removing %d returned %d, %v", cut, v, found)
		}
		checkTree(t, &tree)
		if err := tree.CheckOrder(compareInts, true); err != nil {
			t.Fatal(err)
		}
		expected := slices.Delete(dense(0, 1000), cut, cut+1)
		sameValues(t, &tree, expected)
		if dense := tree.IsDense(); dense != (cut == 0 || cut == 999) {
			t.Fatalf("removing %d: IsDense = %v", cut, dense)
		}
	}
}

func TestRunsAgainstRandomRemoval(t *testing.T) {
	var tree Tree[int]
	for i := range 3000 {
		tree.Insert(i, compareInts, DenseRuns)
	}
	model := dense(0, 3000)
	rnd := rand.New(rand.NewPCG(9, 9))
	for step := range 2500 {
		i := rnd.IntN(len(model))
		if _, found := tree.Remove(model[i], compareInts); !found {
			t.Fatalf("step %d: %d not found", step, model[i])
		}
		model = slices.Delete(model, i, i+1)
		if step%50 == 0 {
			checkTree(t, &tree)
		}
	}
	checkTree(t, &tree)
	sameValues(t, &tree, model)
}

func TestSmallIntegerDomainDoesNotWrap(t *testing.T) {
	var tree Tree[int8]
	cmp8 := func(a, b int8) int { return int(a) - int(b) }
	tree.Insert(126, cmp8, DenseRuns)
	tree.Insert(127, cmp8, DenseRuns)
	tree.Insert(-128, cmp8, DenseRuns)
	checkTree(t, &tree)
	if tree.IsDense() {
		t.Fatalf("wrapped around the int8 domain")
	}
	sameValues(t, &tree, []int8{-128, 126, 127})
}

func TestNonDiscreteDomainIgnoresRuns(t *testing.T) {
	var tree Tree[string]
	for _, s := range []string{"b", "a", "c"} {
		tree.Insert(s, compareStrings, DenseRuns)
	}
	if tree.hasRuns() || tree.IsDense() {
		t.Fatalf("run leaves in a tree of strings")
	}
	sameValues(t, &tree, []string{"a", "b", "c"})
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestDomainOf(t *testing.T) {
	type myInt int
	if DomainOf[int]() == nil || DomainOf[uint16]() == nil {
		t.Fatalf("expected integer domains")
	}
	if DomainOf[myInt]() != nil || DomainOf[float64]() != nil {
		t.Fatalf("expected no domain for named or non-integer types")
	}
	d := DomainOf[uint8]()
	if d.Adjacent(255, 0) || !d.Adjacent(3, 4) || d.Offset(250, 5) != 255 || d.Distance(10, 20) != 10 {
		t.Fatalf("uint8 domain arithmetic broken")
	}
}

func TestCutRunAtSizeBoundaries(t *testing.T) {
	for _, size := range []int{MinFill, MinFill + 1, Capacity, Capacity + 1, Capacity + 2} {
		for _, off := range []int{1, size / 2, size - 2} {
			// run as root leaf
			var tree Tree[int]
			for i := range size {
				tree.Insert(i, compareInts, DenseRuns)
			}
			if tree.root.kind != runKind || tree.Len() != size {
				t.Fatalf("size %d: expected a single run leaf", size)
			}
			if _, found := tree.Remove(off, compareInts); !found {
				t.Fatalf("size %d: %d not found", size, off)
			}
			checkRunCut(t, &tree, slices.Delete(dense(0, size), off, off+1))

			// run between a plain leaf and another run
			tree = innerRun(size)
			if _, found := tree.Remove(7+off, compareInts); !found {
				t.Fatalf("inner run of size %d: %d not found", size, 7+off)
			}
			expected := append([]int{-10}, dense(0, 1000)...)
			expected = slices.Delete(expected, 1+7+size, 1+7+size+1)
			expected = slices.Delete(expected, 1+7+off, 1+7+off+1)
			checkRunCut(t, &tree, expected)
		}
	}
}

// innerRun returns a tree holding -10 and 0..999 without 7+size, where the
// values 7..6+size form a run leaf of their own.
func innerRun(size int) Tree[int] {
	var tree Tree[int]
	for i := range 1000 {
		tree.Insert(i, compareInts, DenseRuns)
	}
	tree.Insert(-10, compareInts, DenseRuns)
	tree.Remove(7+size, compareInts)
	return tree
}

func TestInnerRunSetup(t *testing.T) {
	for _, size := range []int{MinFill, Capacity + 1} {
		tree := innerRun(size)
		checkTree(t, &tree)
		loc, found := tree.Find(7, compareInts)
		if !found || loc.leaf.kind != runKind || loc.leaf.size != size {
			t.Fatalf("expected a run of %d starting at 7", size)
		}
	}
}

func checkRunCut(t *testing.T, tree *Tree[int], expected []int) {
	t.Helper()
	checkTree(t, tree)
	if err := tree.CheckOrder(compareInts, true); err != nil {
		t.Fatal(err)
	}
	sameValues(t, tree, expected)
}

func TestWideRunOfNarrowType(t *testing.T) {
	cmp8 := func(a, b int8) int { return int(a) - int(b) }
	var tree Tree[int8]
	for v := -100; v <= 100; v++ {
		tree.Insert(int8(v), cmp8, DenseRuns)
	}
	checkTree(t, &tree)
	if !tree.IsDense() || tree.Len() != 201 {
		t.Fatalf("expected one run of 201 values")
	}
	loc, found := tree.Find(90, cmp8)
	if !found || loc.Index() != 190 || loc.Value() != 90 {
		t.Fatalf("Find(90) = index %d, %v", loc.Index(), found)
	}
	if v, ok := tree.At(200); !ok || v != 100 {
		t.Fatalf("At(200) = %d", v)
	}
	for _, v := range []int8{90, -99, 0, 100} {
		if _, found := tree.Remove(v, cmp8); !found {
			t.Fatalf("%d not found", v)
		}
		checkTree(t, &tree)
		if err := tree.CheckOrder(cmp8, true); err != nil {
			t.Fatal(err)
		}
	}
	if tree.Len() != 197 || tree.Contains(90, cmp8) || !tree.Contains(89, cmp8) {
		t.Fatalf("unexpected contents after removals: %v", tree.Values())
	}

	cmp16 := func(a, b int16) int { return int(a) - int(b) }
	var wide Tree[int16]
	for v := -20000; v <= 20000; v++ {
		wide.Insert(int16(v), cmp16, DenseRuns)
	}
	loc16, found := wide.Find(19000, cmp16)
	if !found || loc16.Index() != 39000 {
		t.Fatalf("Find(19000) = index %d, %v", loc16.Index(), found)
	}
	if _, found := wide.Remove(19000, cmp16); !found {
		t.Fatalf("19000 not found")
	}
	checkTree(t, &wide)
	if wide.Len() != 40000 || wide.Contains(19000, cmp16) {
		t.Fatalf("removal from wide int16 run failed")
	}
}
