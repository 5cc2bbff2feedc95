package bench

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var small = Config{Size: 500, Seed: 7, Rounds: 2}

func TestScenariosSucceed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	for _, sc := range Scenarios() {
		res := sc.Run(small)
		if res.Err != nil {
			t.Errorf("scenario %s failed: %v", sc.Name, res.Err)
		}
		if res.Size != small.Size || res.Rounds != small.Rounds {
			t.Errorf("scenario %s reports n=%d rounds=%d", sc.Name, res.Size, res.Rounds)
		}
		if res.Metric != sc.Metric() {
			t.Errorf("scenario %s reports metric %v", sc.Name, res.Metric)
		}
		if res.Metric == Runtime && res.Best <= 0 {
			t.Errorf("scenario %s reports no time", sc.Name)
		}
	}
}

func TestDenseSetUsesLessHeap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	cfg := Config{Size: 5000, Rounds: 2}
	random, _ := Lookup("set-heap-random")
	ascending, _ := Lookup("set-heap-ascending")
	r, a := random.Run(cfg), ascending.Run(cfg)
	if r.Err != nil || a.Err != nil {
		t.Fatalf("heap scenarios failed: %v, %v", r.Err, a.Err)
	}
	if r.Metric != Heap || a.Metric != Heap {
		t.Fatalf("expected heap results")
	}
	if r.Bytes < int64(cfg.Size) {
		t.Fatalf("set of %d random keys reports only %d bytes", cfg.Size, r.Bytes)
	}
	if a.Bytes*4 >= r.Bytes {
		t.Fatalf("dense set uses %d bytes, random set %d", a.Bytes, r.Bytes)
	}
	t.Logf("%v", r)
	t.Logf("%v", a)
}

func TestGoBaselinesAreComparable(t *testing.T) {
	for _, pair := range [][2]string{
		{"list-append", "slice-append"},
		{"list-insert-random", "slice-insert-random"},
		{"set-insert-random", "gomap-insert-random"},
		{"set-lookup-sparse", "gomap-lookup-sparse"},
		{"set-heap-random", "gomap-heap-random"},
		{"list-heap", "slice-heap"},
	} {
		a, okA := Lookup(pair[0])
		b, okB := Lookup(pair[1])
		if !okA || !okB || a.Metric() != b.Metric() {
			t.Errorf("%s and %s cannot be compared", pair[0], pair[1])
		}
	}
}

func TestScenarioNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, sc := range Scenarios() {
		if seen[sc.Name] {
			t.Fatalf("duplicate scenario %s", sc.Name)
		}
		seen[sc.Name] = true
		if found, ok := Lookup(sc.Name); !ok || found.Name != sc.Name {
			t.Fatalf("cannot look up scenario %s", sc.Name)
		}
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	if err != nil || len(all) != len(Scenarios()) {
		t.Fatalf("empty selection should select all scenarios, have %d (%v)", len(all), err)
	}
	some, err := Select([]string{"set-lookup-dense", "list-append"})
	if err != nil || len(some) != 2 || some[0].Name != "set-lookup-dense" {
		t.Fatalf("unexpected selection %v (%v)", some, err)
	}
	if _, err = Select([]string{"list-append", "no-such-thing"}); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, have %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Seed: 3}.normalized()
	if cfg.Size != DefaultConfig.Size || cfg.Rounds != DefaultConfig.Rounds || cfg.Seed != 3 {
		t.Fatalf("unexpected normalized config %+v", cfg)
	}
}

func TestRunnerBroadcasts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	r := NewRunner(small)
	a, ok := r.Subscribe()
	if !ok {
		t.Fatalf("cannot subscribe")
	}
	b, _ := r.Subscribe()
	names := []string{"list-append", "set-insert-ascending", "map-insert-remove"}
	if err := r.Start(context.Background(), names); err != nil {
		t.Fatal(err)
	}
	done := make(chan []Result)
	go func() { done <- Collect(b) }()
	first := Collect(a)
	second := <-done
	if len(first) != len(names) || len(second) != len(names) {
		t.Fatalf("expected %d results per subscriber, have %d and %d", len(names), len(first), len(second))
	}
	for i, res := range first {
		if res.Scenario != names[i] || second[i].Scenario != names[i] {
			t.Errorf("result %d is for %s, expected %s", i, res.Scenario, names[i])
		}
		if res.Err != nil {
			t.Errorf("%s failed: %v", res.Scenario, res.Err)
		}
	}
}

func TestRunnerCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	r := NewRunner(small)
	sub, _ := r.Subscribe()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Start(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if results := Collect(sub); len(results) != 0 {
		t.Fatalf("cancelled run produced %d results", len(results))
	}
}

func TestRunnerUnknownScenario(t *testing.T) {
	r := NewRunner(small)
	sub, _ := r.Subscribe()
	if err := r.Start(context.Background(), []string{"bogus"}); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, have %v", err)
	}
	if results := Collect(sub); len(results) != 0 {
		t.Fatalf("failed start produced results")
	}
}
