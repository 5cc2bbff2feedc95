package bench

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/npillmayer/blist"
	"github.com/npillmayer/blist/random"
)

// ErrUnknownScenario is returned when a scenario name cannot be resolved.
var ErrUnknownScenario = errors.New("bench: unknown scenario")

// Config parametrizes a benchmark run.
type Config struct {
	Size   int    // number of elements per scenario
	Seed   uint64 // seed for random keys and positions
	Rounds int    // repetitions per scenario, the fastest one counts
}

// DefaultConfig is used for zero fields of a Config.
var DefaultConfig = Config{Size: 10000, Seed: 0, Rounds: 3}

func (cfg Config) normalized() Config {
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig.Size
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultConfig.Rounds
	}
	return cfg
}

// Metric is the quantity a scenario measures.
type Metric uint8

const (
	// Runtime scenarios report the duration of the fastest round.
	Runtime Metric = iota
	// Heap scenarios report the smallest growth of the live heap caused by
	// building a container.
	Heap
)

func (m Metric) String() string {
	if m == Heap {
		return "heap"
	}
	return "runtime"
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario string
	Metric   Metric
	Size     int
	Rounds   int
	Best     time.Duration // fastest round, Runtime only
	Bytes    int64         // smallest heap growth, Heap only
	Err      error
}

// PerOp returns the time per element of the fastest round.
func (res Result) PerOp() time.Duration {
	if res.Size == 0 {
		return 0
	}
	return res.Best / time.Duration(res.Size)
}

// BytesPerOp returns the heap growth per element.
func (res Result) BytesPerOp() float64 {
	if res.Size == 0 {
		return 0
	}
	return float64(res.Bytes) / float64(res.Size)
}

func (res Result) String() string {
	if res.Err != nil {
		return fmt.Sprintf("%s: %v", res.Scenario, res.Err)
	}
	if res.Metric == Heap {
		return fmt.Sprintf("%s: n=%d heap=%d bytes (%.1f/op)", res.Scenario, res.Size, res.Bytes, res.BytesPerOp())
	}
	return fmt.Sprintf("%s: n=%d best=%v (%v/op)", res.Scenario, res.Size, res.Best, res.PerOp())
}

// Scenario is a named measurement. Exactly one of run and heap is set.
type Scenario struct {
	Name string
	Doc  string
	run  func(cfg Config) (time.Duration, error)
	heap func(cfg Config) (int64, error)
}

// Metric tells what the scenario measures.
func (sc Scenario) Metric() Metric {
	if sc.heap != nil {
		return Heap
	}
	return Runtime
}

// Run executes the scenario with cfg.
func (sc Scenario) Run(cfg Config) Result {
	cfg = cfg.normalized()
	res := Result{Scenario: sc.Name, Metric: sc.Metric(), Size: cfg.Size, Rounds: cfg.Rounds}
	if sc.heap != nil {
		res.Bytes, res.Err = sc.heap(cfg)
	} else {
		res.Best, res.Err = sc.run(cfg)
	}
	return res
}

// Scenarios returns all scenarios in their canonical order.
func Scenarios() []Scenario {
	return append([]Scenario(nil), scenarios...)
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// Select resolves names to scenarios. No names select all of them.
func Select(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return Scenarios(), nil
	}
	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		selected = append(selected, sc)
	}
	return selected, nil
}

// measure runs prepare and work rounds times and returns the fastest
// duration of work. prepare is not timed.
func measure(rounds int, prepare func(), work func() error) (time.Duration, error) {
	best := time.Duration(math.MaxInt64)
	for range rounds {
		if prepare != nil {
			prepare()
		}
		start := time.Now()
		err := work()
		d := time.Since(start)
		if err != nil {
			return 0, err
		}
		best = min(best, d)
	}
	return best, nil
}

var scenarios = []Scenario{
	{Name: "list-append", Doc: "append n elements to an empty list", run: listAppend},
	{Name: "list-pushfront", Doc: "insert n elements at the front of a list", run: listPushFront},
	{Name: "list-insert-random", Doc: "insert n elements at random positions", run: listInsertRandom},
	{Name: "list-iterate", Doc: "iterate a list of n elements", run: listIterate},
	{Name: "list-clone-write", Doc: "clone a list of n elements and overwrite random positions", run: listCloneWrite},
	{Name: "set-insert-random", Doc: "insert a permutation of 0..n-1 into a set", run: setInsertRandom},
	{Name: "set-insert-ascending", Doc: "insert 0..n-1 in order, expecting a dense set", run: setInsertAscending},
	{Name: "set-lookup-sparse", Doc: "look up n keys in a set of even numbers", run: setLookupSparse},
	{Name: "set-lookup-dense", Doc: "look up n keys in the dense set 0..n-1", run: setLookupDense},
	{Name: "set-deplete-sparse", Doc: "deplete a set of n even numbers", run: setDepleteSparse},
	{Name: "set-deplete-dense", Doc: "deplete the dense set 0..n-1", run: setDepleteDense},
	{Name: "map-insert-remove", Doc: "insert n random keys into a map and remove them again", run: mapInsertRemove},
	{Name: "multimap-insert", Doc: "insert n entries with n/10 distinct keys into a multimap", run: multiMapInsert},
	{Name: "slice-append", Doc: "append n elements to a Go slice", run: sliceAppend},
	{Name: "slice-insert-random", Doc: "insert n elements at random positions of a Go slice", run: sliceInsertRandom},
	{Name: "gomap-insert-random", Doc: "insert a permutation of 0..n-1 into a Go map", run: goMapInsertRandom},
	{Name: "gomap-lookup-sparse", Doc: "look up n keys in a Go map of even numbers", run: goMapLookupSparse},
	{Name: "list-heap", Doc: "heap used by a list of n elements", heap: listHeap},
	{Name: "set-heap-random", Doc: "heap used by a set built from a permutation of 0..n-1", heap: setHeapRandom},
	{Name: "set-heap-ascending", Doc: "heap used by a set built from 0..n-1 in order", heap: setHeapAscending},
	{Name: "slice-heap", Doc: "heap used by a Go slice of n elements", heap: sliceHeap},
	{Name: "gomap-heap-random", Doc: "heap used by a Go map set of a permutation of 0..n-1", heap: goMapHeapRandom},
}

func listAppend(cfg Config) (time.Duration, error) {
	var l blist.List[int]
	return measure(cfg.Rounds, l.Deplete, func() error {
		for i := range cfg.Size {
			l.Append(i)
		}
		return expectCount("list", l.Count(), cfg.Size)
	})
}

func listPushFront(cfg Config) (time.Duration, error) {
	var l blist.List[int]
	return measure(cfg.Rounds, l.Deplete, func() error {
		for i := range cfg.Size {
			l.PushFront(i)
		}
		return expectCount("list", l.Count(), cfg.Size)
	})
}

func listInsertRandom(cfg Config) (time.Duration, error) {
	var l blist.List[int]
	var positions []int
	prepare := func() {
		l.Deplete()
		positions = insertPositions(cfg)
	}
	return measure(cfg.Rounds, prepare, func() error {
		for i, pos := range positions {
			if err := l.InsertAt(pos, i); err != nil {
				return err
			}
		}
		return expectCount("list", l.Count(), cfg.Size)
	})
}

// insertPositions returns a valid position for the i-th of n insertions.
func insertPositions(cfg Config) []int {
	rnd := random.New(cfg.Seed)
	positions := make([]int, cfg.Size)
	for i := range positions {
		positions[i] = rnd.Between(0, i)
	}
	return positions
}

func listIterate(cfg Config) (time.Duration, error) {
	l := blist.ListOf(make([]int, cfg.Size)...)
	defer l.Deplete()
	return measure(cfg.Rounds, nil, func() error {
		n := 0
		for range l.All() {
			n++
		}
		return expectCount("iteration", n, cfg.Size)
	})
}

func listCloneWrite(cfg Config) (time.Duration, error) {
	l := blist.ListOf(make([]int, cfg.Size)...)
	defer l.Deplete()
	var c blist.List[int]
	var positions []int
	prepare := func() {
		c.Deplete()
		rnd := random.New(cfg.Seed)
		positions = make([]int, cfg.Size)
		for i := range positions {
			positions[i] = rnd.Between(0, cfg.Size-1)
		}
	}
	return measure(cfg.Rounds, prepare, func() error {
		c = l.Clone()
		for i, pos := range positions {
			c.SetAt(pos, i)
		}
		return expectCount("clone", c.Count(), cfg.Size)
	})
}

func setInsertRandom(cfg Config) (time.Duration, error) {
	var s blist.Set[int]
	var keys []int
	prepare := func() {
		s.Deplete()
		keys = random.New(cfg.Seed).Perm(cfg.Size)
	}
	return measure(cfg.Rounds, prepare, func() error {
		for _, k := range keys {
			s.Insert(k)
		}
		return expectCount("set", s.Count(), cfg.Size)
	})
}

func setInsertAscending(cfg Config) (time.Duration, error) {
	var s blist.Set[int]
	return measure(cfg.Rounds, s.Deplete, func() error {
		for i := range cfg.Size {
			s.Insert(i)
		}
		if !s.IsDense() {
			return errors.New("ascending inserts did not produce a dense set")
		}
		return expectCount("set", s.Count(), cfg.Size)
	})
}

func setLookupSparse(cfg Config) (time.Duration, error) {
	var s blist.Set[int]
	for i := range cfg.Size {
		s.Insert(2 * i)
	}
	defer s.Deplete()
	return lookups(cfg, &s, 2*cfg.Size)
}

func setLookupDense(cfg Config) (time.Duration, error) {
	var s blist.Set[int]
	for i := range cfg.Size {
		s.Insert(i)
	}
	defer s.Deplete()
	return lookups(cfg, &s, cfg.Size)
}

func lookups(cfg Config, s *blist.Set[int], limit int) (time.Duration, error) {
	probes := lookupProbes(cfg, limit)
	hits := 0
	return measure(cfg.Rounds, func() { hits = 0 }, func() error {
		for _, p := range probes {
			if s.Contains(p) {
				hits++
			}
		}
		if hits == 0 {
			return errors.New("no lookup succeeded")
		}
		return nil
	})
}

func lookupProbes(cfg Config, limit int) []int {
	probes := make([]int, cfg.Size)
	rnd := random.New(cfg.Seed)
	for i := range probes {
		probes[i] = rnd.Between(0, limit-1)
	}
	return probes
}

func setDepleteSparse(cfg Config) (time.Duration, error) {
	return depletion(cfg, 2)
}

func setDepleteDense(cfg Config) (time.Duration, error) {
	return depletion(cfg, 1)
}

func depletion(cfg Config, stride int) (time.Duration, error) {
	var s blist.Set[int]
	prepare := func() {
		for i := range cfg.Size {
			s.Insert(stride * i)
		}
	}
	return measure(cfg.Rounds, prepare, func() error {
		s.Deplete()
		return expectCount("depleted set", s.Count(), 0)
	})
}

func mapInsertRemove(cfg Config) (time.Duration, error) {
	var m blist.Map[int, int]
	var keys []int
	prepare := func() {
		m.Deplete()
		keys = random.New(cfg.Seed).Perm(cfg.Size)
	}
	return measure(cfg.Rounds, prepare, func() error {
		for i, k := range keys {
			m.Insert(k, i)
		}
		if err := expectCount("map", m.Count(), cfg.Size); err != nil {
			return err
		}
		for _, k := range keys {
			if _, ok := m.Remove(k); !ok {
				return fmt.Errorf("map lost key %d", k)
			}
		}
		return expectCount("map", m.Count(), 0)
	})
}

func multiMapInsert(cfg Config) (time.Duration, error) {
	var m blist.MultiMap[int, int]
	var keys []int
	prepare := func() {
		m.Deplete()
		rnd := random.New(cfg.Seed)
		distinct := max(cfg.Size/10, 1)
		keys = make([]int, cfg.Size)
		for i := range keys {
			keys[i] = rnd.Between(0, distinct-1)
		}
	}
	return measure(cfg.Rounds, prepare, func() error {
		for i, k := range keys {
			m.Insert(k, i)
		}
		return expectCount("multimap", m.Count(), cfg.Size)
	})
}

func expectCount(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s holds %d elements, expected %d", what, got, want)
	}
	return nil
}
