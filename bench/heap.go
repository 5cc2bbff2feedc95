package bench

import (
	"errors"
	"math"
	"runtime"

	"github.com/npillmayer/blist"
	"github.com/npillmayer/blist/random"
)

// heapUse calls build rounds times and returns the smallest growth of the
// live heap between a collection before and after build. Input data has to be
// prepared before, so that only the container is accounted for. release is
// called with each container once it has been measured.
func heapUse[C any](rounds int, build func() (C, error), release func(C)) (int64, error) {
	best := int64(math.MaxInt64)
	for range rounds {
		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)
		c, err := build()
		if err != nil {
			return 0, err
		}
		runtime.GC()
		runtime.ReadMemStats(&after)
		runtime.KeepAlive(c)
		best = min(best, int64(after.HeapAlloc)-int64(before.HeapAlloc))
		if release != nil {
			release(c)
		}
	}
	tracer().Debugf("bench: heap growth %d bytes", best)
	return max(best, 0), nil
}

func listHeap(cfg Config) (int64, error) {
	return heapUse(cfg.Rounds, func() (blist.List[int], error) {
		var l blist.List[int]
		for i := range cfg.Size {
			l.Append(i)
		}
		return l, expectCount("list", l.Count(), cfg.Size)
	}, func(l blist.List[int]) { l.Deplete() })
}

func setHeapRandom(cfg Config) (int64, error) {
	keys := random.New(cfg.Seed).Perm(cfg.Size)
	return heapUse(cfg.Rounds, func() (blist.Set[int], error) {
		var s blist.Set[int]
		for _, k := range keys {
			s.Insert(k)
		}
		return s, expectCount("set", s.Count(), cfg.Size)
	}, func(s blist.Set[int]) { s.Deplete() })
}

func setHeapAscending(cfg Config) (int64, error) {
	return heapUse(cfg.Rounds, func() (blist.Set[int], error) {
		var s blist.Set[int]
		for i := range cfg.Size {
			s.Insert(i)
		}
		if !s.IsDense() {
			return s, errors.New("ascending inserts did not produce a dense set")
		}
		return s, expectCount("set", s.Count(), cfg.Size)
	}, func(s blist.Set[int]) { s.Deplete() })
}

func sliceHeap(cfg Config) (int64, error) {
	return heapUse(cfg.Rounds, func() ([]int, error) {
		var s []int
		for i := range cfg.Size {
			s = append(s, i)
		}
		return s, nil
	}, nil)
}

func goMapHeapRandom(cfg Config) (int64, error) {
	keys := random.New(cfg.Seed).Perm(cfg.Size)
	return heapUse(cfg.Rounds, func() (map[int]struct{}, error) {
		m := make(map[int]struct{})
		for _, k := range keys {
			m[k] = struct{}{}
		}
		return m, expectCount("map", len(m), cfg.Size)
	}, nil)
}
