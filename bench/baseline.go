package bench

import (
	"errors"
	"slices"
	"time"

	"github.com/npillmayer/blist/random"
)

// Scenarios on Go slices and maps, for comparison with the containers.

func sliceAppend(cfg Config) (time.Duration, error) {
	var s []int
	return measure(cfg.Rounds, func() { s = nil }, func() error {
		for i := range cfg.Size {
			s = append(s, i)
		}
		return expectCount("slice", len(s), cfg.Size)
	})
}

func sliceInsertRandom(cfg Config) (time.Duration, error) {
	var s []int
	var positions []int
	prepare := func() {
		s = nil
		positions = insertPositions(cfg)
	}
	return measure(cfg.Rounds, prepare, func() error {
		for i, pos := range positions {
			s = slices.Insert(s, pos, i)
		}
		return expectCount("slice", len(s), cfg.Size)
	})
}

func goMapInsertRandom(cfg Config) (time.Duration, error) {
	var m map[int]struct{}
	var keys []int
	prepare := func() {
		m = make(map[int]struct{})
		keys = random.New(cfg.Seed).Perm(cfg.Size)
	}
	return measure(cfg.Rounds, prepare, func() error {
		for _, k := range keys {
			m[k] = struct{}{}
		}
		return expectCount("map", len(m), cfg.Size)
	})
}

func goMapLookupSparse(cfg Config) (time.Duration, error) {
	m := make(map[int]struct{}, cfg.Size)
	for i := range cfg.Size {
		m[2*i] = struct{}{}
	}
	probes := lookupProbes(cfg, 2*cfg.Size)
	hits := 0
	return measure(cfg.Rounds, func() { hits = 0 }, func() error {
		for _, p := range probes {
			if _, ok := m[p]; ok {
				hits++
			}
		}
		if hits == 0 {
			return errors.New("no lookup succeeded")
		}
		return nil
	})
}
