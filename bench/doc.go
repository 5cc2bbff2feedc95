/*
Package bench measures the blist containers with a fixed set of scenarios.

Scenarios cover positional list editing, ordered set operations on sparse and
dense key ranges, map and multimap updates, and the cost of depleting trees.
A Runner executes a selection of scenarios in the background and broadcasts
each Result to its subscribers, so that several reporters may follow a run:

	r := bench.NewRunner(bench.Config{Size: 100000})
	results, _ := r.Subscribe()
	if err := r.Start(ctx, nil); err != nil {
	    ...
	}
	for msg := range results {
	    res := msg.(bench.Result)
	    ...
	}

Package report renders results for the console and as HTML.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–26 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bench

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blist'.
func tracer() tracing.Trace {
	return tracing.Select("blist")
}
