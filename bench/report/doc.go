/*
Package report renders benchmark results.

Console prints one line per result to a terminal, optionally colored and
fitted to the terminal width. HTML writes a self-contained HTML table; reports
written this way may be read back with ReadBaseline and serve as a baseline
for later runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–26 Norbert Pillmayer <norbert@pillmayer.com>
*/
package report

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer traces with key 'blist'.
func tracer() tracing.Trace {
	return tracing.Select("blist")
}

var setupGraphemes sync.Once

func setup() {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
}
