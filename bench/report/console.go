package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/blist/bench"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

const (
	nameWidth     = 22
	numberWidth   = 12
	fallbackWidth = 65
)

// Console prints results as lines of fixed-width columns. The scenario
// description is shortened to fit the line width; the numeric columns are
// never cut.
type Console struct {
	Context   *uax11.Context // for measuring display widths
	LineWidth int

	w        io.Writer
	baseline Baseline
	name     *color.Color
	faster   *color.Color
	slower   *color.Color
	failed   *color.Color
}

// NewConsole creates a console reporter writing to w. If colored is false,
// no escape sequences are written.
func NewConsole(w io.Writer, colored bool) *Console {
	setup()
	c := &Console{
		Context:   uax11.ContextFromEnvironment(),
		LineWidth: TerminalWidth(),
		w:         w,
		name:      color.New(color.FgBlue),
		faster:    color.New(color.FgGreen),
		slower:    color.New(color.FgRed),
		failed:    color.New(color.FgRed, color.Bold),
	}
	for _, col := range []*color.Color{c.name, c.faster, c.slower, c.failed} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// SetBaseline makes the console print the ratio of each result to the
// baseline time of its scenario.
func (c *Console) SetBaseline(b Baseline) {
	c.baseline = b
}

// TerminalWidth guesses the usable line width of the terminal on stdin.
func TerminalWidth() int {
	width := fallbackWidth
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 40 {
			width = w - 2
		}
	}
	tracer().Debugf("report: console line width is %d en", width)
	return width
}

// Header prints the column titles.
func (c *Console) Header() {
	line := c.pad("scenario", nameWidth) + c.pad("n", numberWidth) +
		c.pad("best", numberWidth) + c.pad("per op", numberWidth)
	if c.baseline != nil {
		line += c.pad("vs base", numberWidth)
	}
	fmt.Fprintln(c.w, line)
	fmt.Fprintln(c.w, strings.Repeat("-", min(c.width(line), c.LineWidth)))
}

// Print prints one result line.
func (c *Console) Print(res bench.Result) {
	name := c.pad(res.Scenario, nameWidth)
	c.name.Fprint(c.w, name)
	used := c.width(name)
	if res.Err != nil {
		c.failed.Fprintln(c.w, c.fit("FAILED: "+res.Err.Error(), c.LineWidth-used))
		return
	}
	best, perOp := figures(res)
	line := c.pad(strconv.Itoa(res.Size), numberWidth) +
		c.pad(best, numberWidth) + c.pad(perOp, numberWidth)
	fmt.Fprint(c.w, line)
	used += c.width(line)
	if c.baseline != nil {
		cell := c.pad("-", numberWidth)
		if base, ok := c.baseline[res.Scenario]; ok && base > 0 && res.Metric == bench.Runtime {
			ratio := float64(res.Best) / float64(base)
			cell = c.pad(fmt.Sprintf("%.2fx", ratio), numberWidth)
			if ratio > 1 {
				c.slower.Fprint(c.w, cell)
			} else {
				c.faster.Fprint(c.w, cell)
			}
		} else {
			fmt.Fprint(c.w, cell)
		}
		used += c.width(cell)
	}
	if sc, ok := bench.Lookup(res.Scenario); ok && c.LineWidth-used > 8 {
		fmt.Fprint(c.w, c.fit(sc.Doc, c.LineWidth-used))
	}
	fmt.Fprintln(c.w)
}

// Follow prints a header and then every result received from sub, until sub
// is closed. It returns the results in the order received.
func (c *Console) Follow(sub <-chan interface{}) []bench.Result {
	c.Header()
	var results []bench.Result
	for msg := range sub {
		if res, ok := msg.(bench.Result); ok {
			c.Print(res)
			results = append(results, res)
		}
	}
	return results
}

func (c *Console) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), c.Context)
}

// fit shortens s to at most width display positions, marking a cut with an
// ellipsis.
func (c *Console) fit(s string, width int) string {
	if c.width(s) <= width {
		return s
	}
	const ellipsis = "…"
	limit := width - c.width(ellipsis)
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := c.width(g)
		if w+gw > limit {
			break
		}
		b.WriteString(g)
		w += gw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// pad fills s with blanks up to width display positions. Cells at least as
// wide as width get a single separating blank.
func (c *Console) pad(s string, width int) string {
	w := c.width(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}

// figures formats the measured value of res and its share per element.
func figures(res bench.Result) (best, perOp string) {
	if res.Metric == bench.Heap {
		return byteSize(float64(res.Bytes)), byteSize(res.BytesPerOp())
	}
	return round(res.Best).String(), round(res.PerOp()).String()
}

func byteSize(b float64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1fMiB", b/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1fKiB", b/(1<<10))
	case b == math.Trunc(b):
		return fmt.Sprintf("%.0fB", b)
	}
	return fmt.Sprintf("%.1fB", b)
}

func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	}
	return d
}
