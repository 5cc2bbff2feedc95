package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/npillmayer/blist/bench"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Baseline maps scenario names to the best time of an earlier run.
type Baseline map[string]time.Duration

// attribute carrying the best time in nanoseconds on every result row
const bestAttr = "data-best-ns"

// attribute carrying the heap growth in bytes on rows of heap scenarios
const bytesAttr = "data-bytes"

// HTML writes results as an HTML document with a single table. Failed
// scenarios are listed with their error and carry no measurement. Heap
// scenarios show bytes instead of durations.
func HTML(w io.Writer, title string, cfg bench.Config, results []bench.Result) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)
	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(textElement(atom.Title, title))
	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(textElement(atom.H1, title))
	body.AppendChild(textElement(atom.P,
		fmt.Sprintf("n = %d, seed = %d, best of %d rounds", cfg.Size, cfg.Seed, cfg.Rounds)))
	table := element(atom.Table)
	body.AppendChild(table)
	table.AppendChild(row(atom.Th, "scenario", "n", "best", "per op", "description"))
	for _, res := range results {
		var tr *html.Node
		desc := ""
		if sc, ok := bench.Lookup(res.Scenario); ok {
			desc = sc.Doc
		}
		if res.Err != nil {
			tr = row(atom.Td, res.Scenario, strconv.Itoa(res.Size), "failed", "", res.Err.Error())
			tr.Attr = append(tr.Attr, html.Attribute{Key: "class", Val: "failed"})
		} else {
			best, perOp := figures(res)
			tr = row(atom.Td, res.Scenario, strconv.Itoa(res.Size), best, perOp, desc)
			if res.Metric == bench.Heap {
				tr.Attr = append(tr.Attr, html.Attribute{Key: bytesAttr, Val: strconv.FormatInt(res.Bytes, 10)})
			} else {
				tr.Attr = append(tr.Attr, html.Attribute{Key: bestAttr, Val: strconv.FormatInt(int64(res.Best), 10)})
			}
		}
		table.AppendChild(tr)
	}
	tracer().Debugf("report: writing HTML table with %d results", len(results))
	return html.Render(w, doc)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func row(cell atom.Atom, texts ...string) *html.Node {
	tr := element(atom.Tr)
	for _, text := range texts {
		tr.AppendChild(textElement(cell, text))
	}
	return tr
}

// ReadBaseline reads the best times from an HTML report written by HTML.
// Rows of failed and of heap scenarios are skipped.
func ReadBaseline(r io.Reader) (Baseline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	b := Baseline{}
	if err = collectRows(doc, b); err != nil {
		return nil, err
	}
	tracer().Debugf("report: baseline has %d entries", len(b))
	return b, nil
}

func collectRows(n *html.Node, b Baseline) error {
	if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
		for _, a := range n.Attr {
			if a.Key != bestAttr {
				continue
			}
			ns, err := strconv.ParseInt(a.Val, 10, 64)
			if err != nil {
				return fmt.Errorf("report: malformed baseline time %q: %w", a.Val, err)
			}
			b[innerText(firstCell(n))] = time.Duration(ns)
		}
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectRows(c, b); err != nil {
			return err
		}
	}
	return nil
}

func firstCell(tr *html.Node) *html.Node {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Td {
			return c
		}
	}
	return nil
}

// innerText concatenates the text content of n and its descendents.
func innerText(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	s := ""
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s += innerText(c)
	}
	return s
}
