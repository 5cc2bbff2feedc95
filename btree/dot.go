package btree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot writes the node structure of t in Graphviz DOT format, for
// debugging. Nodes shared with other trees are filled in a darker shade the
// more references they have.
func ToDot[E any](t *Tree[E], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := make(map[*node[E]]int)
		var nodes, edges strings.Builder
		var walk func(n *node[E]) int
		walk = func(n *node[E]) int {
			if id, ok := ids[n]; ok {
				return id
			}
			id := len(ids) + 1
			ids[n] = id
			fmt.Fprintf(&nodes, "\t\"%d\" [label=\"%s\" %s];\n", id, dotLabel(n), dotStyles(n))
			if !n.isLeaf() {
				for _, kid := range n.kids.nodes[:n.fill] {
					fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", id, walk(kid))
				}
			}
			return id
		}
		walk(t.root)
		b.WriteString(nodes.String())
		b.WriteString(edges.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("btree DOT: %s", err.Error())
	}
	return err
}

func dotLabel[E any](n *node[E]) string {
	switch n.kind {
	case runKind:
		return fmt.Sprintf("%v…%v\\n#%d", *n.run, n.last(), n.size)
	case leafKind:
		return fmt.Sprintf("%v…%v\\n#%d", n.items[0], n.last(), n.size)
	}
	return fmt.Sprintf("#%d", n.size)
}

func dotStyles[E any](n *node[E]) string {
	shade := int(n.ref.Load()) - 1
	if shade >= len(hexcolors) {
		shade = len(hexcolors) - 1
	}
	s := fmt.Sprintf(",style=filled,fillcolor=\"%s\"", hexcolors[shade])
	switch n.kind {
	case runKind:
		s += ",shape=box,peripheries=2"
	case leafKind:
		s += ",shape=box"
	default:
		s += ",color=black,shape=circle"
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
