package report

import (
	"fmt"
	"io"

	"drillbot/internal/drill"
	"drillbot/internal/search"
)

// WriteDOT serializes the full search tree in Graphviz DOT form: one node
// per arena entry in generation order, one edge per parent link. Expanded
// nodes carry their expansion order and the solution path is marked, so an
// external tool can reconstruct or draw the tree without rerunning the
// search. This writes structure only; rendering is someone else's job.
func WriteDOT(w io.Writer, res search.Result[drill.State, drill.Action]) error {
	onPath := make(map[int]bool)
	for _, idx := range res.PathIndices() {
		onPath[idx] = true
	}

	if _, err := fmt.Fprintln(w, "digraph searchtree {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintln(w, "  node [shape=box, fontsize=10];")

	for i, node := range res.Nodes {
		label := fmt.Sprintf("#%d %s\\ng=%g d=%d", i, node.State, node.G, node.Depth)
		if node.ExpansionOrder >= 0 {
			label += fmt.Sprintf("\\nE=%d", node.ExpansionOrder)
		}
		attrs := fmt.Sprintf("label=\"%s\"", label)
		switch {
		case i == res.Goal:
			attrs += ", style=filled, fillcolor=palegreen"
		case onPath[i]:
			attrs += ", style=filled, fillcolor=lightyellow"
		case node.ExpansionOrder < 0:
			attrs += ", style=dashed"
		}
		fmt.Fprintf(w, "  n%d [%s];\n", i, attrs)
	}

	for i, node := range res.Nodes {
		if node.Parent < 0 {
			continue
		}
		attrs := fmt.Sprintf("label=\"%s\"", node.Action)
		if onPath[i] && onPath[node.Parent] {
			attrs += ", penwidth=2"
		}
		fmt.Fprintf(w, "  n%d -> n%d [%s];\n", node.Parent, i, attrs)
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
