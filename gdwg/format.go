// Package gdwg: structural equality and canonical text rendering.
//
// Both are derived from the edge store's maintained order: equality compares
// the stores as sequences (equivalent to set comparison because both sides
// keep the same canonical order), and String walks nodes ascending, printing
// each node's outgoing edges unweighted-first.

package gdwg

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Equal reports structural equality of two graphs: identical node sets and
// pairwise-equal edge stores. Insertion order never matters, because both
// stores are independently kept in the same canonical order; weights and
// weightedness always matter.
// Complexity: O(V + E).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if g == other {
		return true
	}
	if !maps.Equal(g.nodes, other.nodes) {
		return false
	}

	return slices.EqualFunc(g.edges, other.edges, Edge[N, E].Equal)
}

// String renders the graph in its canonical text form. The output starts
// with a newline; each node in ascending order contributes a block
//
//	node (
//	  src -> dst | U
//	  src -> dst | W | weight
//	)
//
// listing the node's outgoing edges indented by two spaces, unweighted edges
// first, then weighted edges, each group in store order. A node without
// outgoing edges still produces an empty block.
// Complexity: O(V * E).
func (g *Graph[N, E]) String() string {
	var b strings.Builder
	b.WriteByte('\n')
	for _, v := range g.Nodes() {
		fmt.Fprintf(&b, "%v (\n", v)
		for _, e := range g.edges {
			if e.src == v && !e.weighted {
				b.WriteString("  " + e.String() + "\n")
			}
		}
		for _, e := range g.edges {
			if e.src == v && e.weighted {
				b.WriteString("  " + e.String() + "\n")
			}
		}
		b.WriteString(")\n")
	}

	return b.String()
}
