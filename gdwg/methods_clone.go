// Package gdwg: cloning, moving and clearing graph instances.
//
// Ownership is exclusive throughout: a clone duplicates every edge record so
// that the two graphs never alias storage, and a move transfers both stores
// wholesale, leaving the source valid but empty.

package gdwg

import "maps"

// Clone returns a deep copy of the graph. The node store is copied and every
// edge record is duplicated via Edge.Clone, so mutating either graph never
// affects the other.
// Complexity: O(V + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	out := &Graph[N, E]{
		nodes: make(map[N]struct{}, len(g.nodes)),
		edges: make([]Edge[N, E], 0, len(g.edges)),
	}
	maps.Copy(out.nodes, g.nodes)
	for _, e := range g.edges {
		out.edges = append(out.edges, e.Clone())
	}

	return out
}

// Move transfers both stores into a fresh graph and leaves the receiver in
// the valid-but-empty state (no nodes, no edges, ready for reuse).
// Complexity: O(1).
func (g *Graph[N, E]) Move() *Graph[N, E] {
	out := &Graph[N, E]{nodes: g.nodes, edges: g.edges}
	g.nodes = make(map[N]struct{})
	g.edges = nil

	return out
}

// Clear empties both stores. Never fails.
// Complexity: O(1) beyond map reallocation.
func (g *Graph[N, E]) Clear() {
	g.nodes = make(map[N]struct{})
	g.edges = nil
}
