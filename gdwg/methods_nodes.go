// Package gdwg: node lifecycle and node-centric queries.
//
// Every operation validates its preconditions before touching either store,
// so a failed call leaves the graph exactly as it was. Renames rewrite the
// node values denormalized into edge records (edges hold values, not
// back-references), then restore the canonical edge order.

package gdwg

import (
	"maps"
	"slices"
)

// InsertNode adds v to the node store.
// Returns true if v was absent and is now present, false if it already existed.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) InsertNode(v N) bool {
	if _, exists := g.nodes[v]; exists {
		return false
	}
	g.nodes[v] = struct{}{}

	return true
}

// IsNode reports whether v is a current node. O(1).
func (g *Graph[N, E]) IsNode(v N) bool {
	_, exists := g.nodes[v]

	return exists
}

// EraseNode removes v and every edge incident to it.
// Returns false if v is absent; absence is not an error here.
// Complexity: O(E).
func (g *Graph[N, E]) EraseNode(v N) bool {
	if !g.IsNode(v) {
		return false
	}
	delete(g.nodes, v)
	// Cascade: drop every edge touching v. DeleteFunc preserves the relative
	// order of survivors, so the store stays canonically sorted.
	g.edges = slices.DeleteFunc(g.edges, func(e Edge[N, E]) bool {
		return e.src == v || e.dst == v
	})

	return true
}

// ReplaceNode renames old to new across the whole graph: every edge field
// equal to old is rewritten to new, old leaves the node store and new
// enters it. Returns ErrReplaceNodeNotFound when old is absent. When new is
// already a node the rename would collide, so nothing changes and false is
// returned. Renaming onto a fresh value cannot create duplicate edges, so
// no deduplication happens here.
// Complexity: O(E log E) for the rewrite and re-sort.
func (g *Graph[N, E]) ReplaceNode(old, new N) (bool, error) {
	if !g.IsNode(old) {
		return false, ErrReplaceNodeNotFound
	}
	if g.IsNode(new) {
		return false, nil
	}
	g.rewriteEndpoints(old, new)
	delete(g.nodes, old)
	g.nodes[new] = struct{}{}
	slices.SortFunc(g.edges, Edge[N, E].Compare)

	return true, nil
}

// MergeReplaceNode redirects every edge incident to old onto new and removes
// old from the node store. Both old and new must be current nodes, otherwise
// ErrMergeReplaceNodeNotFound is returned before any mutation. Edges that
// become structurally equal through the redirect collapse into one record.
// Complexity: O(E log E).
func (g *Graph[N, E]) MergeReplaceNode(old, new N) error {
	if !g.IsNode(old) || !g.IsNode(new) {
		return ErrMergeReplaceNodeNotFound
	}
	g.rewriteEndpoints(old, new)
	delete(g.nodes, old)
	// Restore canonical order, then collapse consecutive duplicates produced
	// by the redirect.
	slices.SortFunc(g.edges, Edge[N, E].Compare)
	g.edges = slices.CompactFunc(g.edges, Edge[N, E].Equal)

	return nil
}

// Nodes returns a snapshot of all current nodes in ascending order.
// Complexity: O(V log V).
func (g *Graph[N, E]) Nodes() []N {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Connections returns the sorted distinct destinations reachable from src
// via one edge. Returns ErrConnectionsNodeNotFound when src is absent.
// Complexity: O(E).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	if !g.IsNode(src) {
		return nil, ErrConnectionsNodeNotFound
	}
	// Outgoing edges of src sit in one contiguous run sorted by dst, so
	// skipping adjacent repeats yields the distinct destinations in order.
	out := make([]N, 0)
	for _, e := range g.edges {
		if e.src != src {
			continue
		}
		if len(out) == 0 || out[len(out)-1] != e.dst {
			out = append(out, e.dst)
		}
	}

	return out, nil
}

// rewriteEndpoints rewrites every src/dst field equal to old into new.
// Callers are responsible for restoring the canonical sort afterwards.
func (g *Graph[N, E]) rewriteEndpoints(old, new N) {
	for i := range g.edges {
		if g.edges[i].src == old {
			g.edges[i].src = new
		}
		if g.edges[i].dst == old {
			g.edges[i].dst = new
		}
	}
}
