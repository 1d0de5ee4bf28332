// Package gdwg: edge lifecycle and edge-centric queries.
//
// The edge store is one slice in canonical order, so insertion, erasure and
// lookup all reduce to a binary search with Edge.Compare. Because equality
// and ordering agree (Compare == 0 exactly for structural duplicates), the
// search doubles as the duplicate check.

package gdwg

import "slices"

// InsertEdge adds an edge src -> dst. With a weight argument the weighted
// variant is created, without one the unweighted variant. Both endpoints
// must already be nodes, otherwise ErrInsertEdgeNodeNotFound is returned
// and nothing changes. If a structurally equal record is already stored the
// call returns false without mutation; otherwise the record is inserted at
// its canonical position and true is returned.
// Complexity: O(log E) search + O(E) insertion shift.
func (g *Graph[N, E]) InsertEdge(src, dst N, weight ...E) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrInsertEdgeNodeNotFound
	}
	rec := Unweighted[N, E](src, dst)
	if len(weight) > 0 {
		rec = Weighted(src, dst, weight[0])
	}
	i, exists := slices.BinarySearchFunc(g.edges, rec, Edge[N, E].Compare)
	if exists {
		return false, nil
	}
	g.edges = slices.Insert(g.edges, i, rec)

	return true, nil
}

// EraseEdge removes the unique edge matching src, dst and the given weight
// (or the unweighted edge when no weight is given). Both endpoints must be
// current nodes, otherwise ErrEraseEdgeNodeNotFound is returned. Returns
// true if a record was removed, false if none matched. At most one record
// can match, since the store never holds structural duplicates.
// Complexity: O(log E) search + O(E) deletion shift.
func (g *Graph[N, E]) EraseEdge(src, dst N, weight ...E) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrEraseEdgeNodeNotFound
	}
	probe := Unweighted[N, E](src, dst)
	if len(weight) > 0 {
		probe = Weighted(src, dst, weight[0])
	}
	i, exists := slices.BinarySearchFunc(g.edges, probe, Edge[N, E].Compare)
	if !exists {
		return false, nil
	}
	g.edges = slices.Delete(g.edges, i, i+1)

	return true, nil
}

// IsConnected reports whether any edge, weighted or not, runs src -> dst.
// Returns ErrIsConnectedNodeNotFound when either endpoint is absent.
// Complexity: O(log E).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrIsConnectedNodeNotFound
	}
	i := g.pairStart(src, dst)

	return i < len(g.edges) && g.edges[i].src == src && g.edges[i].dst == dst, nil
}

// Edges returns deep copies of every edge src -> dst, unweighted first and
// then ascending by weight. Returns ErrEdgesNodeNotFound when either
// endpoint is absent.
// Complexity: O(log E + k) for k matching records.
func (g *Graph[N, E]) Edges(src, dst N) ([]Edge[N, E], error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return nil, ErrEdgesNodeNotFound
	}
	// All records for the pair form one contiguous run already in the
	// required order (unweighted first, then weight ascending).
	out := make([]Edge[N, E], 0)
	for i := g.pairStart(src, dst); i < len(g.edges); i++ {
		if g.edges[i].src != src || g.edges[i].dst != dst {
			break
		}
		out = append(out, g.edges[i].Clone())
	}

	return out, nil
}

// pairStart returns the index of the first stored edge with the given
// (src, dst) pair, or the insertion point where such edges would sit.
// The unweighted variant is the pair's canonical minimum, so probing with
// it lands on the start of the run.
func (g *Graph[N, E]) pairStart(src, dst N) int {
	i, _ := slices.BinarySearchFunc(g.edges, Unweighted[N, E](src, dst), Edge[N, E].Compare)

	return i
}
