// Package gdwg: central Graph type, sentinel errors, and constructors.
//
// This file declares the Graph container and its error surface. Edge and
// Iterator live in edge.go and iterator.go; method implementations are split
// across methods_nodes.go, methods_edges.go and methods_clone.go.

package gdwg

import (
	"cmp"
	"errors"
	"iter"
)

// Sentinel errors for graph operations that require their node arguments to
// exist. The message texts are a compatibility surface shared with other
// renditions of this container and must be preserved verbatim; branch with
// errors.Is, never by string comparison.
var (
	// ErrInsertEdgeNodeNotFound indicates InsertEdge referenced an absent endpoint.
	ErrInsertEdgeNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::insert_edge when either src or dst node does not exist")

	// ErrReplaceNodeNotFound indicates ReplaceNode was asked to rename an absent node.
	ErrReplaceNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::replace_node on a node that doesn't exist")

	// ErrMergeReplaceNodeNotFound indicates MergeReplaceNode referenced an absent node.
	ErrMergeReplaceNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::merge_replace_node on old or new data if they don't exist in the graph")

	// ErrIsConnectedNodeNotFound indicates IsConnected referenced an absent endpoint.
	ErrIsConnectedNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::is_connected if src or dst node don't exist in the graph")

	// ErrEraseEdgeNodeNotFound indicates EraseEdge referenced an absent endpoint.
	ErrEraseEdgeNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::erase_edge on src or dst if they don't exist in the graph")

	// ErrEdgesNodeNotFound indicates Edges referenced an absent endpoint.
	ErrEdgesNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::edges if src or dst node don't exist in the graph")

	// ErrConnectionsNodeNotFound indicates Connections referenced an absent source.
	ErrConnectionsNodeNotFound = errors.New(
		"Cannot call gdwg::graph<N, E>::connections if src doesn't exist in the graph")
)

// Graph is an in-memory directed multigraph over node values N and edge
// weights E. It owns a set of unique nodes and a sequence of edge records
// kept permanently in canonical order (src, dst, unweighted-first, weight).
//
// The zero value is not ready for use; construct with New or FromSeq.
// Graph is not safe for concurrent use, and any mutation invalidates
// iterators obtained earlier.
type Graph[N cmp.Ordered, E cmp.Ordered] struct {
	// nodes is the node store: membership set of unique node values.
	nodes map[N]struct{}

	// edges is the edge store, sorted by Edge.Compare at all times.
	edges []Edge[N, E]
}

// New creates a Graph containing the given seed nodes and no edges.
// Duplicate seeds collapse into one node.
// Complexity: O(len(seed))
func New[N cmp.Ordered, E cmp.Ordered](seed ...N) *Graph[N, E] {
	g := &Graph[N, E]{nodes: make(map[N]struct{}, len(seed))}
	for _, v := range seed {
		g.nodes[v] = struct{}{}
	}

	return g
}

// FromSeq creates a Graph whose nodes are drawn from seq, with no edges.
// Duplicate values collapse into one node.
// Complexity: O(n) for n yielded values.
func FromSeq[N cmp.Ordered, E cmp.Ordered](seq iter.Seq[N]) *Graph[N, E] {
	g := New[N, E]()
	for v := range seq {
		g.nodes[v] = struct{}{}
	}

	return g
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[N, E]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edge records. O(1).
func (g *Graph[N, E]) EdgeCount() int {
	return len(g.edges)
}

// Empty reports whether the graph holds no nodes and no edges. O(1).
func (g *Graph[N, E]) Empty() bool {
	return len(g.nodes) == 0 && len(g.edges) == 0
}
