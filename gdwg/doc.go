// Package gdwg provides a generic, in-memory, value-semantics directed
// multigraph: Graph[N, E] over ordered node values N and ordered edge
// weights E.
//
// What
//
//   - Nodes are unique values held in a set; edges are owned records held in
//     one sequence kept permanently in canonical order:
//     src ascending, dst ascending, unweighted before weighted, weight ascending.
//   - Two edge variants exist between the same ordered pair: weighted and
//     unweighted. Parallel edges are allowed only when they differ by weight
//     or by weightedness; structural duplicates are rejected on insert and
//     collapsed after a merge.
//   - Iteration (Begin/End/Find, All), equality (Equal) and text rendering
//     (String) all read the same canonical order; no auxiliary index exists.
//
// Why
//
//   - Value semantics keep the container free of aliasing: edges store node
//     values, not references, so renaming a node is an explicit O(E) rewrite
//     and a clone can never share storage with its source.
//   - A single maintained total order makes every observable behavior
//     deterministic and makes equality a cheap sequence comparison.
//
// Error policy
//
//	Referencing a node that must exist fails fast with one of the sentinel
//	errors below, raised strictly before any mutation. Expected negative
//	outcomes (duplicate insert, rename collision, erase of an absent record)
//	are reported as a false return, never as an error.
//
//	ErrInsertEdgeNodeNotFound       - InsertEdge endpoint absent
//	ErrReplaceNodeNotFound          - ReplaceNode source absent
//	ErrMergeReplaceNodeNotFound     - MergeReplaceNode endpoint absent
//	ErrIsConnectedNodeNotFound      - IsConnected endpoint absent
//	ErrEraseEdgeNodeNotFound        - EraseEdge endpoint absent
//	ErrEdgesNodeNotFound            - Edges endpoint absent
//	ErrConnectionsNodeNotFound      - Connections source absent
//
// Concurrency
//
//	None. The container is single-threaded by design: no locks, no
//	background work. Mutating the graph invalidates outstanding iterators.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - InsertNode / IsNode / Empty:      O(1)
//   - InsertEdge / EraseEdge / Find:    O(log E) search + O(E) shift
//   - ReplaceNode / MergeReplaceNode:   O(E log E)
//   - EraseNode:                        O(E)
//   - Nodes:                            O(V log V)
//   - Clone:                            O(V + E)
//   - Move:                             O(1)
//
// Usage
//
//	g := gdwg.New[int, int](1, 2, 3)
//	g.InsertEdge(1, 2, 10) // weighted
//	g.InsertEdge(1, 2)     // unweighted, distinct from the weighted record
//	for e := range g.All() {
//	    // e.From, e.To, e.Weight (valid when e.Weighted)
//	}
//	fmt.Print(g) // canonical text rendering
package gdwg
