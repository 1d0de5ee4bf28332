// Package gdwggraph is an in-memory, value-semantics directed multigraph
// library: nodes and edge weights are plain ordered values, parallel edges
// between the same pair are allowed when they differ by weight or by
// weighted/unweighted status, and every observable order is canonical.
//
// What you get
//
//	• Generic container: gdwg.Graph[N, E] for any ordered N and E
//	• Multigraph semantics with structural deduplication
//	• Deterministic iteration, equality and text rendering, all driven by
//	  one canonical edge order (src, dst, unweighted-first, weight)
//	• Bidirectional cursors plus Go range-over-func traversal
//	• Deep clone and O(1) move with exclusive ownership throughout
//
// Why choose it?
//
//   - Value semantics – no hidden sharing, no back-references, no aliasing
//   - Deterministic – same content always prints, iterates and compares the same
//   - Pure Go – no cgo, single small dependency surface
//
// The packages:
//
//	gdwg/    — the Graph, Edge and Iterator types and every container operation
//	builder/ — deterministic topology generators (path, cycle, complete, star)
//
// Quick ASCII example:
//
//	    1──▶2
//	    │   │
//	    ▼   ▼
//	    3──▶4
//
//	four nodes, four directed edges; each pair may carry several edges as
//	long as they differ in weight or weightedness.
//
// See the gdwg package documentation for the full operation surface.
package gdwggraph
