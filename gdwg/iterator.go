// Package gdwg: read-only cursors over the edge store.
//
// The Iterator is a positional, bidirectional cursor walking the edge store
// in its canonical order. Dereferencing materializes a fresh EdgeView
// snapshot each time; the cursor keeps no mutable state that aliases across
// calls. Any structural mutation of the graph invalidates cursors obtained
// before it, and stepping past Begin or End is the caller's contract
// violation, as with any bidirectional cursor.

package gdwg

import (
	"cmp"
	"iter"
	"slices"
)

// EdgeView is a self-contained snapshot of one edge as seen by a cursor:
// From -> To with Weight valid only when Weighted is true. It is a value
// computed at dereference time, not a live reference, so holding one across
// further iteration or graph mutation is safe but may become stale relative
// to the graph.
type EdgeView[N cmp.Ordered, E cmp.Ordered] struct {
	From, To N
	Weight   E
	Weighted bool
}

// Iterator is a bidirectional cursor positioned over the edge store. Two
// iterators are Equal when they reference the same slot of the same graph.
// The zero Iterator is not attached to a graph; obtain cursors from Begin,
// End or Find.
type Iterator[N cmp.Ordered, E cmp.Ordered] struct {
	g   *Graph[N, E]
	pos int
}

// Begin returns a cursor at the first edge in canonical order. For a graph
// without edges Begin equals End.
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	return Iterator[N, E]{g: g}
}

// End returns the past-the-end cursor. It is not dereferenceable.
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{g: g, pos: len(g.edges)}
}

// Find returns a cursor positioned at the edge matching src, dst and the
// given weight (the unweighted edge when no weight is given), or End when
// no such edge is stored.
// Complexity: O(log E).
func (g *Graph[N, E]) Find(src, dst N, weight ...E) Iterator[N, E] {
	probe := Unweighted[N, E](src, dst)
	if len(weight) > 0 {
		probe = Weighted(src, dst, weight[0])
	}
	i, exists := slices.BinarySearchFunc(g.edges, probe, Edge[N, E].Compare)
	if !exists {
		return g.End()
	}

	return Iterator[N, E]{g: g, pos: i}
}

// Next returns a cursor advanced by one position.
func (it Iterator[N, E]) Next() Iterator[N, E] {
	it.pos++

	return it
}

// Prev returns a cursor moved back by one position.
func (it Iterator[N, E]) Prev() Iterator[N, E] {
	it.pos--

	return it
}

// Equal reports positional equality: same graph, same slot.
func (it Iterator[N, E]) Equal(other Iterator[N, E]) bool {
	return it.g == other.g && it.pos == other.pos
}

// Value materializes a fresh snapshot of the edge under the cursor.
func (it Iterator[N, E]) Value() EdgeView[N, E] {
	e := it.g.edges[it.pos]
	view := EdgeView[N, E]{From: e.src, To: e.dst, Weighted: e.weighted}
	if e.weighted {
		view.Weight = e.weight
	}

	return view
}

// All returns a range-over-func sequence of edge snapshots in canonical
// order, the for-range counterpart of walking Begin to End.
func (g *Graph[N, E]) All() iter.Seq[EdgeView[N, E]] {
	return func(yield func(EdgeView[N, E]) bool) {
		for it := g.Begin(); !it.Equal(g.End()); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
