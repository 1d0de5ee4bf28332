// Package gdwg: the Edge record and its canonical ordering.
//
// Edge is a closed two-variant value: weighted or unweighted, distinguished
// by a tag rather than by subtyping, so equality stays total and requires no
// downcasting. Edges store node values by value, never links into the node
// store; renames rewrite these copies explicitly.

package gdwg

import (
	"cmp"
	"fmt"
)

// Edge is one directed edge record: src -> dst, optionally carrying a
// weight. The zero value is an unweighted edge between zero-valued nodes;
// construct with Weighted or Unweighted.
type Edge[N cmp.Ordered, E cmp.Ordered] struct {
	src, dst N
	weight   E
	weighted bool
}

// Weighted constructs a weighted edge record src -> dst with the given weight.
func Weighted[N cmp.Ordered, E cmp.Ordered](src, dst N, weight E) Edge[N, E] {
	return Edge[N, E]{src: src, dst: dst, weight: weight, weighted: true}
}

// Unweighted constructs an unweighted edge record src -> dst.
func Unweighted[N cmp.Ordered, E cmp.Ordered](src, dst N) Edge[N, E] {
	return Edge[N, E]{src: src, dst: dst}
}

// Nodes returns the (src, dst) pair of the edge.
func (e Edge[N, E]) Nodes() (src, dst N) {
	return e.src, e.dst
}

// IsWeighted reports whether the edge carries a weight.
func (e Edge[N, E]) IsWeighted() bool {
	return e.weighted
}

// Weight returns the edge weight and true for a weighted edge, or the zero
// weight and false for an unweighted one.
func (e Edge[N, E]) Weight() (E, bool) {
	if !e.weighted {
		var zero E
		return zero, false
	}

	return e.weight, true
}

// String renders the edge as "src -> dst | U" for the unweighted variant and
// "src -> dst | W | weight" for the weighted one. This rendering is part of
// the graph's textual output format and must stay stable.
func (e Edge[N, E]) String() string {
	if e.weighted {
		return fmt.Sprintf("%v -> %v | W | %v", e.src, e.dst, e.weight)
	}

	return fmt.Sprintf("%v -> %v | U", e.src, e.dst)
}

// Equal reports structural equality: same variant tag, same src, same dst,
// and for two weighted edges the same weight. A weighted edge never equals
// an unweighted one.
func (e Edge[N, E]) Equal(other Edge[N, E]) bool {
	return e.Compare(other) == 0
}

// Clone returns an independently owned copy of the edge with identical
// fields. Edges are plain values, so the copy shares no storage with the
// original.
func (e Edge[N, E]) Clone() Edge[N, E] {
	return e
}

// Compare orders edges canonically: src ascending, then dst ascending, then
// unweighted before weighted, then weight ascending for two weighted edges.
// The edge store is kept sorted by this order, which in turn fixes the
// iteration, printing and equality order of the whole graph.
func (e Edge[N, E]) Compare(other Edge[N, E]) int {
	if c := cmp.Compare(e.src, other.src); c != 0 {
		return c
	}
	if c := cmp.Compare(e.dst, other.dst); c != 0 {
		return c
	}
	if e.weighted != other.weighted {
		if e.weighted {
			return 1
		}
		return -1
	}
	if !e.weighted {
		return 0
	}

	return cmp.Compare(e.weight, other.weight)
}
