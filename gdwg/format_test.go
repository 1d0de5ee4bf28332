package gdwg_test

import (
	"fmt"
	"testing"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
	"github.com/stretchr/testify/require"
)

func TestGraph_Equal(t *testing.T) {
	g1 := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g1, 1, 2, 10)
	g2 := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g2, 1, 2, 10)

	require.True(t, g1.Equal(g2))
	require.True(t, g2.Equal(g1))

	mustInsertEdge(t, g2, 2, 1, 5)
	require.False(t, g1.Equal(g2))
}

func TestGraph_Equal_InsertionOrderIndependent(t *testing.T) {
	type ins struct {
		src, dst, weight int
	}
	forward := []ins{{1, 2, 3}, {1, 2, 7}, {2, 3, 1}, {3, 1, 4}}
	backward := []ins{{3, 1, 4}, {2, 3, 1}, {1, 2, 7}, {1, 2, 3}}

	build := func(order []ins) *gdwg.Graph[int, int] {
		g := gdwg.New[int, int](1, 2, 3)
		for _, e := range order {
			mustInsertEdge(t, g, e.src, e.dst, e.weight)
		}
		return g
	}

	require.True(t, build(forward).Equal(build(backward)))
}

func TestGraph_Equal_WeightSensitive(t *testing.T) {
	g1 := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g1, 1, 2, 10)
	g2 := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g2, 1, 2, 11)
	require.False(t, g1.Equal(g2))

	// Same endpoints, different variant tags.
	g3 := gdwg.New[int, int](1, 2)
	ok, err := g3.InsertEdge(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, g1.Equal(g3))
}

func TestGraph_Equal_NodeSets(t *testing.T) {
	g1 := gdwg.New[int, int](1, 2, 3)
	g2 := gdwg.New[int, int](1, 2)
	require.False(t, g1.Equal(g2))
	require.True(t, g2.InsertNode(3))
	require.True(t, g1.Equal(g2))
}

func TestGraph_String_Canonical(t *testing.T) {
	type ins struct {
		src, dst int
		weight   *int
	}
	w := func(v int) *int { return &v }
	fixture := []ins{
		{4, 1, w(-4)},
		{3, 2, w(2)},
		{2, 4, nil},
		{2, 4, w(2)},
		{2, 1, w(1)},
		{4, 1, nil},
		{6, 2, w(5)},
		{6, 3, w(10)},
		{1, 5, w(-1)},
		{3, 6, w(-8)},
		{4, 5, w(3)},
		{5, 2, nil},
	}

	g := gdwg.New[int, int]()
	for _, e := range fixture {
		g.InsertNode(e.src)
		g.InsertNode(e.dst)
		var (
			ok  bool
			err error
		)
		if e.weight != nil {
			ok, err = g.InsertEdge(e.src, e.dst, *e.weight)
		} else {
			ok, err = g.InsertEdge(e.src, e.dst)
		}
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.True(t, g.InsertNode(64))

	want := `
1 (
  1 -> 5 | W | -1
)
2 (
  2 -> 4 | U
  2 -> 1 | W | 1
  2 -> 4 | W | 2
)
3 (
  3 -> 2 | W | 2
  3 -> 6 | W | -8
)
4 (
  4 -> 1 | U
  4 -> 1 | W | -4
  4 -> 5 | W | 3
)
5 (
  5 -> 2 | U
)
6 (
  6 -> 2 | W | 5
  6 -> 3 | W | 10
)
64 (
)
`
	require.Equal(t, want, g.String())
	// fmt integration goes through the same rendering.
	require.Equal(t, want, fmt.Sprint(g))
}

func TestGraph_String_Empty(t *testing.T) {
	g := gdwg.New[int, int]()
	require.Equal(t, "\n", g.String())
}
