package gdwg_test

import (
	"testing"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
	"github.com/stretchr/testify/require"
)

func TestIterator_WalkOrder(t *testing.T) {
	g := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g, 1, 2, 10)
	mustInsertEdge(t, g, 2, 1, 5)

	it := g.Begin()
	v := it.Value()
	require.Equal(t, 1, v.From)
	require.Equal(t, 2, v.To)
	require.True(t, v.Weighted)
	require.Equal(t, 10, v.Weight)

	it = it.Next()
	v = it.Value()
	require.Equal(t, 2, v.From)
	require.Equal(t, 1, v.To)
	require.Equal(t, 5, v.Weight)

	require.True(t, it.Next().Equal(g.End()))
}

func TestIterator_MatchesCanonicalStoreOrder(t *testing.T) {
	g := gdwg.New[int, int](1, 2, 3)
	// Inserted out of order on purpose; the walk must come back sorted:
	// src asc, dst asc, unweighted before weighted, weight asc.
	mustInsertEdge(t, g, 2, 1, 4)
	mustInsertEdge(t, g, 1, 3, 2)
	ok, err := g.InsertEdge(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	mustInsertEdge(t, g, 1, 2, -7)
	mustInsertEdge(t, g, 1, 2, 3)

	want := []gdwg.EdgeView[int, int]{
		{From: 1, To: 2},
		{From: 1, To: 2, Weight: -7, Weighted: true},
		{From: 1, To: 2, Weight: 3, Weighted: true},
		{From: 1, To: 3, Weight: 2, Weighted: true},
		{From: 2, To: 1, Weight: 4, Weighted: true},
	}

	var got []gdwg.EdgeView[int, int]
	for it := g.Begin(); !it.Equal(g.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, want, got)

	// All() yields the same sequence.
	got = got[:0]
	for v := range g.All() {
		got = append(got, v)
	}
	require.Equal(t, want, got)
}

func TestIterator_Bidirectional(t *testing.T) {
	g := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g, 1, 2, 10)
	mustInsertEdge(t, g, 2, 1, 5)

	it := g.End().Prev()
	require.Equal(t, 2, it.Value().From)
	it = it.Prev()
	require.Equal(t, 1, it.Value().From)
	require.True(t, it.Equal(g.Begin()))
}

func TestIterator_SnapshotIsNotLive(t *testing.T) {
	g := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g, 1, 2, 10)

	v := g.Begin().Value()
	// Rebuild the graph; the snapshot keeps its old contents.
	g.Clear()
	require.Equal(t, 1, v.From)
	require.Equal(t, 2, v.To)
	require.Equal(t, 10, v.Weight)
}

func TestGraph_Find(t *testing.T) {
	g := gdwg.New[int, int](1, 2)
	mustInsertEdge(t, g, 1, 2, 10)
	ok, err := g.InsertEdge(1, 2)
	require.NoError(t, err)
	require.True(t, ok)

	it := g.Find(1, 2, 10)
	require.False(t, it.Equal(g.End()))
	v := it.Value()
	require.True(t, v.Weighted)
	require.Equal(t, 10, v.Weight)

	// No weight argument selects the unweighted record.
	it = g.Find(1, 2)
	require.False(t, it.Equal(g.End()))
	require.False(t, it.Value().Weighted)

	// A miss positions at End, as does an unknown pair.
	require.True(t, g.Find(1, 2, 99).Equal(g.End()))
	require.True(t, g.Find(2, 1).Equal(g.End()))
}

func TestIterator_EmptyGraph(t *testing.T) {
	g := gdwg.New[int, int](1)
	require.True(t, g.Begin().Equal(g.End()))
	for range g.All() {
		t.Fatal("no edges expected")
	}
}
