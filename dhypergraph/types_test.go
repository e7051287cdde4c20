package dhypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// c17Hypergraph builds an 11-node, 6-hyperedge benchmark fixture where
// every hyperedge has 1 head and 2 tails.
func c17Hypergraph(t testing.TB) *Hypergraph {
	t.Helper()
	heads := [][]NodeID{
		{0}, {1}, {2}, {3}, {5}, {9},
	}
	tails := [][]NodeID{
		{2, 7},
		{8, 2},
		{10, 4},
		{5, 1},
		{6, 10},
		{1, 0},
	}
	h, err := NewHypergraph(11, heads, tails, nil, nil)
	require.NoError(t, err)

	return h
}

func TestNewHypergraph_BasicInvariants(t *testing.T) {
	h := c17Hypergraph(t)
	require.Equal(t, 11, h.InitialNumNodes())
	require.Equal(t, 11, h.CurrentNumNodes())
	require.Equal(t, 6, h.NumHyperedges())

	for e := 0; e < 6; e++ {
		require.True(t, h.IsEdgeAlive(EdgeID(e)))
	}
	heads0, err := h.EdgeHeads(0)
	require.NoError(t, err)
	require.Equal(t, []NodeID{0}, heads0)

	headEdges, err := h.IncidentHeadEdges(0)
	require.NoError(t, err)
	require.Equal(t, []EdgeID{0}, headEdges)

	tailEdges, err := h.IncidentTailEdges(2)
	require.NoError(t, err)
	require.Contains(t, tailEdges, EdgeID(0))
	require.Contains(t, tailEdges, EdgeID(1))
}

func TestNewHypergraph_RejectsRoleConflict(t *testing.T) {
	_, err := NewHypergraph(2, [][]NodeID{{0}}, [][]NodeID{{0}}, nil, nil)
	require.ErrorIs(t, err, ErrPinRoleConflict)
}

func TestNewHypergraph_RejectsOutOfRangePin(t *testing.T) {
	_, err := NewHypergraph(2, [][]NodeID{{5}}, [][]NodeID{{0}}, nil, nil)
	require.ErrorIs(t, err, ErrNodeNotFound)
}
