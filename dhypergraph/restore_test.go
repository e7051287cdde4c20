package dhypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveRestoreHyperedge_RoundTrip(t *testing.T) {
	h := c17Hypergraph(t)
	before := h.Snapshot()

	require.NoError(t, h.RemoveHyperedge(2))
	require.False(t, h.IsEdgeAlive(2))

	headEdges, err := h.IncidentHeadEdges(2)
	require.NoError(t, err)
	require.NotContains(t, headEdges, EdgeID(2))
	tailEdges, err := h.IncidentTailEdges(10)
	require.NoError(t, err)
	require.NotContains(t, tailEdges, EdgeID(2))

	require.NoError(t, h.RestoreHyperedge())
	require.True(t, h.EqualSnapshot(before))
}

func TestRemoveRestoreHyperedge_Stack(t *testing.T) {
	h := c17Hypergraph(t)
	before := h.Snapshot()

	require.NoError(t, h.RemoveHyperedge(0))
	require.NoError(t, h.RemoveHyperedge(3))
	require.NoError(t, h.RemoveHyperedge(5))

	require.NoError(t, h.RestoreHyperedge())
	require.NoError(t, h.RestoreHyperedge())
	require.NoError(t, h.RestoreHyperedge())

	require.True(t, h.EqualSnapshot(before))
	require.ErrorIs(t, h.RestoreHyperedge(), ErrEmptyRemovalStack)
}

func TestRemoveHyperedge_Errors(t *testing.T) {
	h := c17Hypergraph(t)
	require.ErrorIs(t, h.RemoveHyperedge(99), ErrEdgeNotFound)
	require.NoError(t, h.RemoveHyperedge(0))
	require.ErrorIs(t, h.RemoveHyperedge(0), ErrEdgeDead)
}
