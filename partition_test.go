package dhgp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhgp"
	"github.com/katalvlaran/dhgp/dhypergraph"
)

func threeNodeHypergraph(t testing.TB) *dhypergraph.Hypergraph {
	t.Helper()
	heads := [][]dhypergraph.NodeID{{1}}
	tails := [][]dhypergraph.NodeID{{0}}
	h, err := dhypergraph.NewHypergraph(3, heads, tails, []int64{2, 3, 5}, nil)
	require.NoError(t, err)

	return h
}

func TestPartitionState_AssignUpdatesBlockWeight(t *testing.T) {
	h := threeNodeHypergraph(t)
	part := dhgp.NewPartitionState(h, 2)

	require.Equal(t, dhgp.Unassigned, part.BlockOf(0))
	part.Assign(0, 0)
	part.Assign(1, 1)
	require.Equal(t, 0, part.BlockOf(0))
	require.Equal(t, 1, part.BlockOf(1))
	require.Equal(t, int64(2), part.BlockWeight(0))
	require.Equal(t, int64(3), part.BlockWeight(1))

	// Reassigning node 0 moves its weight out of block 0 and into block 1.
	part.Assign(0, 1)
	require.Equal(t, int64(0), part.BlockWeight(0))
	require.Equal(t, int64(5), part.BlockWeight(1))
}

func TestPartitionState_Unassign(t *testing.T) {
	h := threeNodeHypergraph(t)
	part := dhgp.NewPartitionState(h, 2)
	part.Assign(2, 0)
	require.Equal(t, int64(5), part.BlockWeight(0))

	part.Unassign(2)
	require.Equal(t, dhgp.Unassigned, part.BlockOf(2))
	require.Equal(t, int64(0), part.BlockWeight(0))

	// Unassigning an already-unassigned node is a no-op, not a violation.
	part.Unassign(2)
	require.Equal(t, dhgp.Unassigned, part.BlockOf(2))
}

func TestPartitionState_UnassignedNodes(t *testing.T) {
	h := threeNodeHypergraph(t)
	part := dhgp.NewPartitionState(h, 2)
	part.Assign(1, 0)

	got := part.UnassignedNodes()
	require.ElementsMatch(t, []dhypergraph.NodeID{0, 2}, got)
}

func TestPartitionState_SnapshotRestore(t *testing.T) {
	h := threeNodeHypergraph(t)
	part := dhgp.NewPartitionState(h, 2)
	part.Assign(0, 0)
	part.Assign(1, 1)
	part.Assign(2, 0)
	snap := part.Snapshot()

	part.Assign(1, 0)
	require.Equal(t, 0, part.BlockOf(1))
	require.Equal(t, int64(10), part.BlockWeight(0))

	part.Restore(snap)
	require.Equal(t, 1, part.BlockOf(1))
	require.Equal(t, int64(7), part.BlockWeight(0))
	require.Equal(t, int64(3), part.BlockWeight(1))
}

func TestPartitionState_AssignOutOfRangeBlockPanics(t *testing.T) {
	h := threeNodeHypergraph(t)
	part := dhgp.NewPartitionState(h, 2)

	require.Panics(t, func() {
		part.Assign(0, 2)
	})
}
