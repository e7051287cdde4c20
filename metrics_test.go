package dhgp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhgp"
	"github.com/katalvlaran/dhgp/dhypergraph"
)

func TestKM1_SingleBlockEdgeContributesNothing(t *testing.T) {
	heads := [][]dhypergraph.NodeID{{2}}
	tails := [][]dhypergraph.NodeID{{0, 1}}
	h, err := dhypergraph.NewHypergraph(3, heads, tails, nil, nil)
	require.NoError(t, err)

	part := dhgp.NewPartitionState(h, 2)
	part.Assign(0, 0)
	part.Assign(1, 0)
	part.Assign(2, 0)

	require.Equal(t, int64(0), dhgp.KM1(h, part))
}

func TestKM1_SpanningEdgeChargedByLambdaMinusOne(t *testing.T) {
	// One hyperedge touching 3 distinct blocks (head in block 2, tails
	// split across blocks 0 and 1): lambda=3, weight=4 -> (3-1)*4=8.
	heads := [][]dhypergraph.NodeID{{2}}
	tails := [][]dhypergraph.NodeID{{0, 1}}
	h, err := dhypergraph.NewHypergraph(3, heads, tails, nil, []int64{4})
	require.NoError(t, err)

	part := dhgp.NewPartitionState(h, 3)
	part.Assign(0, 0)
	part.Assign(1, 1)
	part.Assign(2, 2)

	require.Equal(t, int64(8), dhgp.KM1(h, part))
}

func TestKM1_SumsAcrossMultipleEdges(t *testing.T) {
	heads := [][]dhypergraph.NodeID{{1}, {3}}
	tails := [][]dhypergraph.NodeID{{0}, {2}}
	h, err := dhypergraph.NewHypergraph(4, heads, tails, nil, nil)
	require.NoError(t, err)

	part := dhgp.NewPartitionState(h, 2)
	part.Assign(0, 0)
	part.Assign(1, 1) // edge 0 spans blocks 0,1 -> +1
	part.Assign(2, 0)
	part.Assign(3, 0) // edge 1 confined to block 0 -> +0

	require.Equal(t, int64(1), dhgp.KM1(h, part))
}
