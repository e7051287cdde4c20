package initpart_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhgp"
	"github.com/katalvlaran/dhgp/dhypergraph"
	"github.com/katalvlaran/dhgp/initpart"
	"github.com/katalvlaran/dhgp/topord"
)

// c17Hypergraph builds an 11-node, 6-hyperedge benchmark fixture where
// every hyperedge has 1 head and 2 tails.
func c17Hypergraph(t testing.TB) *dhypergraph.Hypergraph {
	t.Helper()
	heads := [][]dhypergraph.NodeID{
		{0}, {1}, {2}, {3}, {5}, {9},
	}
	tails := [][]dhypergraph.NodeID{
		{2, 7},
		{8, 2},
		{10, 4},
		{5, 1},
		{6, 10},
		{1, 0},
	}
	h, err := dhypergraph.NewHypergraph(11, heads, tails, nil, nil)
	require.NoError(t, err)

	return h
}

func uniformConfig(k int, upper int64) dhgp.InitialPartitioningConfig {
	perfect := make([]int64, k)
	upperBounds := make([]int64, k)
	for i := range perfect {
		perfect[i] = upper
		upperBounds[i] = upper
	}

	return dhgp.InitialPartitioningConfig{
		K:                             k,
		Mode:                          dhgp.DirectKway,
		PerfectBalancePartitionWeight: perfect,
		UpperAllowedPartitionWeight:   upperBounds,
	}
}

func TestTopoSweep_C17_ProducesAcyclicFeasiblePartition(t *testing.T) {
	h := c17Hypergraph(t)
	cfg := uniformConfig(3, 4)
	rng := rand.New(rand.NewSource(11))

	part, stats, err := initpart.TopoSweep(h, cfg, rng)
	require.NoError(t, err)
	require.NotNil(t, part)
	require.False(t, stats.Infeasible)

	for _, u := range h.LiveNodes() {
		require.NotEqual(t, dhgp.Unassigned, part.BlockOf(u))
	}

	order := topord.TopologicalOrdering(h, false, nil)
	pos := topord.InvertedTopologicalOrdering(h, order)
	for _, e := range h.LiveHyperedges() {
		heads, err := h.EdgeHeads(e)
		require.NoError(t, err)
		tails, err := h.EdgeTails(e)
		require.NoError(t, err)
		for _, w := range tails {
			for _, u := range heads {
				require.LessOrEqual(t, pos[w], pos[u])
				require.LessOrEqual(t, part.BlockOf(w), part.BlockOf(u))
			}
		}
	}
}

func TestTopoSweep_CyclicHypergraph_ReturnsError(t *testing.T) {
	heads := [][]dhypergraph.NodeID{{0}, {1}}
	tails := [][]dhypergraph.NodeID{{1}, {0}}
	h, err := dhypergraph.NewHypergraph(2, heads, tails, nil, nil)
	require.NoError(t, err)

	_, _, err = initpart.TopoSweep(h, uniformConfig(2, 2), nil)
	require.ErrorIs(t, err, initpart.ErrCyclicHypergraph)
}

// twoCycleHypergraph builds a 4-node fixture with two hyperedges forming a
// cycle between the blocks {0,1} and {2,3}: edge e0 (head 2, tail 0) points
// block0 -> block1, edge e1 (head 0, tail 2) points block1 -> block0.
func twoCycleHypergraph(t testing.TB) *dhypergraph.Hypergraph {
	t.Helper()
	heads := [][]dhypergraph.NodeID{{2}, {0}}
	tails := [][]dhypergraph.NodeID{{0}, {2}}
	h, err := dhypergraph.NewHypergraph(4, heads, tails, nil, nil)
	require.NoError(t, err)

	return h
}

func TestUndirectedFixup_BreaksTwoBlockCycle(t *testing.T) {
	h := twoCycleHypergraph(t)
	part := dhgp.NewPartitionState(h, 2)
	part.Assign(0, 0)
	part.Assign(1, 0)
	part.Assign(2, 1)
	part.Assign(3, 1)

	before := dhgp.KM1(h, part)
	require.Greater(t, before, int64(0), "both edges cross the initial bipartition")

	stats, err := initpart.UndirectedFixup(h, part)
	require.NoError(t, err)
	require.LessOrEqual(t, stats.KM1, before)
	require.Equal(t, int64(0), stats.KM1, "the 4-candidate search must find the zero-cut repair")
	require.Equal(t, dhgp.KM1(h, part), stats.KM1)
}

func TestUndirectedFixup_RequiresTwoBlocks(t *testing.T) {
	h := c17Hypergraph(t)
	part := dhgp.NewPartitionState(h, 3)

	_, err := initpart.UndirectedFixup(h, part)
	require.ErrorIs(t, err, initpart.ErrFixupRequiresTwoBlocks)
}
