package quotient_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhgp/cycledetect"
	"github.com/katalvlaran/dhgp/dhypergraph"
	"github.com/katalvlaran/dhgp/quotient"
)

// testPartition is a minimal quotient.Partition over a fixed block map.
type testPartition struct {
	block map[dhypergraph.NodeID]int
	k     int
}

func (p *testPartition) BlockOf(u dhypergraph.NodeID) int { return p.block[u] }
func (p *testPartition) K() int                           { return p.k }

// fourNodeFixture builds two hyperedges over 4 nodes:
//
//	edge0: head{2} tails{0}
//	edge1: head{3} tails{2}
//
// partitioned block0={0}, block1={2,3}: a single 0->1 quotient edge
// (edge0) and one internal-to-1 edge (edge1).
func fourNodeFixture(t testing.TB) (*dhypergraph.Hypergraph, *testPartition) {
	t.Helper()
	heads := [][]dhypergraph.NodeID{{2}, {3}}
	tails := [][]dhypergraph.NodeID{{0}, {2}}
	h, err := dhypergraph.NewHypergraph(4, heads, tails, nil, nil)
	require.NoError(t, err)
	part := &testPartition{k: 2, block: map[dhypergraph.NodeID]int{0: 0, 1: 0, 2: 1, 3: 1}}

	return h, part
}

func TestGraph_InitializeBuildsAdj(t *testing.T) {
	h, part := fourNodeFixture(t)
	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err)

	require.Equal(t, 1, g.Adj(0, 1))
	require.Equal(t, 1, g.Adj(1, 1))
	require.Equal(t, 0, g.Adj(0, 0))
	require.Equal(t, 0, g.Adj(1, 0))

	order, err := g.TopologicalOrdering()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, order)
}

func TestGraph_PendingRemovals_SoleWitness(t *testing.T) {
	h, part := fourNodeFixture(t)
	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err)

	removals := g.PendingRemovals(2)
	require.Equal(t, []quotient.Edge{{U: 0, V: 1}}, removals)

	// node0 is never a head pin: leaving its block removes nothing.
	require.Empty(t, g.PendingRemovals(0))
}

func TestGraph_PendingInsertions(t *testing.T) {
	h, part := fourNodeFixture(t)
	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err)

	// Moving 0 into block1 makes edge0 internal to block1; no new quotient
	// edge appears.
	require.Empty(t, g.PendingInsertions(0, 1))

	// Moving 3 into block0 proposes a brand new 1->0 edge (3 is a head
	// pin of edge1, whose tail 2 stays in block1).
	require.Equal(t, []quotient.Edge{{U: 1, V: 0}}, g.PendingInsertions(3, 0))
}

func TestGraph_TestAndUpdateBeforeMovement(t *testing.T) {
	h, part := fourNodeFixture(t)
	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err)

	// Accepted: no new quotient edge is introduced.
	require.True(t, g.TestAndUpdateBeforeMovement(0, 1))
	// Rejected: would add 1->0 while 0->1 already exists, a 2-cycle.
	require.False(t, g.TestAndUpdateBeforeMovement(3, 0))
	// Idempotent: repeating the rejected query is a cache hit, same verdict.
	require.False(t, g.TestAndUpdateBeforeMovement(3, 0))

	// The rejection must not have mutated adj or the quotient order.
	require.Equal(t, 1, g.Adj(0, 1))
	order, err := g.TopologicalOrdering()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, order)
}

func TestGraph_PerformMovement_RebuildsAndFlushesCache(t *testing.T) {
	h, part := fourNodeFixture(t)
	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err)

	require.False(t, g.TestAndUpdateBeforeMovement(3, 0))

	// Move node 2 out of block1 into block0: edge1 (head 3, tail 2)
	// becomes a 0->1 crossing instead of internal-to-1, and edge0 (head
	// 2, tail 0) becomes internal-to-0 instead of 0->1.
	part.block[2] = 0
	g.PerformMovement(2)

	require.Equal(t, 1, g.Adj(0, 0))
	require.Equal(t, 1, g.Adj(0, 1))
	require.Equal(t, 0, g.Adj(1, 1))

	// The structural change must have flushed the (3,0) blockedMoves
	// entry: node3 now has no tail pin left in block1, so the move is
	// reconsidered and, in this new configuration, no longer introduces
	// any new quotient edge.
	require.Empty(t, g.PendingInsertions(3, 0))
	require.True(t, g.TestAndUpdateBeforeMovement(3, 0))
}

func TestGraph_TolerantOfCyclicAdjUntilTopologicalOrderingIsAsked(t *testing.T) {
	heads := [][]dhypergraph.NodeID{{1}, {2}}
	tails := [][]dhypergraph.NodeID{{0}, {3}}
	h, err := dhypergraph.NewHypergraph(4, heads, tails, nil, nil)
	require.NoError(t, err)
	// block0={0,2}, block1={1,3}: edgeA gives 0->1, edgeB gives 1->0.
	part := &testPartition{k: 2, block: map[dhypergraph.NodeID]int{0: 0, 2: 0, 1: 1, 3: 1}}

	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err, "Initialize must tolerate a cyclic adj")
	require.Equal(t, 1, g.Adj(0, 1))
	require.Equal(t, 1, g.Adj(1, 0))

	_, err = g.TopologicalOrdering()
	require.ErrorIs(t, err, quotient.ErrQuotientGraphCyclic)
}

func TestDenseView(t *testing.T) {
	h, part := fourNodeFixture(t)
	g, err := quotient.NewGraph(h, part, cycledetect.NewKahnDetector(2))
	require.NoError(t, err)

	m := g.Matrix()
	require.Equal(t, 2, m.K())
	require.Equal(t, 1, m.At(0, 1))
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 1, m.RowDegree(0))
	require.Equal(t, 0, m.ColDegree(0))

	tr := m.Transpose()
	require.Equal(t, 1, tr.At(1, 0))
}
