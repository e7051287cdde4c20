// File: types.go
// Role: Graph struct and its constructor.
package quotient

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/dhgp/cycledetect"
	"github.com/katalvlaran/dhgp/dhypergraph"
)

// Partition is the block-assignment view the quotient graph needs from
// its owning partitioner. BlockOf must return a value in [0,K()) for
// every live node; the quotient graph never assigns blocks itself.
type Partition interface {
	BlockOf(u dhypergraph.NodeID) int
	K() int
}

// Edge is a directed block-to-block relation, U != V unless it
// represents a fully-internal edge (U == V).
type Edge struct {
	U, V int
}

// blockedKey addresses the blockedMoves memoization cache.
type blockedKey struct {
	hn dhypergraph.NodeID
	to int
}

const blockedMovesCacheSize = 4096

// Graph is a directed multigraph over k block ids summarizing how a
// partition of h's live nodes crosses h's hyperedges. See doc.go for the
// ownership model.
type Graph struct {
	h    *dhypergraph.Hypergraph
	part Partition
	det  cycledetect.Detector
	k    int

	adj    [][]int                     // adj[u][v]: hyperedges contributing a u->v relation
	hnConn map[dhypergraph.NodeID]map[int]int // hnConn[hn][p]: pin-relations of hn crossing to block p

	blockedMoves *lru.Cache[blockedKey, bool]

	topo    []int
	invTopo []int
	dirty   bool
}

// NewGraph builds a Graph over h's live nodes as partitioned by part,
// using det as the incremental cycle detector for block-level moves. det
// must be freshly constructed over part.K() vertices. The Graph calls
// Initialize before returning.
func NewGraph(h *dhypergraph.Hypergraph, part Partition, det cycledetect.Detector) (*Graph, error) {
	k := part.K()
	if det.N() != k {
		return nil, ErrBlockOutOfRange
	}
	cache, err := lru.New[blockedKey, bool](blockedMovesCacheSize)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		h:            h,
		part:         part,
		det:          det,
		k:            k,
		blockedMoves: cache,
	}
	g.Initialize()

	return g, nil
}
