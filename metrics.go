// File: metrics.go
// Role: the km1 connectivity metric and the opaque stats
// aggregators the Coarsener/InitialPartitioner interfaces return.
package dhgp

import (
	"github.com/katalvlaran/dhgp/dhypergraph"
	"github.com/katalvlaran/dhgp/quotient"
)

// KM1 computes the connectivity (km1) metric over h's live hyperedges
// under part: for each hyperedge e spanning λ(e) distinct blocks,
// (λ(e)-1) * weight(e) is added to the total. An edge confined to a
// single block contributes zero.
// Complexity: O(Σ|heads(e)|+|tails(e)|).
func KM1(h *dhypergraph.Hypergraph, part quotient.Partition) int64 {
	var total int64
	for _, e := range h.LiveHyperedges() {
		blocks := make(map[int]bool)
		heads, _ := h.EdgeHeads(e)
		tails, _ := h.EdgeTails(e)
		for _, u := range heads {
			blocks[part.BlockOf(u)] = true
		}
		for _, w := range tails {
			blocks[part.BlockOf(w)] = true
		}
		if lambda := len(blocks); lambda > 1 {
			weight, _ := h.EdgeWeight(e)
			total += int64(lambda-1) * weight
		}
	}

	return total
}

// CoarsenStats is the opaque stats aggregator Coarsener.Stats returns:
// enough to log a coarsening run without committing to a schema the
// surrounding framework must match.
type CoarsenStats struct {
	Contractions   int
	StartNumNodes  int
	FinalNumNodes  int
}

// PartitionStats is returned by initial partitioners alongside the
// PartitionState, flagging infeasibility as a struct field rather than
// surfacing it as an error.
type PartitionStats struct {
	Infeasible        bool
	ViolatingBlocks   []int
	KM1               int64
}
