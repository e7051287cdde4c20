// File: interfaces.go
// Role: the three external-framework seams this core exposes to a
//       surrounding multilevel partitioning framework.
package dhgp

import (
	"github.com/katalvlaran/dhgp/dhypergraph"
)

// Move describes a single node's block reassignment, used by the
// Refiner interface.
type Move struct {
	Node dhypergraph.NodeID
	From int
	To   int
}

// Coarsener collapses a hypergraph's live node count down to a limit via
// repeated Contract calls, then reverses them one batch at a time while
// giving a Refiner the chance to improve the partition at each step.
type Coarsener interface {
	// Coarsen contracts node pairs until CurrentNumNodes() <= limit.
	Coarsen(limit int) error
	// Uncoarsen reverses every recorded contraction, most recent first,
	// calling refiner.Refine between each unbatch.
	Uncoarsen(refiner Refiner) error
	// PolicyString is a stable identifier for logs.
	PolicyString() string
	// Stats returns this run's coarsening statistics.
	Stats() CoarsenStats
}

// InitialPartitioner assigns a block to every live node of a hypergraph
// such that the resulting quotient graph is acyclic and every block's
// weight is within its configured upper bound.
type InitialPartitioner interface {
	Partition() (*PartitionState, PartitionStats, error)
}

// Refiner is the local-search seam: the core never implements FM itself;
// this interface is the drop-in point an external refiner satisfies.
type Refiner interface {
	// Initialize prepares internal gain structures; maxGain bounds them.
	Initialize(maxGain int64)
	// Refine attempts to improve the partition restricted to nodes,
	// honoring maxAllowedWeights per block. uncontractionChanges carries
	// whatever the Coarsener's last unbatch affected; the refiner is
	// free to interpret it however its own change-tracking needs.
	// Reports whether it found an improving move sequence.
	Refine(nodes []dhypergraph.NodeID, maxAllowedWeights []int64, uncontractionChanges interface{}, metrics *PartitionStats) bool
	// PerformMovesAndUpdateCache applies moves and appends any nodes
	// they newly make eligible for refinement to *refinementNodes.
	PerformMovesAndUpdateCache(moves []Move, refinementNodes *[]dhypergraph.NodeID, changes interface{})
	// Rollback undoes the refiner's last accepted move sequence, in
	// reverse order, and returns it.
	Rollback() []Move
}
