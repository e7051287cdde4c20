// File: coarsener.go
// Role: a default Coarsener backed directly by dhypergraph.Contract and
// Uncontract. Node-pair selection is deliberately the
// simplest possible policy — ascending-id pairing — since rating
// policies (ml_style, community-aware, …) are the surrounding
// framework's concern (config.go's CoarseningAlgorithm is passed through
// unread); this type exists so the Coarsener seam has one working,
// fully-tested implementation.
package dhgp

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/dhgp/dhypergraph"
)

// contractionLogEntry pairs a traceable id with the contraction it
// tags, so uncoarsen can log/replay a specific step.
type contractionLogEntry struct {
	id       uuid.UUID
	survivor dhypergraph.NodeID
	retired  dhypergraph.NodeID
}

// AscendingPairCoarsener contracts the two lowest-id live nodes
// repeatedly until the node count reaches a limit.
type AscendingPairCoarsener struct {
	h     *dhypergraph.Hypergraph
	log   []contractionLogEntry
	stats CoarsenStats
}

// NewAscendingPairCoarsener builds a Coarsener over h.
func NewAscendingPairCoarsener(h *dhypergraph.Hypergraph) *AscendingPairCoarsener {
	return &AscendingPairCoarsener{h: h, stats: CoarsenStats{StartNumNodes: h.CurrentNumNodes()}}
}

// Coarsen contracts ascending-id live-node pairs until
// h.CurrentNumNodes() <= limit, or returns ErrCannotCoarsenFurther if
// fewer than two live nodes remain above that point.
func (c *AscendingPairCoarsener) Coarsen(limit int) error {
	for c.h.CurrentNumNodes() > limit {
		live := c.h.LiveNodes()
		if len(live) < 2 {
			return ErrCannotCoarsenFurther
		}
		survivor, retired := live[0], live[1]
		if err := c.h.Contract(survivor, retired); err != nil {
			return err
		}
		c.log = append(c.log, contractionLogEntry{id: uuid.New(), survivor: survivor, retired: retired})
	}
	c.stats.Contractions = len(c.log)
	c.stats.FinalNumNodes = c.h.CurrentNumNodes()

	return nil
}

// Uncoarsen reverses every logged contraction, most recent first,
// calling refiner.Refine on the pair of nodes the unbatch just
// reintroduced after each step.
func (c *AscendingPairCoarsener) Uncoarsen(refiner Refiner) error {
	if len(c.log) == 0 {
		return ErrEmptyUncoarsenStack
	}
	for len(c.log) > 0 {
		entry := c.log[len(c.log)-1]
		c.log = c.log[:len(c.log)-1]
		if err := c.h.Uncontract(); err != nil {
			return err
		}
		if refiner != nil {
			changed := []dhypergraph.NodeID{entry.survivor, entry.retired}
			refiner.Refine(changed, nil, entry.id, nil)
		}
	}

	return nil
}

// PolicyString identifies this coarsener's selection policy for logs.
func (c *AscendingPairCoarsener) PolicyString() string {
	return "ascending-pair"
}

// Stats returns this run's coarsening statistics.
func (c *AscendingPairCoarsener) Stats() CoarsenStats {
	return c.stats
}
