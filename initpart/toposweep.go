// File: toposweep.go
// Role: the topological-sweep initial partitioner.
package initpart

import (
	"math/rand"

	"github.com/katalvlaran/dhgp"
	"github.com/katalvlaran/dhgp/dhypergraph"
	"github.com/katalvlaran/dhgp/topord"
)

// TopoSweep computes a randomized topological ordering of h and walks it
// left to right, assigning nodes to block p starting at 0 and advancing
// p whenever the running block weight would exceed
// cfg.PerfectBalancePartitionWeight[p]. The resulting partition is
// acyclic by construction: a topological sweep only ever assigns a later
// node to the same or a later block than an earlier one, so no quotient
// edge ever points from a later block to an earlier one.
//
// p never advances past k-1: once the last block is reached, every
// remaining node is assigned to it, so no live node stays Unassigned. If
// any block's weight then exceeds cfg.UpperAllowedPartitionWeight, the
// returned PartitionStats flags Infeasible and lists it in
// ViolatingBlocks; TopoSweep itself never errors for this reason —
// infeasibility is surfaced via the stats struct, not an error.
//
// Complexity: O(N + Σ|heads(e)|+|tails(e)|) for the ordering, O(N) for
// the sweep, O(Σ|heads(e)|+|tails(e)|) for the closing KM1 computation
// (spec's initializeNumCutEdges call point).
func TopoSweep(h *dhypergraph.Hypergraph, cfg dhgp.InitialPartitioningConfig, rng *rand.Rand) (*dhgp.PartitionState, dhgp.PartitionStats, error) {
	order := topord.TopologicalOrdering(h, true, rng)
	if len(order) != h.CurrentNumNodes() {
		return nil, dhgp.PartitionStats{}, ErrCyclicHypergraph
	}

	part := dhgp.NewPartitionState(h, cfg.K)
	p := 0
	infeasible := false
	for _, u := range order {
		w, _ := h.NodeWeight(u)
		if p < cfg.K && p+1 < cfg.K && part.BlockWeight(p)+w > cfg.PerfectBalancePartitionWeight[p] {
			p++
		}
		if p >= cfg.K {
			infeasible = true

			break
		}
		part.Assign(u, p)
	}

	stats := dhgp.PartitionStats{Infeasible: infeasible}
	for b := 0; b < cfg.K; b++ {
		if part.BlockWeight(b) > cfg.UpperAllowedPartitionWeight[b] {
			stats.Infeasible = true
			stats.ViolatingBlocks = append(stats.ViolatingBlocks, b)
		}
	}
	stats.KM1 = dhgp.KM1(h, part)

	return part, stats, nil
}
