// File: undirectedfixup.go
// Role: the k=2 cycle-breaking fixup pass applied to the
// output of an external undirected partitioner. That partitioner's own
// machinery (min-hash sparsification, community detection, ML-style
// coarsening, pool initial partitioning, 2-way FM, hyperflow-cutter
// refinement) is out of this core's scope; UndirectedFixup assumes part
// already holds *some* 2-block assignment of every live node (possibly
// cyclic between blocks 0 and 1) and only performs the repair.
package initpart

import (
	"github.com/katalvlaran/dhgp"
	"github.com/katalvlaran/dhgp/dhypergraph"
)

// fixupCandidate names one of the four breakQuotientGraphEdge(u,v,direction)
// combinations the fixup evaluates.
type fixupCandidate struct {
	u, v      int
	direction bool // false: predecessors: true: successors
}

var fixupCandidates = []fixupCandidate{
	{u: 0, v: 1, direction: false},
	{u: 0, v: 1, direction: true},
	{u: 1, v: 0, direction: false},
	{u: 1, v: 0, direction: true},
}

// UndirectedFixup evaluates all 4 breakQuotientGraphEdge candidates
// against a snapshot of part, scores each with KM1, and commits the
// minimum-km1 candidate back into part. Balance and further refinement
// are out of scope (delegated to a Refiner); this only repairs
// acyclicity.
//
// Steps:
//  1. Snapshot part (records the block of every node, indexed by NodeID —
//     fixing the historical bug of recording node ids instead).
//  2. For each of the 4 candidates, restore the snapshot, apply
//     breakQuotientGraphEdge, score with KM1.
//  3. Restore the minimum-scoring candidate's resulting assignment.
//
// Complexity: O(4 · (N + Σ|heads(e)|+|tails(e)|)).
func UndirectedFixup(h *dhypergraph.Hypergraph, part *dhgp.PartitionState) (dhgp.PartitionStats, error) {
	if part.K() != 2 {
		return dhgp.PartitionStats{}, ErrFixupRequiresTwoBlocks
	}

	snapshot := part.Snapshot()
	var bestSnap []int
	var bestKM1 int64

	for _, c := range fixupCandidates {
		part.Restore(snapshot)
		breakQuotientGraphEdge(h, part, c.u, c.v, c.direction)
		km1 := dhgp.KM1(h, part)
		if bestSnap == nil || km1 < bestKM1 {
			bestKM1 = km1
			bestSnap = part.Snapshot()
		}
	}

	part.Restore(bestSnap)

	return dhgp.PartitionStats{KM1: bestKM1}, nil
}

// breakQuotientGraphEdge mutates part in place.
//
// direction=false: seeds are the nodes currently in block v; from each,
// walk backward (tail pins of the node's incident head-edges) and move
// every predecessor still in u into v, transitively.
//
// direction=true: seeds are the nodes currently in block u; from each,
// walk forward (head pins of the node's incident tail-edges) and move
// every successor still in u into v, transitively.
func breakQuotientGraphEdge(h *dhypergraph.Hypergraph, part *dhgp.PartitionState, u, v int, direction bool) {
	var seeds []dhypergraph.NodeID
	seedBlock := v
	if direction {
		seedBlock = u
	}
	for _, n := range h.LiveNodes() {
		if part.BlockOf(n) == seedBlock {
			seeds = append(seeds, n)
		}
	}

	visited := make(map[dhypergraph.NodeID]bool, len(seeds))
	queue := append([]dhypergraph.NodeID(nil), seeds...)
	for _, s := range seeds {
		visited[s] = true
	}

	for len(queue) > 0 {
		x := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		var neighbors []dhypergraph.NodeID
		if !direction {
			headEdges, _ := h.IncidentHeadEdges(x)
			for _, e := range headEdges {
				tails, _ := h.EdgeTails(e)
				neighbors = append(neighbors, tails...)
			}
		} else {
			tailEdges, _ := h.IncidentTailEdges(x)
			for _, e := range tailEdges {
				heads, _ := h.EdgeHeads(e)
				neighbors = append(neighbors, heads...)
			}
		}

		for _, y := range neighbors {
			if visited[y] {
				continue
			}
			visited[y] = true
			if part.BlockOf(y) == u {
				part.Assign(y, v)
				queue = append(queue, y)
			}
		}
	}
}
