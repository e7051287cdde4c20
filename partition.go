// File: partition.go
// Role: PartitionState — block assignment and per-block
// weight bookkeeping. Satisfies quotient.Partition so a PartitionState
// can back a quotient.Graph directly.
package dhgp

import (
	"github.com/katalvlaran/dhgp/dhypergraph"
)

// Unassigned is the sentinel block id for a node with no block yet.
const Unassigned = -1

// PartitionState assigns each live node of h a block in [0,k) or
// Unassigned, and tracks the running weight of each block.
type PartitionState struct {
	h           *dhypergraph.Hypergraph
	k           int
	block       []int // indexed by NodeID
	blockWeight []int64
}

// NewPartitionState builds a PartitionState over h with k blocks, every
// live node starting Unassigned.
func NewPartitionState(h *dhypergraph.Hypergraph, k int) *PartitionState {
	n := h.InitialNumNodes()
	block := make([]int, n)
	for i := range block {
		block[i] = Unassigned
	}

	return &PartitionState{
		h:           h,
		k:           k,
		block:       block,
		blockWeight: make([]int64, k),
	}
}

// BlockOf returns u's current block, or Unassigned.
func (p *PartitionState) BlockOf(u dhypergraph.NodeID) int {
	return p.block[u]
}

// K returns the number of blocks.
func (p *PartitionState) K() int {
	return p.k
}

// BlockWeight returns the running weight sum of nodes assigned to block.
func (p *PartitionState) BlockWeight(block int) int64 {
	return p.blockWeight[block]
}

// Assign moves u to block, updating block-weight bookkeeping. block must
// be in [0,k); violating that is a precondition violation, not a
// refusal, since no caller should ever construct an out-of-range block
// id from legitimate partitioning logic.
func (p *PartitionState) Assign(u dhypergraph.NodeID, block int) {
	if block < 0 || block >= p.k {
		violatePrecondition("dhgp: block %d out of range [0,%d)", block, p.k)
	}
	w, err := p.h.NodeWeight(u)
	if err != nil {
		violatePrecondition("dhgp: %v", err)
	}
	if old := p.block[u]; old != Unassigned {
		p.blockWeight[old] -= w
	}
	p.block[u] = block
	p.blockWeight[block] += w
}

// Unassign reverts u to Unassigned, undoing its weight contribution.
func (p *PartitionState) Unassign(u dhypergraph.NodeID) {
	old := p.block[u]
	if old == Unassigned {
		return
	}
	w, _ := p.h.NodeWeight(u)
	p.blockWeight[old] -= w
	p.block[u] = Unassigned
}

// UnassignedNodes returns every live node still at Unassigned.
func (p *PartitionState) UnassignedNodes() []dhypergraph.NodeID {
	var out []dhypergraph.NodeID
	for _, u := range p.h.LiveNodes() {
		if p.block[u] == Unassigned {
			out = append(out, u)
		}
	}

	return out
}

// Snapshot returns a defensive copy of the per-node block assignment,
// indexed by NodeID. Used by initpart.UndirectedFixup to save and revert
// between fixup candidates.
func (p *PartitionState) Snapshot() []int {
	return append([]int(nil), p.block...)
}

// Restore replaces the block assignment and recomputes blockWeight from
// scratch from the snapshot. snap must have been produced by Snapshot on
// this same PartitionState.
func (p *PartitionState) Restore(snap []int) {
	p.block = append([]int(nil), snap...)
	for i := range p.blockWeight {
		p.blockWeight[i] = 0
	}
	for _, u := range p.h.LiveNodes() {
		b := p.block[u]
		if b == Unassigned {
			continue
		}
		w, _ := p.h.NodeWeight(u)
		p.blockWeight[b] += w
	}
}
