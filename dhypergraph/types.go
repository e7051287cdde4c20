// File: types.go
// Role: NodeID/EdgeID types, Hypergraph struct and the NewHypergraph
//       constructor. See doc.go for the invariants this file upholds.
package dhypergraph

import "sync"

// NodeID identifies a node by its position in [0, initialNumNodes).
// NodeIDs are never recycled: Contract retires a NodeID, it does not
// delete it from the universe.
type NodeID int

// EdgeID identifies a hyperedge by its position in [0, initialNumEdges).
// EdgeIDs are never recycled: RemoveHyperedge retires an EdgeID.
type EdgeID int

// node holds the mutable per-node bookkeeping: weight, liveness, and the
// two incidence lists the invariants in doc.go describe.
type node struct {
	weight     int64
	alive      bool
	headEdges  []EdgeID // e such that this node is a head pin of e
	tailEdges  []EdgeID // e such that this node is a tail pin of e
}

// hyperedge holds the mutable per-edge bookkeeping. heads/tails are the
// *current* pin sets; Contract rewrites or drops entries in place so that
// RestoreHyperedge (which relinks incidences and flips liveness without
// touching pins) and Uncontract (a full replay) both see the slice layout
// they expect.
type hyperedge struct {
	heads  []NodeID
	tails  []NodeID
	weight int64
	alive  bool
}

// Hypergraph is the directed-hypergraph ground truth: N nodes, M
// hyperedges, each hyperedge's pins split into heads and tails.
//
// Concurrency: muNode guards the node slice and per-node incidence lists;
// muEdge guards the hyperedge slice and the two memento stacks. Both locks
// are RWMutex so read-only queries (used by cycle detectors and the
// quotient graph, which never mutate the hypergraph themselves) can run
// concurrently with each other, serialized only against the owning
// partitioner's mutations.
type Hypergraph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	initialNumNodes int
	currentNumNodes int

	nodes []node
	edges []hyperedge

	contractionStack []*ContractionMemento
	removalStack      []*EdgeRemovalMemento
}

// NewHypergraph builds a Hypergraph with n nodes (ids [0,n)) and one
// hyperedge per (heads[i], tails[i]) pair, i ranging over the slices,
// which must be the same length. nodeWeights/edgeWeights may be nil, in
// which case every node/edge gets weight 1.
//
// Steps:
//  1. Validate lengths and pin ranges.
//  2. Reject a node listed in both heads[i] and tails[i] of the same edge
//     (ErrPinRoleConflict).
//  3. Build per-node incidence lists from the per-edge pin lists.
//
// Complexity: O(N + sum of pin-list lengths).
func NewHypergraph(n int, heads, tails [][]NodeID, nodeWeights, edgeWeights []int64) (*Hypergraph, error) {
	m := len(heads)
	if len(tails) != m {
		return nil, ErrPinRoleConflict
	}
	h := &Hypergraph{
		initialNumNodes: n,
		currentNumNodes: n,
		nodes:           make([]node, n),
		edges:           make([]hyperedge, m),
	}
	for i := 0; i < n; i++ {
		h.nodes[i].alive = true
		if nodeWeights != nil {
			h.nodes[i].weight = nodeWeights[i]
		} else {
			h.nodes[i].weight = 1
		}
	}

	for e := 0; e < m; e++ {
		seen := make(map[NodeID]bool, len(heads[e])+len(tails[e]))
		for _, u := range heads[e] {
			if u < 0 || int(u) >= n {
				return nil, ErrNodeNotFound
			}
			seen[u] = true
		}
		for _, u := range tails[e] {
			if u < 0 || int(u) >= n {
				return nil, ErrNodeNotFound
			}
			if seen[u] {
				return nil, ErrPinRoleConflict
			}
		}
		h.edges[e] = hyperedge{
			heads: append([]NodeID(nil), heads[e]...),
			tails: append([]NodeID(nil), tails[e]...),
			alive: true,
		}
		if edgeWeights != nil {
			h.edges[e].weight = edgeWeights[e]
		} else {
			h.edges[e].weight = 1
		}
		for _, u := range heads[e] {
			h.nodes[u].headEdges = append(h.nodes[u].headEdges, EdgeID(e))
		}
		for _, u := range tails[e] {
			h.nodes[u].tailEdges = append(h.nodes[u].tailEdges, EdgeID(e))
		}
	}

	return h, nil
}

// InitialNumNodes returns the fixed size of the node universe.
// Complexity: O(1).
func (h *Hypergraph) InitialNumNodes() int {
	h.muNode.RLock()
	defer h.muNode.RUnlock()

	return h.initialNumNodes
}

// CurrentNumNodes returns the number of live nodes.
// Complexity: O(1).
func (h *Hypergraph) CurrentNumNodes() int {
	h.muNode.RLock()
	defer h.muNode.RUnlock()

	return h.currentNumNodes
}

// NumHyperedges returns the fixed size of the hyperedge universe (live or not).
// Complexity: O(1).
func (h *Hypergraph) NumHyperedges() int {
	h.muEdge.RLock()
	defer h.muEdge.RUnlock()

	return len(h.edges)
}
