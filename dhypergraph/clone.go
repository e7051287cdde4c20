// File: clone.go
// Role: Deep-equality snapshotting used by the contraction/removal
//       round-trip property tests.
package dhypergraph

import "reflect"

// snapshot is a deep, comparable copy of the mutable hypergraph state —
// everything Contract/Uncontract and RemoveHyperedge/RestoreHyperedge can
// touch. It deliberately excludes the memento stacks: those record
// *history*, not hypergraph state, so two hypergraphs reached by different
// mutation sequences can still be state-equivalent.
type snapshot struct {
	currentNumNodes int
	nodes           []node
	edges           []hyperedge
}

// Snapshot captures h's current mutable state for later comparison via
// Equal. The result is safe to retain across further mutation of h.
// Complexity: O(N + M + sum of incidence/pin list lengths).
func (h *Hypergraph) Snapshot() interface{} {
	h.muNode.RLock()
	h.muEdge.RLock()
	defer h.muNode.RUnlock()
	defer h.muEdge.RUnlock()

	s := snapshot{
		currentNumNodes: h.currentNumNodes,
		nodes:           make([]node, len(h.nodes)),
		edges:           make([]hyperedge, len(h.edges)),
	}
	for i, n := range h.nodes {
		s.nodes[i] = node{
			weight:    n.weight,
			alive:     n.alive,
			headEdges: append([]EdgeID(nil), n.headEdges...),
			tailEdges: append([]EdgeID(nil), n.tailEdges...),
		}
	}
	for i, e := range h.edges {
		s.edges[i] = hyperedge{
			heads:  append([]NodeID(nil), e.heads...),
			tails:  append([]NodeID(nil), e.tails...),
			weight: e.weight,
			alive:  e.alive,
		}
	}

	return s
}

// EqualSnapshot reports whether s (as produced by Snapshot) describes
// state identical to h's current state.
// Complexity: O(N + M + sum of incidence/pin list lengths).
func (h *Hypergraph) EqualSnapshot(s interface{}) bool {
	other, ok := s.(snapshot)
	if !ok {
		return false
	}

	// Compare against a fresh snapshot rather than the live slices: both
	// copies store an empty list as nil, so an empty-but-non-nil list left
	// behind by Uncontract or RemoveHyperedge compares equal to it.
	return reflect.DeepEqual(other, h.Snapshot())
}
