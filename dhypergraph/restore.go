// File: restore.go
// Role: RemoveHyperedge/RestoreHyperedge — LIFO round-trip removal of a
//       live hyperedge, used by coarsening to drop hyperedges that become
//       single-pin or duplicate after a contraction.
package dhypergraph

// EdgeRemovalMemento records which edge RemoveHyperedge retired, plus the
// exact incidence-list index it was removed from at each touched node, so
// RestoreHyperedge can reinsert it at that same position instead of
// appending it back at the end.
type EdgeRemovalMemento struct {
	edge    EdgeID
	heads   []NodeID
	tails   []NodeID
	headIdx []int // headIdx[i]: index heads[i]'s headEdges list lost edge at
	tailIdx []int // tailIdx[i]: index tails[i]'s tailEdges list lost edge at
}

// RemoveHyperedge retires a live hyperedge: it is marked dead and removed
// from every incident node's head/tail list, but its pin slices are left
// untouched so RestoreHyperedge can relink them without replaying pin
// rewrites.
//
// Steps:
//  1. Validate e is in range and alive.
//  2. Drop e from every head pin's headEdges and every tail pin's
//     tailEdges, recording the index each drop happened at.
//  3. Mark e dead; push a removal memento.
//
// Complexity: O(|heads(e)| + |tails(e)|).
func (h *Hypergraph) RemoveHyperedge(e EdgeID) error {
	h.muNode.Lock()
	defer h.muNode.Unlock()
	h.muEdge.Lock()
	defer h.muEdge.Unlock()

	if int(e) < 0 || int(e) >= len(h.edges) {
		return ErrEdgeNotFound
	}
	if !h.edges[e].alive {
		return ErrEdgeDead
	}

	heads := h.edges[e].heads
	tails := h.edges[e].tails
	headIdx := make([]int, len(heads))
	tailIdx := make([]int, len(tails))

	for i, u := range heads {
		h.nodes[u].headEdges, headIdx[i] = removeEdgeFromIncidence(h.nodes[u].headEdges, e)
	}
	for i, u := range tails {
		h.nodes[u].tailEdges, tailIdx[i] = removeEdgeFromIncidence(h.nodes[u].tailEdges, e)
	}
	h.edges[e].alive = false

	h.removalStack = append(h.removalStack, &EdgeRemovalMemento{
		edge:    e,
		heads:   append([]NodeID(nil), heads...),
		tails:   append([]NodeID(nil), tails...),
		headIdx: headIdx,
		tailIdx: tailIdx,
	})

	return nil
}

// RestoreHyperedge reverses the most recently applied RemoveHyperedge call,
// reinserting every head/tail incidence it had dropped at its original
// index rather than at the end of the list.
//
// Complexity: O(|heads(e)| + |tails(e)|).
func (h *Hypergraph) RestoreHyperedge() error {
	h.muNode.Lock()
	defer h.muNode.Unlock()
	h.muEdge.Lock()
	defer h.muEdge.Unlock()

	if len(h.removalStack) == 0 {
		return ErrEmptyRemovalStack
	}
	m := h.removalStack[len(h.removalStack)-1]
	h.removalStack = h.removalStack[:len(h.removalStack)-1]

	for i, u := range m.heads {
		h.nodes[u].headEdges = insertEdgeIntoIncidence(h.nodes[u].headEdges, m.headIdx[i], m.edge)
	}
	for i, u := range m.tails {
		h.nodes[u].tailEdges = insertEdgeIntoIncidence(h.nodes[u].tailEdges, m.tailIdx[i], m.edge)
	}
	h.edges[m.edge].alive = true

	return nil
}
