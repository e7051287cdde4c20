// File: contract.go
// Role: Contract(u,v) merges v into u; Uncontract() reverses the most
//       recent contraction exactly, pin for pin.
//
// Contract cases per incident edge e of v:
//
//	case 1 (duplicate pin): u is already a pin of e, in either role. v's
//	  pin is dropped from e; the pin-count for v's role decreases by one.
//	  (A pin of u in the opposite role to v is intentionally treated the
//	  same as a same-role duplicate: rewriting v's slot to u would make u
//	  both a head and a tail pin of e, which the model forbids.)
//	case 2 (rewrite): u is not a pin of e in any role. v's slot in e is
//	  rewritten to u, preserving v's head/tail role.
//
// Uncontract replays the recorded events in reverse to restore the exact
// pre-contraction pin layout (not merely an equivalent one): case 1
// reinserts v's dropped pin at its original index; case 2 rewrites u's
// slot back to v and removes the incidence Contract had added to u.
package dhypergraph

// pinEvent records what Contract did to a single hyperedge incident to v.
type pinEvent struct {
	edge     EdgeID
	head     bool // true: v was a head pin of edge; false: tail pin
	dupCase  bool // true: case 1 (duplicate dropped); false: case 2 (rewritten)
	pinIndex int  // index within edge's heads/tails slice
}

// ContractionMemento records everything Uncontract needs to exactly
// reverse one Contract(u, v) call.
type ContractionMemento struct {
	u, v       NodeID
	vWeight    int64
	vHeadEdges []EdgeID
	vTailEdges []EdgeID
	events     []pinEvent
}

// Contract merges v into u: v is retired, u absorbs v's weight, and every
// hyperedge incident to v is rewritten or deduplicated per the case
// analysis in the file doc comment above. The contraction is pushed onto
// an internal stack; Uncontract() reverses the most recent entry.
//
// Steps:
//  1. Validate u != v and both are live.
//  2. For each edge in v's incident-head list: case 1 or case 2 (heads).
//  3. For each edge in v's incident-tail list: case 1 or case 2 (tails).
//  4. Retire v, fold its weight into u, decrement currentNumNodes.
//  5. Push the memento.
//
// Complexity: O(deg(v)).
func (h *Hypergraph) Contract(u, v NodeID) error {
	h.muNode.Lock()
	defer h.muNode.Unlock()
	h.muEdge.Lock()
	defer h.muEdge.Unlock()

	if u == v {
		return ErrSelfContraction
	}
	if int(u) < 0 || int(u) >= len(h.nodes) || int(v) < 0 || int(v) >= len(h.nodes) {
		return ErrNodeNotFound
	}
	if !h.nodes[u].alive || !h.nodes[v].alive {
		return ErrNodeDead
	}

	m := &ContractionMemento{
		u:          u,
		v:          v,
		vWeight:    h.nodes[v].weight,
		vHeadEdges: append([]EdgeID(nil), h.nodes[v].headEdges...),
		vTailEdges: append([]EdgeID(nil), h.nodes[v].tailEdges...),
	}

	for _, e := range m.vHeadEdges {
		m.events = append(m.events, h.contractOneIncidence(u, v, e, true))
	}
	for _, e := range m.vTailEdges {
		m.events = append(m.events, h.contractOneIncidence(u, v, e, false))
	}

	h.nodes[u].weight += h.nodes[v].weight
	h.nodes[v].alive = false
	h.nodes[v].weight = 0
	h.nodes[v].headEdges = nil
	h.nodes[v].tailEdges = nil
	h.currentNumNodes--

	h.contractionStack = append(h.contractionStack, m)

	return nil
}

// contractOneIncidence applies the case-1/case-2 rule to a single edge
// incident to v in the given role, and returns the event describing what
// it did so Uncontract can reverse it exactly.
func (h *Hypergraph) contractOneIncidence(u, v NodeID, e EdgeID, head bool) pinEvent {
	pins := h.edges[e].heads
	if !head {
		pins = h.edges[e].tails
	}

	// u and v "appeared jointly in edge e" (case 1) if u is a pin of e in
	// EITHER role: rewriting v's slot to u when u already holds the other
	// role would make u both a head and a tail pin of the same edge,
	// violating the head/tail-disjointness invariant (doc.go).
	uAlreadyPin := false
	for _, p := range h.edges[e].heads {
		if p == u {
			uAlreadyPin = true

			break
		}
	}
	if !uAlreadyPin {
		for _, p := range h.edges[e].tails {
			if p == u {
				uAlreadyPin = true

				break
			}
		}
	}

	vIdx := -1
	for i, p := range pins {
		if p == v {
			vIdx = i

			break
		}
	}

	if uAlreadyPin {
		// Case 1: drop v's duplicate pin.
		pins = append(pins[:vIdx:vIdx], pins[vIdx+1:]...)
		if head {
			h.edges[e].heads = pins
		} else {
			h.edges[e].tails = pins
		}

		return pinEvent{edge: e, head: head, dupCase: true, pinIndex: vIdx}
	}

	// Case 2: rewrite v's slot to u, and register u as a new pin owner.
	pins[vIdx] = u
	if head {
		h.nodes[u].headEdges = append(h.nodes[u].headEdges, e)
	} else {
		h.nodes[u].tailEdges = append(h.nodes[u].tailEdges, e)
	}

	return pinEvent{edge: e, head: head, dupCase: false, pinIndex: vIdx}
}

// Uncontract reverses the most recently applied Contract call, restoring
// v's liveness, weight and incident-edge lists, and every hyperedge pin it
// touched, bit-for-bit.
//
// Steps (reverse order of Contract):
//  1. Pop the memento; ErrEmptyContractionStack if none.
//  2. Subtract v's weight back out of u, revive v.
//  3. Replay each pinEvent in reverse: case 1 reinserts v's pin at its
//     recorded index; case 2 rewrites the pin back to v and removes the
//     incidence Contract had added to u.
//  4. Restore v's incident-edge lists from the memento snapshot.
//
// Complexity: O(deg(v)).
func (h *Hypergraph) Uncontract() error {
	h.muNode.Lock()
	defer h.muNode.Unlock()
	h.muEdge.Lock()
	defer h.muEdge.Unlock()

	if len(h.contractionStack) == 0 {
		return ErrEmptyContractionStack
	}
	m := h.contractionStack[len(h.contractionStack)-1]
	h.contractionStack = h.contractionStack[:len(h.contractionStack)-1]

	for i := len(m.events) - 1; i >= 0; i-- {
		ev := m.events[i]
		if ev.dupCase {
			pins := h.edges[ev.edge].heads
			if !ev.head {
				pins = h.edges[ev.edge].tails
			}
			pins = insertEdgeIntoIncidence1(pins, ev.pinIndex, m.v)
			if ev.head {
				h.edges[ev.edge].heads = pins
			} else {
				h.edges[ev.edge].tails = pins
			}
		} else {
			pins := h.edges[ev.edge].heads
			if !ev.head {
				pins = h.edges[ev.edge].tails
			}
			pins[ev.pinIndex] = m.v
			if ev.head {
				h.nodes[m.u].headEdges, _ = removeEdgeFromIncidence(h.nodes[m.u].headEdges, ev.edge)
			} else {
				h.nodes[m.u].tailEdges, _ = removeEdgeFromIncidence(h.nodes[m.u].tailEdges, ev.edge)
			}
		}
	}

	h.nodes[m.u].weight -= m.vWeight
	h.nodes[m.v].alive = true
	h.nodes[m.v].weight = m.vWeight
	h.nodes[m.v].headEdges = append([]EdgeID(nil), m.vHeadEdges...)
	h.nodes[m.v].tailEdges = append([]EdgeID(nil), m.vTailEdges...)
	h.currentNumNodes++

	return nil
}

// insertEdgeIntoIncidence1 is a NodeID-pin analogue of
// insertEdgeIntoIncidence, used to reinsert a dropped duplicate pin at its
// recorded index during Uncontract.
func insertEdgeIntoIncidence1(pins []NodeID, idx int, v NodeID) []NodeID {
	if idx < 0 || idx > len(pins) {
		idx = len(pins)
	}
	out := make([]NodeID, 0, len(pins)+1)
	out = append(out, pins[:idx]...)
	out = append(out, v)
	out = append(out, pins[idx:]...)

	return out
}
