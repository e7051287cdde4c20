// File: graph.go
// Role: adj/hnConn maintenance, cached topological order, and the
//       before-move screening operations.
package quotient

import (
	"github.com/katalvlaran/dhgp/cycledetect"
	"github.com/katalvlaran/dhgp/dhypergraph"
)

// Initialize rebuilds adj and hnConn from scratch by scanning every live
// hyperedge, flushes blockedMoves, resets the cycle detector to mirror
// adj's off-diagonal structure, and marks the cached topological order
// dirty. It tolerates a cyclic adj (see ErrQuotientGraphCyclic) — callers
// that need a DAG must check TopologicalOrdering's error themselves.
//
// Complexity: O(k² + Σ|heads(e)|+|tails(e)|).
func (g *Graph) Initialize() {
	g.adj = make([][]int, g.k)
	for i := range g.adj {
		g.adj[i] = make([]int, g.k)
	}
	g.hnConn = make(map[dhypergraph.NodeID]map[int]int)
	g.blockedMoves.Purge()
	g.det.Reset()
	g.dirty = true

	for _, e := range g.h.LiveHyperedges() {
		heads, _ := g.h.EdgeHeads(e)
		tails, _ := g.h.EdgeTails(e)

		blocks := make(map[int]bool, len(heads)+len(tails))
		tailBlocks := make(map[int]bool, len(tails))
		headBlocks := make(map[int]bool, len(heads))
		for _, w := range tails {
			b := g.part.BlockOf(w)
			tailBlocks[b] = true
			blocks[b] = true
		}
		for _, u := range heads {
			b := g.part.BlockOf(u)
			headBlocks[b] = true
			blocks[b] = true
		}

		if len(blocks) == 1 {
			var only int
			for b := range blocks {
				only = b
			}
			g.adj[only][only]++
		} else {
			for a := range tailBlocks {
				for b := range headBlocks {
					if a != b {
						g.adj[a][b]++
					}
				}
			}
		}

		for _, w := range tails {
			a := g.part.BlockOf(w)
			for b := range headBlocks {
				if b != a {
					g.addHNConn(w, b)
				}
			}
		}
		for _, u := range heads {
			b := g.part.BlockOf(u)
			for a := range tailBlocks {
				if a != b {
					g.addHNConn(u, a)
				}
			}
		}
	}

	for u := 0; u < g.k; u++ {
		for v := 0; v < g.k; v++ {
			if u != v && g.adj[u][v] > 0 {
				g.det.Connect(u, v)
			}
		}
	}
}

func (g *Graph) addHNConn(hn dhypergraph.NodeID, p int) {
	m, ok := g.hnConn[hn]
	if !ok {
		m = make(map[int]int)
		g.hnConn[hn] = m
	}
	m[p]++
}

// TopologicalOrdering returns a cached topological order of [0,k) (Kahn
// over adj, self-loops and u==v ignored), recomputing it first if dirty.
// Returns ErrQuotientGraphCyclic if adj is not currently a DAG.
// Complexity: amortized O(1) on cache hit, O(k²) on recompute.
func (g *Graph) TopologicalOrdering() ([]int, error) {
	if g.dirty {
		if err := g.recomputeTopo(); err != nil {
			return nil, err
		}
	}

	return append([]int(nil), g.topo...), nil
}

// InvertedTopologicalOrdering returns pos[block] = its index in the
// cached topological order.
func (g *Graph) InvertedTopologicalOrdering() ([]int, error) {
	if g.dirty {
		if err := g.recomputeTopo(); err != nil {
			return nil, err
		}
	}

	return append([]int(nil), g.invTopo...), nil
}

func (g *Graph) recomputeTopo() error {
	indeg := make([]int, g.k)
	for u := 0; u < g.k; u++ {
		for v := 0; v < g.k; v++ {
			if u != v && g.adj[u][v] > 0 {
				indeg[v]++
			}
		}
	}
	queue := make([]int, 0, g.k)
	for b := 0; b < g.k; b++ {
		if indeg[b] == 0 {
			queue = append(queue, b)
		}
	}
	order := make([]int, 0, g.k)
	for len(queue) > 0 {
		u := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		order = append(order, u)
		for v := 0; v < g.k; v++ {
			if u != v && g.adj[u][v] > 0 {
				indeg[v]--
				if indeg[v] == 0 {
					queue = append(queue, v)
				}
			}
		}
	}
	if len(order) != g.k {
		return ErrQuotientGraphCyclic
	}
	pos := make([]int, g.k)
	for i, b := range order {
		pos[b] = i
	}
	g.topo, g.invTopo, g.dirty = order, pos, false

	return nil
}

// PendingRemovals finds every quotient edge (u,from) that would lose its
// last witness if hn left block from, where from is hn's current block.
// Scanning the tails of hn's incident head-edges finds every block u for
// which hn is a head-side witness of a u->from relation (hnConn is not
// read); adj[u][from] == 1 bounds the search to relations with a single
// contributing hyperedge; the final scan over that hyperedge's other head
// pins confirms hn is genuinely the sole pin of from witnessing it. Exposed for callers (initial partitioners, metrics) that
// need to know a move's quotient-level side effects before committing.
func (g *Graph) PendingRemovals(hn dhypergraph.NodeID) []Edge {
	from := g.part.BlockOf(hn)
	var removals []Edge
	headEdges, _ := g.h.IncidentHeadEdges(hn)
	seenBlocks := make(map[int]bool)
	for _, e := range headEdges {
		tails, _ := g.h.EdgeTails(e)
		for _, w := range tails {
			u := g.part.BlockOf(w)
			if u == from || seenBlocks[u] {
				continue
			}
			seenBlocks[u] = true
			if g.adj[u][from] != 1 {
				continue
			}
			heads, _ := g.h.EdgeHeads(e)
			sole := true
			for _, x := range heads {
				if x != hn && g.part.BlockOf(x) == from {
					sole = false

					break
				}
			}
			if sole {
				removals = append(removals, Edge{u, from})
			}
		}
	}

	return removals
}

// PendingInsertions finds every new quotient edge that moving hn to to
// could introduce: to->b via hn's tail-edges, or a->to via hn's
// head-edges, restricted to block pairs with no existing contribution.
func (g *Graph) PendingInsertions(hn dhypergraph.NodeID, to int) []Edge {
	var insertions []Edge
	seen := make(map[Edge]bool)

	tailEdges, _ := g.h.IncidentTailEdges(hn)
	for _, e := range tailEdges {
		heads, _ := g.h.EdgeHeads(e)
		for _, u := range heads {
			b := g.part.BlockOf(u)
			if b == to {
				continue
			}
			qe := Edge{to, b}
			if g.adj[to][b] == 0 && !seen[qe] {
				seen[qe] = true
				insertions = append(insertions, qe)
			}
		}
	}

	headEdges, _ := g.h.IncidentHeadEdges(hn)
	for _, e := range headEdges {
		tails, _ := g.h.EdgeTails(e)
		for _, w := range tails {
			a := g.part.BlockOf(w)
			if a == to {
				continue
			}
			qe := Edge{a, to}
			if g.adj[a][to] == 0 && !seen[qe] {
				seen[qe] = true
				insertions = append(insertions, qe)
			}
		}
	}

	return insertions
}

// TestAndUpdateBeforeMovement reports whether moving hn from its current
// block to `to` would keep the quotient graph acyclic, without applying
// the move. A false verdict is memoized in blockedMoves until the next
// structural change (Initialize or PerformMovement). PendingRemovals is
// applied to the trial detector first: a removal can drop the one
// remaining witness of some u->from edge, and leaving that stale edge in
// place can make the detector report a cycle through it that the true
// post-move graph would no longer have. PendingInsertions is then
// screened against that pruned state, and both the removals and whatever
// insertions were applied are unconditionally rolled back, leaving the
// detector exactly as it was found regardless of the verdict.
func (g *Graph) TestAndUpdateBeforeMovement(hn dhypergraph.NodeID, to int) bool {
	from := g.part.BlockOf(hn)
	if from == to {
		return true
	}
	key := blockedKey{hn, to}
	if blocked, ok := g.blockedMoves.Get(key); ok && blocked {
		return false
	}

	removals := g.PendingRemovals(hn)
	for _, rem := range removals {
		g.det.Disconnect(rem.U, rem.V)
	}

	insertions := g.PendingInsertions(hn, to)
	applied := make([]Edge, 0, len(insertions))
	ok := true
	for _, ins := range insertions {
		if g.det.Connect(ins.U, ins.V) {
			applied = append(applied, ins)
		} else {
			ok = false

			break
		}
	}
	for _, ins := range applied {
		g.det.Disconnect(ins.U, ins.V)
	}

	if len(removals) > 0 {
		restore := make([]cycledetect.Edge, len(removals))
		for i, rem := range removals {
			restore[i] = cycledetect.Edge{S: rem.U, T: rem.V}
		}
		g.det.BulkConnect(restore)
	}

	if !ok {
		g.blockedMoves.Add(key, true)
	}

	return ok
}

// PerformMovement applies an already-accepted move of hn: the caller must
// have already updated part so that part.BlockOf(hn) reflects the new
// block before calling this. adj, hnConn, the cycle detector, and
// blockedMoves are all rebuilt from the updated partition rather than
// patched incrementally, so each call rescans every live hyperedge, not
// only those incident to hn; this keeps a single update path.
//
// Complexity: O(k² + Σ|heads(e)|+|tails(e)|), matching Initialize.
func (g *Graph) PerformMovement(hn dhypergraph.NodeID) {
	g.Initialize()
}

// ResetQuotientEdgeCache flushes blockedMoves without otherwise touching
// adj, hnConn, or the cycle detector. QgChanged is its conventional call
// site name; both invalidate the same cache.
func (g *Graph) ResetQuotientEdgeCache() {
	g.blockedMoves.Purge()
}

// QgChanged is an alias for ResetQuotientEdgeCache, named for the call
// site in the before-move analysis: any adj mutation must flush
// blockedMoves since its entries are only valid against the adj snapshot
// they were computed from.
func (g *Graph) QgChanged() {
	g.ResetQuotientEdgeCache()
}

// Adj returns the current contribution count from block u to block v.
func (g *Graph) Adj(u, v int) int {
	return g.adj[u][v]
}

// K returns the number of quotient nodes (blocks).
func (g *Graph) K() int {
	return g.k
}
