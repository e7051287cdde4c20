// File: topord.go
// Role: TopologicalOrdering, InvertedTopologicalOrdering, CheckAcyclic,
//       TopLevels and ReverseTopLevels, a Kahn-style rank-decrement
//       sweep generalized from a plain-graph topological sort to a
//       directed hypergraph's head/tail pin structure.
package topord

import (
	"math/rand"

	"github.com/katalvlaran/dhgp/dhypergraph"
)

// TopologicalOrdering returns the live nodes of h ordered so that every
// tail pin of every live hyperedge precedes every head pin of that same
// edge. If randomize is false the sweep is deterministic (LIFO pick among
// ready nodes); if true, rng picks uniformly among the ready set at each
// step, producing one of possibly many valid orderings. rng is ignored
// when randomize is false and may be nil in that case.
//
// A node's rank is the number of not-yet-satisfied tail-dependencies
// across its incident head-edges: rank[v] = Σ over e in headEdges(v) of
// |tails(e)|. v is ready once rank[v] reaches zero. Emitting a node u
// decrements rank[v] for every v that shares a hyperedge with u where u
// is a tail and v is a head.
//
// If h contains a cycle among its live nodes, the returned slice is
// shorter than h.CurrentNumNodes() — the unready remainder is the
// witness of the cycle. Callers that need a yes/no answer should use
// CheckAcyclic instead of comparing lengths themselves.
//
// Steps:
//  1. Compute rank[v] for every live v.
//  2. Seed the ready pool with every v whose rank is already zero.
//  3. Repeatedly pick a ready node (LIFO or random), emit it, and
//     decrement the rank of nodes reachable via its tail-edges.
//
// Complexity: O(N + Σ|heads(e)|+|tails(e)|).
func TopologicalOrdering(h *dhypergraph.Hypergraph, randomize bool, rng *rand.Rand) []dhypergraph.NodeID {
	live := h.LiveNodes()
	rank := make(map[dhypergraph.NodeID]int, len(live))
	for _, v := range live {
		heads, _ := h.IncidentHeadEdges(v)
		sum := 0
		for _, e := range heads {
			tails, _ := h.EdgeTails(e)
			sum += len(tails)
		}
		rank[v] = sum
	}

	pool := make([]dhypergraph.NodeID, 0, len(live))
	for _, v := range live {
		if rank[v] == 0 {
			pool = append(pool, v)
		}
	}

	order := make([]dhypergraph.NodeID, 0, len(live))
	for len(pool) > 0 {
		var idx int
		if randomize && rng != nil {
			idx = rng.Intn(len(pool))
		} else {
			idx = len(pool) - 1
		}
		u := pool[idx]
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		order = append(order, u)

		tailEdges, _ := h.IncidentTailEdges(u)
		for _, e := range tailEdges {
			heads, _ := h.EdgeHeads(e)
			for _, v := range heads {
				rank[v]--
				if rank[v] == 0 {
					pool = append(pool, v)
				}
			}
		}
	}

	return order
}

// InvertedTopologicalOrdering returns pos such that pos[v] is v's index in
// order, or -1 if v does not appear in order (dead, or excluded by a
// cycle). pos is sized to h.InitialNumNodes() so it can be indexed
// directly by any NodeID ever issued.
// Complexity: O(N).
func InvertedTopologicalOrdering(h *dhypergraph.Hypergraph, order []dhypergraph.NodeID) []int {
	pos := make([]int, h.InitialNumNodes())
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range order {
		pos[v] = i
	}

	return pos
}

// CheckAcyclic reports whether the live subgraph of h is acyclic: every
// live node appears in its topological ordering.
// Complexity: O(N + Σ|heads(e)|+|tails(e)|).
func CheckAcyclic(h *dhypergraph.Hypergraph) bool {
	order := TopologicalOrdering(h, false, nil)

	return len(order) == h.CurrentNumNodes()
}

// TopLevels computes, for each node in order (assumed a valid topological
// ordering of h's live nodes), the length of the longest tail-to-head
// path ending at that node: level[u] = 0 for every source, and
// level[v] = max(level[v], level[u]+1) for every v reachable from u via
// one hyperedge (u a tail pin, v a head pin of that edge). Nodes not
// present in order are omitted from the result.
// Complexity: O(N + Σ|heads(e)|+|tails(e)|).
func TopLevels(h *dhypergraph.Hypergraph, order []dhypergraph.NodeID) map[dhypergraph.NodeID]int {
	level := make(map[dhypergraph.NodeID]int, len(order))
	for _, u := range order {
		level[u] = 0
	}
	for _, u := range order {
		tailEdges, _ := h.IncidentTailEdges(u)
		for _, e := range tailEdges {
			heads, _ := h.EdgeHeads(e)
			for _, v := range heads {
				if cand := level[u] + 1; cand > level[v] {
					level[v] = cand
				}
			}
		}
	}

	return level
}

// ReverseTopLevels computes the head-to-tail longest-path levels and
// flips them against the deepest level found (maxLevel - level), so that
// sinks of the tail-to-head direction (nodes that are never a tail pin)
// get the largest reverse level, maxLevel, and the nodes deepest in the
// head-to-tail direction get 0. order must be a valid topological
// ordering of h's live nodes (tails before heads); the sweep runs it back
// to front so every successor of u is processed before u passes its
// level on to the tails of its head-edges.
// Complexity: O(N + Σ|heads(e)|+|tails(e)|).
func ReverseTopLevels(h *dhypergraph.Hypergraph, order []dhypergraph.NodeID) map[dhypergraph.NodeID]int {
	raw := make(map[dhypergraph.NodeID]int, len(order))
	for _, u := range order {
		raw[u] = 0
	}
	maxLevel := 0
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		headEdges, _ := h.IncidentHeadEdges(u)
		for _, e := range headEdges {
			tails, _ := h.EdgeTails(e)
			for _, w := range tails {
				if cand := raw[u] + 1; cand > raw[w] {
					raw[w] = cand
				}
			}
		}
		if raw[u] > maxLevel {
			maxLevel = raw[u]
		}
	}

	out := make(map[dhypergraph.NodeID]int, len(order))
	for v, lvl := range raw {
		out[v] = maxLevel - lvl
	}

	return out
}
