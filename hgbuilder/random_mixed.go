package hgbuilder

import "github.com/katalvlaran/dhgp/dhypergraph"

// RandomMixed builds an n-node, m-hyperedge hypergraph with heads and
// tails drawn independently and uniformly from [0,n), with no acyclicity
// guarantee — unlike RandomAcyclic, this generator is meant to exercise
// cycledetect's refusal path and the cyclic branches of topord/quotient
// (a hypergraph built wholesale like this can be cyclic from the start).
//
// Requires n >= 2, maxHeads >= 1, maxTails >= 1 and
// maxHeads+maxTails <= n; with more pins per edge than n distinct nodes,
// the tail draw never finishes.
//
// Complexity: O(n + m*(maxHeads+maxTails)).
func RandomMixed(n, m, maxHeads, maxTails int, opts ...Option) (*dhypergraph.Hypergraph, error) {
	cfg := newBuilderConfig(opts...)
	rng := cfg.rng

	heads := make([][]dhypergraph.NodeID, m)
	tails := make([][]dhypergraph.NodeID, m)
	for e := 0; e < m; e++ {
		hCount := 1 + rng.Intn(maxHeads)
		headSet := make(map[int]bool, hCount)
		headList := make([]dhypergraph.NodeID, 0, hCount)
		for len(headList) < hCount {
			u := rng.Intn(n)
			if headSet[u] {
				continue
			}
			headSet[u] = true
			headList = append(headList, dhypergraph.NodeID(u))
		}

		tCount := 1 + rng.Intn(maxTails)
		tailList := make([]dhypergraph.NodeID, 0, tCount)
		for len(tailList) < tCount {
			u := rng.Intn(n)
			if headSet[u] {
				continue // a node cannot be both head and tail pin of the same edge
			}
			duplicate := false
			for _, seen := range tailList {
				if seen == dhypergraph.NodeID(u) {
					duplicate = true

					break
				}
			}
			if duplicate {
				continue
			}
			tailList = append(tailList, dhypergraph.NodeID(u))
		}

		heads[e] = headList
		tails[e] = tailList
	}

	nodeWeights := make([]int64, n)
	for i := range nodeWeights {
		nodeWeights[i] = cfg.nodeWeightFn(i)
	}
	edgeWeights := make([]int64, m)
	for i := range edgeWeights {
		edgeWeights[i] = cfg.edgeWeightFn(i)
	}

	return dhypergraph.NewHypergraph(n, heads, tails, nodeWeights, edgeWeights)
}
