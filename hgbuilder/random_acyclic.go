package hgbuilder

import "github.com/katalvlaran/dhgp/dhypergraph"

// RandomAcyclic builds an n-node, m-hyperedge hypergraph that is acyclic
// by construction: node ids [0,n) are themselves a topological order, so
// every hyperedge draws its single head from some position h in [1,n)
// and its tails (1 to maxTails of them) from positions strictly before
// h. This mirrors the way builder.RandomSparse in the reference graph
// package threads a single *rand.Rand through every draw for
// reproducibility.
//
// Requires n >= 2 and maxTails >= 1; m may be 0.
//
// Complexity: O(n + m*maxTails).
func RandomAcyclic(n, m, maxTails int, opts ...Option) (*dhypergraph.Hypergraph, error) {
	cfg := newBuilderConfig(opts...)
	rng := cfg.rng

	heads := make([][]dhypergraph.NodeID, m)
	tails := make([][]dhypergraph.NodeID, m)
	for e := 0; e < m; e++ {
		h := 1 + rng.Intn(n-1)
		heads[e] = []dhypergraph.NodeID{dhypergraph.NodeID(h)}

		k := 1 + rng.Intn(maxTails)
		if k > h {
			k = h
		}
		seen := make(map[int]bool, k)
		tailSet := make([]dhypergraph.NodeID, 0, k)
		for len(tailSet) < k {
			t := rng.Intn(h)
			if seen[t] {
				continue
			}
			seen[t] = true
			tailSet = append(tailSet, dhypergraph.NodeID(t))
		}
		tails[e] = tailSet
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
