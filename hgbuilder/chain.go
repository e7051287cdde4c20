package hgbuilder

import "github.com/katalvlaran/dhgp/dhypergraph"

// Chain builds a simple n-node path hypergraph: one hyperedge per
// consecutive pair, head=i+1, tail=i, for i in [0,n-1). Acyclic by
// construction; useful as the smallest nontrivial fixture for the
// topological and cycle-detection primitives.
//
// Complexity: O(n).
func Chain(n int, opts ...Option) (*dhypergraph.Hypergraph, error) {
	cfg := newBuilderConfig(opts...)

	heads := make([][]dhypergraph.NodeID, 0, n-1)
	tails := make([][]dhypergraph.NodeID, 0, n-1)
	for i := 0; i < n-1; i++ {
		heads = append(heads, []dhypergraph.NodeID{dhypergraph.NodeID(i + 1)})
		tails = append(tails, []dhypergraph.NodeID{dhypergraph.NodeID(i)})
	}

	nodeWeights := make([]int64, n)
	for i := range nodeWeights {
		nodeWeights[i] = cfg.nodeWeightFn(i)
	}
	edgeWeights := make([]int64, len(heads))
	for i := range edgeWeights {
		edgeWeights[i] = cfg.edgeWeightFn(i)
	}

	return dhypergraph.NewHypergraph(n, heads, tails, nodeWeights, edgeWeights)
}
