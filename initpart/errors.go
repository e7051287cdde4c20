package initpart

import "errors"

// ErrCyclicHypergraph is returned by TopoSweep when h's live subgraph is
// not acyclic: either the input was cyclic, or a Contract of two nodes
// joined by a directed path closed a cycle.
var ErrCyclicHypergraph = errors.New("initpart: hypergraph is cyclic, no topological sweep exists")

// ErrFixupRequiresTwoBlocks is returned by UndirectedFixup when part.K()
// is not exactly 2.
var ErrFixupRequiresTwoBlocks = errors.New("initpart: undirected fixup only applies to a 2-block partition")
