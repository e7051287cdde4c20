// Package initpart implements two acyclic initial partitioners:
// TopoSweep (a topological-order sweep that is acyclic by
// construction) and UndirectedFixup (a k=2 cycle-breaking pass over the
// output of an external undirected partitioner, which this core does not
// implement — balance, rating, and local search are out of scope).
package initpart
