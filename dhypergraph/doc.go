// Package dhypergraph implements the directed-hypergraph model: a fixed
// universe of nodes connected by hyperedges whose pins are split into two
// disjoint roles, HEADS (edge points into these) and TAILS (edge points out
// of these).
//
// Invariants:
//
//   - A node appearing in a hyperedge is either a head pin or a tail pin of
//     that edge, never both.
//   - For every edge e and node u: u is a head of e iff e is in u's
//     incident-head-edge list; symmetric for tails.
//   - currentNumNodes never exceeds initialNumNodes; Contract retires the
//     merged-away node, Uncontract revives it.
//   - Applying the full contraction memento stack in reverse order
//     reproduces the pre-contraction hypergraph exactly; likewise for the
//     edge-removal memento stack (RemoveHyperedge / RestoreHyperedge).
//
// Concurrency: mutation is the owning partitioner's responsibility at
// well-defined phase boundaries (coarsening, move application,
// uncoarsening). muNode/muEdge guard concurrent
// *readers* (e.g. a metrics collector) against a background mutator, not
// concurrent mutators against each other, matching the single-writer
// discipline the surrounding multilevel framework already assumes.
package dhypergraph
