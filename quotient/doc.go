// Package quotient implements the quotient graph: a directed multigraph
// over block ids that summarizes which hyperedges
// cross between blocks of a partition of a directed hypergraph.
//
// A Graph is parameterized on a github.com/katalvlaran/dhgp/cycledetect
// Detector, used to cheaply screen prospective moves for the cycle they
// would introduce between blocks without touching the hypergraph itself.
// The detector is owned exclusively by the Graph for its lifetime; no
// other component observes or mutates it.
package quotient
