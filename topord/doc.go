// Package topord implements the pure topological primitives over a
// directed hypergraph: topological ordering (optionally
// randomized), its inverse, top-levels, reverse top-levels, and an
// acyclicity check. All five functions are pure — each allocates and
// returns a fresh result, never mutating the hypergraph.
package topord
