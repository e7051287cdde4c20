// Package dhgp is the acyclicity-preservation core of a directed-hypergraph
// k-way partitioning system.
//
// 🚀 What is dhgp?
//
//	A focused library that keeps a directed hypergraph and its partition
//	acyclic under incremental edits:
//
//	  • dhypergraph — directed hypergraph model: pins split into heads and
//	    tails per hyperedge, contract/uncontract, remove/restore edges.
//	  • cycledetect — three interchangeable incremental cycle detectors
//	    over a dynamic directed graph (Kahn-reorder, DFS, pseudo-topological).
//	  • topord      — pure topological primitives over a directed hypergraph.
//	  • quotient    — the quotient graph: a summary of a k-way partition as
//	    a directed multigraph on blocks, maintained incrementally.
//	  • initpart    — acyclic initial partitioners (topological sweep and
//	    undirected-fixup) that seed the FM refinement loop.
//	  • hgbuilder   — synthetic directed-hypergraph generators used by tests
//	    and benchmarks.
//
// ✨ Design
//
//   - Single-threaded cooperative: every public operation runs to
//     completion; no operation suspends (see package-level docs in each
//     subpackage for the concurrency notes that still apply to the
//     underlying hypergraph storage).
//   - Refusal is a first-class return value: a rejected connect or move
//     never mutates state and is not an error.
//   - The surrounding multilevel framework (coarsening rating policies,
//     FM priority-queue mechanics, flow-based refiners, CLI, hypergraph
//     file I/O, metrics reporting) is external; this module only fixes
//     the contracts in Coarsener, InitialPartitioner and Refiner that
//     those external parts must satisfy.
//
// Dive into DESIGN.md in the module root for the grounding of each
// package in its reference implementation.
package dhgp
