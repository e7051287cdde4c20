// File: errors.go
// Role: sentinel errors for the quotient package.
package quotient

import "errors"

// ErrQuotientGraphCyclic is returned by TopologicalOrdering when the
// quotient graph's current adj matrix is not a DAG. Unlike the
// precondition violations in the root package, this is a legitimate
// runtime outcome: a Graph may be built over a partition that is cyclic
// between blocks, such as an undirected bipartition before
// initpart.UndirectedFixup has repaired it.
var ErrQuotientGraphCyclic = errors.New("quotient: adjacency is cyclic, no topological order exists")

// ErrBlockOutOfRange is returned by NewGraph when the detector's vertex
// count differs from the partition's block count.
var ErrBlockOutOfRange = errors.New("quotient: block id out of range")
