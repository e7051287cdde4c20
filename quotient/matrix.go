// File: matrix.go
// Role: a dense read-only view over adj, for diagnostics and metrics
//       callers that want matrix-style queries instead of point lookups.
package quotient

// DenseView is a snapshot of a Graph's adj matrix. It does not observe
// later mutations of the Graph it was taken from.
type DenseView struct {
	data [][]int
}

// Matrix snapshots the current adj matrix into a DenseView.
// Complexity: O(k²).
func (g *Graph) Matrix() DenseView {
	data := make([][]int, g.k)
	for i := range data {
		data[i] = append([]int(nil), g.adj[i]...)
	}

	return DenseView{data: data}
}

// K returns the matrix dimension.
func (m DenseView) K() int {
	return len(m.data)
}

// At returns the contribution count from block u to block v.
func (m DenseView) At(u, v int) int {
	return m.data[u][v]
}

// RowDegree sums the off-diagonal contributions originating at block u:
// over every other block v, the hyperedges with a tail pin in u and a
// head pin in v, so a hyperedge reaching several blocks counts once per
// block.
func (m DenseView) RowDegree(u int) int {
	sum := 0
	for v, c := range m.data[u] {
		if v != u {
			sum += c
		}
	}

	return sum
}

// ColDegree sums the off-diagonal contributions terminating at block v.
func (m DenseView) ColDegree(v int) int {
	sum := 0
	for u := range m.data {
		if u != v {
			sum += m.data[u][v]
		}
	}

	return sum
}

// NNZ counts the off-diagonal cells with a nonzero contribution, i.e. the
// number of distinct directed quotient edges.
func (m DenseView) NNZ() int {
	n := 0
	for u := range m.data {
		for v, c := range m.data[u] {
			if u != v && c > 0 {
				n++
			}
		}
	}

	return n
}

// Transpose returns the reversed-direction view: the block graph summarizing
// head-to-tail crossings instead of tail-to-head ones.
func (m DenseView) Transpose() DenseView {
	k := len(m.data)
	out := make([][]int, k)
	for i := range out {
		out[i] = make([]int, k)
	}
	for u := range m.data {
		for v, c := range m.data[u] {
			out[v][u] = c
		}
	}

	return DenseView{data: out}
}
