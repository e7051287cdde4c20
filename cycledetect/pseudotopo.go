// File: pseudotopo.go
// Role: PseudoTopoDetector — the Bender, Fineman,
//       Gilbert & Tarjan two-phase pseudo-topological-order detector.
//
// A level function level: V -> N is maintained such that for every
// present edge (x,y), level(x) <= level(y). For each vertex v, in[v] is
// the set of same-level predecessors (edges (x,v) with level(x)=level(v));
// out[v] is the full out-adjacency; pred[v] is the full in-adjacency,
// kept so in[·] can be rebuilt after a level promotion without a
// from-scratch graph scan.
//
// δ = min(sqrt(size), cbrt(n²)) bounds the backward same-level probe;
// size is the current edge count and is recomputed on every structural
// change.
//
// Forward-propagation note: a minimal-frontier optimization (only
// continue through nodes whose level actually needs to rise) is an
// amortized-cost refinement; this implementation instead explores the
// full forward-reachable set from v once per insert, checking every
// encountered vertex against the backward phase's mark set. This keeps
// the three detectors in lock-step agreement at the cost
// of the tighter amortized bound the minimal-frontier version achieves.
package cycledetect

import "math"

// PseudoTopoDetector implements the level-based pseudo-topological-order
// cycle detector.
type PseudoTopoDetector struct {
	n     int
	level []int
	out   []map[int]struct{}
	pred  []map[int]struct{}
	in    []map[int]struct{}
	size  int
}

// NewPseudoTopoDetector creates a detector over n fixed vertices [0,n),
// with no edges and every vertex at level 0.
func NewPseudoTopoDetector(n int) *PseudoTopoDetector {
	d := &PseudoTopoDetector{}
	d.init(n)

	return d
}

func (d *PseudoTopoDetector) init(n int) {
	d.n = n
	d.level = make([]int, n)
	d.out = make([]map[int]struct{}, n)
	d.pred = make([]map[int]struct{}, n)
	d.in = make([]map[int]struct{}, n)
	d.size = 0
	for i := 0; i < n; i++ {
		d.out[i] = make(map[int]struct{})
		d.pred[i] = make(map[int]struct{})
		d.in[i] = make(map[int]struct{})
	}
}

// N returns the fixed vertex count.
func (d *PseudoTopoDetector) N() int { return d.n }

// Reset clears all edges and levels.
// Complexity: O(n).
func (d *PseudoTopoDetector) Reset() {
	d.init(d.n)
}

// delta computes δ = min(sqrt(size), cbrt(n²)) for the current edge count.
func (d *PseudoTopoDetector) delta() int {
	bySize := math.Sqrt(float64(d.size))
	byN := math.Cbrt(float64(d.n) * float64(d.n))
	v := bySize
	if byN < v {
		v = byN
	}

	return int(v)
}

// BulkConnect inserts edges without cycle checking, promoting levels
// along the way so the pseudo-topological invariant holds for later
// Connect calls. The caller asserts the resulting graph is acyclic.
// Complexity: O(m · (n+m)) worst case; fine for offline batch seeding.
func (d *PseudoTopoDetector) BulkConnect(edges []Edge) {
	for _, e := range edges {
		if e.S == e.T {
			continue
		}
		d.rawInsert(e.S, e.T)
	}
}

// rawInsert installs (s,t) and, if necessary, promotes level(t) to keep
// the invariant, without any cycle checking.
func (d *PseudoTopoDetector) rawInsert(s, t int) {
	if d.level[t] < d.level[s] {
		d.promoteForward(t, d.level[s])
	}
	d.out[s][t] = struct{}{}
	d.pred[t][s] = struct{}{}
	if d.level[s] == d.level[t] {
		d.in[t][s] = struct{}{}
	}
	d.size++
}

// promoteForward raises v (and everything below newLevel reachable
// forward from v) to at least newLevel, rebuilding in[·] for every
// touched vertex.
func (d *PseudoTopoDetector) promoteForward(v, newLevel int) {
	touched := map[int]bool{}
	queue := []int{v}
	d.level[v] = newLevel
	touched[v] = true
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for y := range d.out[x] {
			if d.level[y] < d.level[x] {
				d.level[y] = d.level[x]
				if !touched[y] {
					touched[y] = true
					queue = append(queue, y)
				}
			}
		}
	}
	for node := range touched {
		d.rebuildIn(node)
	}
}

// rebuildIn recomputes in[node] from pred[node] and the current levels.
func (d *PseudoTopoDetector) rebuildIn(node int) {
	d.in[node] = make(map[int]struct{}, len(d.pred[node]))
	for p := range d.pred[node] {
		if d.level[p] == d.level[node] {
			d.in[node][p] = struct{}{}
		}
	}
}

// Connect attempts to insert (u,v). See the file doc comment
// for the two-phase algorithm.
func (d *PseudoTopoDetector) Connect(u, v int) bool {
	if u == v {
		return false
	}
	if _, dup := d.out[u][v]; dup {
		return true
	}

	if d.level[u] < d.level[v] {
		d.out[u][v] = struct{}{}
		d.pred[v][u] = struct{}{}
		d.size++

		return true
	}

	delta := d.delta()
	bSet, hitBound := d.backwardProbe(u, v, delta)
	if bSet == nil {
		// v was found during the backward probe: a path v -> ... -> u
		// already exists, so (u,v) would close a cycle.
		return false
	}

	if d.level[u] == d.level[v] && !hitBound {
		d.out[u][v] = struct{}{}
		d.pred[v][u] = struct{}{}
		d.in[v][u] = struct{}{}
		d.size++

		return true
	}

	newLevel := d.level[u]
	if hitBound {
		newLevel = d.level[u] + 1
		bSet = map[int]bool{u: true}
	}

	levelChange, cycle := d.forwardCheck(v, newLevel, bSet)
	if cycle {
		return false
	}

	for node, lv := range levelChange {
		d.level[node] = lv
	}
	for node := range levelChange {
		d.rebuildIn(node)
	}

	d.out[u][v] = struct{}{}
	d.pred[v][u] = struct{}{}
	if d.level[u] == d.level[v] {
		d.in[v][u] = struct{}{}
	}
	d.size++

	return true
}

// backwardProbe walks same-level predecessors of u (via in[·]) looking
// for v, bounded to delta newly-visited vertices. Returns (nil, false) if
// v was found (cycle); otherwise the set of visited vertices and whether
// the delta bound was exhausted before the search completed.
func (d *PseudoTopoDetector) backwardProbe(u, v, delta int) (map[int]bool, bool) {
	visited := map[int]bool{u: true}
	queue := []int{u}
	count := 0
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for p := range d.in[x] {
			if p == v {
				return nil, false
			}
			if visited[p] {
				continue
			}
			visited[p] = true
			count++
			if count >= delta {
				return visited, true
			}
			queue = append(queue, p)
		}
	}

	return visited, false
}

// forwardCheck explores the full forward-reachable set from v, checking
// every encountered vertex against bSet (the backward phase's mark set).
// Reaching a bSet member means a path back to u exists, closing a cycle
// once (u,v) is added. Along the way it records the minimal level each
// visited vertex must rise to (levelChange), seeded with v -> newLevel.
func (d *PseudoTopoDetector) forwardCheck(v, newLevel int, bSet map[int]bool) (map[int]int, bool) {
	levelChange := map[int]int{v: newLevel}
	visited := map[int]bool{v: true}
	queue := []int{v}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		xLevel := levelChange[x]
		for y := range d.out[x] {
			if bSet[y] {
				return nil, true
			}
			if effective, ok := levelChange[y]; !ok || effective < xLevel {
				if d.level[y] < xLevel {
					levelChange[y] = xLevel
				} else if !ok {
					levelChange[y] = d.level[y]
				}
			}
			if !visited[y] {
				visited[y] = true
				queue = append(queue, y)
			}
		}
	}

	return levelChange, false
}

// Disconnect removes edge (s,t); a no-op if absent. Levels are left as-is
// (a valid pseudo-topological order for a smaller edge set is still
// valid), matching the other detectors' Disconnect contract.
// Complexity: O(1) amortized.
func (d *PseudoTopoDetector) Disconnect(s, t int) {
	if _, ok := d.out[s][t]; !ok {
		return
	}
	delete(d.out[s], t)
	delete(d.pred[t], s)
	delete(d.in[t], s)
	d.size--
}
