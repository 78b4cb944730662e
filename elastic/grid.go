// Package elastic: shared dynamic-programming engine.
//
// Every min-DP measure (DTW family, ERP, MSM, TWE) is expressed as a
// recurrence — three move costs plus optional border accumulators — and
// evaluated by one of two engines:
//
//   - distance: rolling two-row evaluation, O(m) memory, no path.
//   - matrix:   full (n+1)×(m+1) grid, O(n·m) memory, supports backtrack.
//
// Backtracking follows the predecessor cell holding the minimal
// accumulated value; ties are broken diagonal > up > left. The rule is
// fixed (not configurable) because barycenter averaging depends on it
// for reproducible refinement.
//
// Design principles:
//   - Deterministic, side-effect free; no hidden allocations in the
//     inner loop beyond the DP storage itself.
//   - +Inf is a value, not an error: out-of-band cells and unreachable
//     endpoints propagate +Inf to the caller.
package elastic

import "math"

// recurrence describes one min-DP measure. Indices are 1-based within
// the (n+1)×(m+1) DP frame; i maps to a[i-1], j to b[j-1].
//
// topBorder/leftBorder give g[0][j] and g[i][0]; nil means +Inf
// (the DTW-style hard border). g[0][0] is always 0.
type recurrence struct {
	diag func(i, j int) float64
	up   func(i, j int) float64
	left func(i, j int) float64

	topBorder  func(j int) float64
	leftBorder func(i int) float64
}

// inBand reports whether DP cell (i,j) is inside the Sakoe–Chiba band.
// window == -1 disables the constraint.
func inBand(i, j, window int) bool {
	if window < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}
	return d <= window
}

// distance evaluates the recurrence with two rolling rows and returns
// the accumulated cost at (n,m).
//
// Complexity: O(n·m) time (O(n·window) effective inside a band),
// O(m) memory.
func (r recurrence) distance(n, m, window int) float64 {
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)

	prev[0] = 0
	var j int
	for j = 1; j <= m; j++ {
		if r.topBorder != nil {
			prev[j] = r.topBorder(j)
		} else {
			prev[j] = inf
		}
	}

	var (
		i    int
		best float64
	)
	for i = 1; i <= n; i++ {
		if r.leftBorder != nil {
			curr[0] = r.leftBorder(i)
		} else {
			curr[0] = inf
		}
		for j = 1; j <= m; j++ {
			if !inBand(i, j, window) {
				curr[j] = inf
				continue
			}
			best = prev[j-1] + r.diag(i, j)
			if v := prev[j] + r.up(i, j); v < best {
				best = v
			}
			if v := curr[j-1] + r.left(i, j); v < best {
				best = v
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// grid is a full DP matrix in a flat buffer, row-major, (n+1)×(m+1).
type grid struct {
	n, m int
	v    []float64
}

// at returns g[i][j].
func (g *grid) at(i, j int) float64 { return g.v[i*(g.m+1)+j] }

// set assigns g[i][j].
func (g *grid) set(i, j int, x float64) { g.v[i*(g.m+1)+j] = x }

// matrix evaluates the recurrence with full storage for backtracking.
//
// Complexity: O(n·m) time and memory.
func (r recurrence) matrix(n, m, window int) *grid {
	inf := math.Inf(1)
	g := &grid{n: n, m: m, v: make([]float64, (n+1)*(m+1))}

	g.set(0, 0, 0)
	var i, j int
	for j = 1; j <= m; j++ {
		if r.topBorder != nil {
			g.set(0, j, r.topBorder(j))
		} else {
			g.set(0, j, inf)
		}
	}
	for i = 1; i <= n; i++ {
		if r.leftBorder != nil {
			g.set(i, 0, r.leftBorder(i))
		} else {
			g.set(i, 0, inf)
		}
	}

	var best float64
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if !inBand(i, j, window) {
				g.set(i, j, inf)
				continue
			}
			best = g.at(i-1, j-1) + r.diag(i, j)
			if v := g.at(i-1, j) + r.up(i, j); v < best {
				best = v
			}
			if v := g.at(i, j-1) + r.left(i, j); v < best {
				best = v
			}
			g.set(i, j, best)
		}
	}
	return g
}

// backtrack recovers the alignment path from (n,m) down to (1,1),
// emitting 0-based coordinates in forward order.
//
// At each cell the predecessor with the minimal accumulated value is
// chosen; ties break diagonal > up > left. This rule is part of the
// package contract (see doc.go) — changing it changes DBA results.
//
// Complexity: O(n+m) time, O(n+m) space for the returned path.
func (g *grid) backtrack() Path {
	if math.IsInf(g.at(g.n, g.m), 1) {
		return nil
	}

	path := make(Path, 0, g.n+g.m)
	i, j := g.n, g.m
	for i > 0 || j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			d, u, l := g.at(i-1, j-1), g.at(i-1, j), g.at(i, j-1)
			if d <= u && d <= l {
				i--
				j--
			} else if u <= l {
				i--
			} else {
				j--
			}
		}
	}

	// reverse in place: recovery walked end → start
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
