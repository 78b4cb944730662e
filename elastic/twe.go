// Package elastic: TWE — Time Warp Edit distance.
//
// Description:
//
//	TWE (Marteau) combines edit-distance deletions with an explicit
//	penalty on temporal displacement. With ν = Stiffness and
//	λ = Penalty, and both sequences padded with a zero frame at index 0:
//
//	  match:    T[i-1][j-1] + d(a[i],b[j]) + d(a[i-1],b[j-1]) + 2ν·|i−j|
//	  delete-a: T[i-1][j]   + d(a[i],a[i-1]) + λ + ν
//	  delete-b: T[i][j-1]   + d(b[j],b[j-1]) + λ + ν
//
//	ν = 0 degenerates toward an edit distance; large ν pins the
//	alignment to the diagonal. TWE is a metric for ν > 0. Symmetric.
//
// Complexity: Time O(n·m); Memory O(m) for Distance, O(n·m) for Alignment.
package elastic

import "github.com/katalvlaran/tscluster/series"

// TWE is the time-warp-edit measure. Stiffness is ν ≥ 0 (temporal
// rigidity), Penalty is λ ≥ 0 (per-deletion cost).
type TWE struct {
	Window    int
	Stiffness float64
	Penalty   float64
}

// NewTWE returns a TWE measure with the given window, stiffness ν and
// edit penalty λ.
func NewTWE(window int, stiffness, penalty float64) TWE {
	return TWE{Window: window, Stiffness: stiffness, Penalty: penalty}
}

// Name implements Metric.
func (TWE) Name() string { return "twe" }

// Distance implements Metric.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadWindow,
// ErrBadStiffness, ErrBadPenalty.
func (t TWE) Distance(a, b *series.Series) (float64, error) {
	n, m, err := t.check(a, b)
	if err != nil {
		return 0, err
	}
	return t.recurrence(a, b).distance(n, m, t.Window), nil
}

// Alignment implements PathMetric.
func (t TWE) Alignment(a, b *series.Series) (float64, Path, error) {
	n, m, err := t.check(a, b)
	if err != nil {
		return 0, nil, err
	}
	g := t.recurrence(a, b).matrix(n, m, t.Window)
	return g.at(n, m), g.backtrack(), nil
}

// check validates TWE parameters plus the shared pair preconditions.
func (t TWE) check(a, b *series.Series) (int, int, error) {
	if err := checkWindow(t.Window); err != nil {
		return 0, 0, err
	}
	if t.Stiffness < 0 {
		return 0, 0, ErrBadStiffness
	}
	if t.Penalty < 0 {
		return 0, 0, ErrBadPenalty
	}
	return checkPair(a, b)
}

// recurrence builds the TWE DP. The zero-frame padding is realized by
// frame accessors that return the zero vector for index 0.
func (t TWE) recurrence(a, b *series.Series) recurrence {
	zero := make([]float64, a.Dim())
	fa := func(i int) []float64 {
		if i == 0 {
			return zero
		}
		return a.At(i - 1)
	}
	fb := func(j int) []float64 {
		if j == 0 {
			return zero
		}
		return b.At(j - 1)
	}

	nu, lambda := t.Stiffness, t.Penalty
	return recurrence{
		diag: func(i, j int) float64 {
			d := i - j
			if d < 0 {
				d = -d
			}
			return l2(fa(i), fb(j)) + l2(fa(i-1), fb(j-1)) + 2*nu*float64(d)
		},
		up: func(i, j int) float64 {
			return l2(fa(i), fa(i-1)) + lambda + nu
		},
		left: func(i, j int) float64 {
			return l2(fb(j), fb(j-1)) + lambda + nu
		},
	}
}
