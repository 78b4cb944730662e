// Package elastic: ERP — Edit distance with Real Penalty.
//
// Description:
//
//	ERP aligns two sequences with true edit operations, but instead of
//	skipping during a gap it charges the distance to a fixed reference
//	value g (the "gap anchor"):
//
//	  E[i][0] = Σ d(a[k], ĝ), k ≤ i        (delete everything so far)
//	  E[0][j] = Σ d(ĝ, b[k]), k ≤ j
//	  E[i][j] = min(E[i-1][j-1] + d(a[i], b[j]),   match
//	               E[i-1][j]   + d(a[i], ĝ),       gap in b
//	               E[i][j-1]   + d(ĝ, b[j]))       gap in a
//
//	where ĝ is the constant frame (g, g, …, g) and d is the Euclidean
//	frame distance. Unlike DTW, ERP is a true metric (triangle
//	inequality holds). Symmetric.
//
// Complexity: Time O(n·m); Memory O(m) for Distance, O(n·m) for Alignment.
package elastic

import "github.com/katalvlaran/tscluster/series"

// ERP is the edit-distance-with-real-penalty measure. G is the gap
// anchor value (any real; 0 is the customary default).
type ERP struct {
	Window int
	G      float64
}

// NewERP returns an ERP measure with the given window and gap value.
func NewERP(window int, g float64) ERP { return ERP{Window: window, G: g} }

// Name implements Metric.
func (ERP) Name() string { return "erp" }

// Distance implements Metric.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadWindow.
func (e ERP) Distance(a, b *series.Series) (float64, error) {
	n, m, err := dtwCheck(a, b, e.Window)
	if err != nil {
		return 0, err
	}
	return e.recurrence(a, b).distance(n, m, e.Window), nil
}

// Alignment implements PathMetric.
func (e ERP) Alignment(a, b *series.Series) (float64, Path, error) {
	n, m, err := dtwCheck(a, b, e.Window)
	if err != nil {
		return 0, nil, err
	}
	g := e.recurrence(a, b).matrix(n, m, e.Window)
	return g.at(n, m), g.backtrack(), nil
}

// recurrence builds the ERP DP. Border accumulators are prefix sums of
// gap costs, precomputed once so border evaluation stays O(1) per cell.
func (e ERP) recurrence(a, b *series.Series) recurrence {
	gap := make([]float64, a.Dim())
	for c := range gap {
		gap[c] = e.G
	}

	n, m := a.Len(), b.Len()
	rowGap := make([]float64, n+1) // rowGap[i] = Σ d(a[k], ĝ), k < i
	for i := 1; i <= n; i++ {
		rowGap[i] = rowGap[i-1] + l2(a.At(i-1), gap)
	}
	colGap := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		colGap[j] = colGap[j-1] + l2(b.At(j-1), gap)
	}

	return recurrence{
		diag:       func(i, j int) float64 { return l2(a.At(i-1), b.At(j-1)) },
		up:         func(i, j int) float64 { return l2(a.At(i-1), gap) },
		left:       func(i, j int) float64 { return l2(b.At(j-1), gap) },
		topBorder:  func(j int) float64 { return colGap[j] },
		leftBorder: func(i int) float64 { return rowGap[i] },
	}
}
