// Package elastic: MSM — Move-Split-Merge distance.
//
// Description:
//
//	MSM edits one sequence into the other with three operations:
//	  • move  — substitute a frame, cost d(a[i], b[j])
//	  • split — duplicate a frame,  cost Penalty (+ remoteness surcharge)
//	  • merge — collapse two equal-ish frames, same cost structure
//
//	The split/merge cost of x relative to its neighbours y and z is
//
//	  C(x, y, z) = Penalty                          if x lies between y and z
//	             = Penalty + min(d(x,y), d(x,z))    otherwise
//
//	"Between" generalizes the classic scalar test y ≤ x ≤ z to frames:
//	x is between y and z when d(y,x) + d(x,z) ≤ d(y,z) + 1e-12 (collinear
//	and inside the segment). MSM is a true metric on equal treatment of
//	both sequences; the operation costs themselves are direction-aware,
//	and the definition's asymmetries are preserved as-is.
//
// Complexity: Time O(n·m); Memory O(m) for Distance, O(n·m) for Alignment.
package elastic

import "github.com/katalvlaran/tscluster/series"

// msmBetweenTol absorbs FP noise in the segment ("between") test.
const msmBetweenTol = 1e-12

// MSM is the move-split-merge measure. Penalty is the split/merge base
// cost c (≥ 0).
type MSM struct {
	Window  int
	Penalty float64
}

// NewMSM returns an MSM measure with the given window and split/merge
// penalty.
func NewMSM(window int, penalty float64) MSM {
	return MSM{Window: window, Penalty: penalty}
}

// Name implements Metric.
func (MSM) Name() string { return "msm" }

// Distance implements Metric.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadWindow, ErrBadPenalty.
func (ms MSM) Distance(a, b *series.Series) (float64, error) {
	n, m, err := ms.check(a, b)
	if err != nil {
		return 0, err
	}
	return ms.recurrence(a, b).distance(n, m, ms.Window), nil
}

// Alignment implements PathMetric.
func (ms MSM) Alignment(a, b *series.Series) (float64, Path, error) {
	n, m, err := ms.check(a, b)
	if err != nil {
		return 0, nil, err
	}
	g := ms.recurrence(a, b).matrix(n, m, ms.Window)
	return g.at(n, m), g.backtrack(), nil
}

// check validates MSM parameters plus the shared pair preconditions.
func (ms MSM) check(a, b *series.Series) (int, int, error) {
	if err := checkWindow(ms.Window); err != nil {
		return 0, 0, err
	}
	if ms.Penalty < 0 {
		return 0, 0, ErrBadPenalty
	}
	return checkPair(a, b)
}

// recurrence builds the MSM DP.
//
// The (1,1) cell reduces to d(a[0], b[0]) through the zero diagonal
// origin; first-row/column cells accumulate split/merge costs through
// the up/left moves, with the out-of-range neighbour falling back to
// the frame itself (cost Penalty, the classic boundary convention).
func (ms MSM) recurrence(a, b *series.Series) recurrence {
	split := func(x, y, z []float64) float64 {
		if l2(y, x)+l2(x, z) <= l2(y, z)+msmBetweenTol {
			return ms.Penalty
		}
		dy, dz := l2(x, y), l2(x, z)
		if dy < dz {
			return ms.Penalty + dy
		}
		return ms.Penalty + dz
	}

	return recurrence{
		diag: func(i, j int) float64 { return l2(a.At(i-1), b.At(j-1)) },
		up: func(i, j int) float64 {
			// split/merge of a[i-1] against its predecessor and b[j-1]
			prev := a.At(i - 1)
			if i > 1 {
				prev = a.At(i - 2)
			}
			return split(a.At(i-1), prev, b.At(j-1))
		},
		left: func(i, j int) float64 {
			prev := b.At(j - 1)
			if j > 1 {
				prev = b.At(j - 2)
			}
			return split(b.At(j-1), a.At(i-1), prev)
		},
	}
}
