// Package elastic: local cost helpers shared by the measures.
//
// Frames are read-only []float64 views handed out by series.Series.At;
// helpers must not retain or modify them.
package elastic

import (
	"gonum.org/v1/gonum/floats"
)

// l2 returns the Euclidean norm of the difference between two frames.
// Used by the edit-style measures (ERP, MSM, TWE).
func l2(x, y []float64) float64 {
	if len(x) == 1 {
		// univariate fast path, avoids the generic Lp machinery
		d := x[0] - y[0]
		if d < 0 {
			return -d
		}
		return d
	}
	return floats.Distance(x, y, 2)
}

// sq returns the squared Euclidean norm of the frame difference.
// The DTW family accumulates squared local costs, so that a Window=0
// alignment on equal-length inputs equals the squared Euclidean
// distance exactly.
func sq(x, y []float64) float64 {
	if len(x) == 1 {
		d := x[0] - y[0]
		return d * d
	}
	var s, d float64
	for i := range x {
		d = x[i] - y[i]
		s += d * d
	}
	return s
}
