// Package elastic: shared surface — capabilities, path types, sentinels.
//
// This file defines ONLY the package-level contracts. All measures MUST
// return these sentinels and tests MUST check them via errors.Is. No
// measure panics on user input.
package elastic

import (
	"errors"

	"github.com/katalvlaran/tscluster/series"
)

var (
	// ErrEmptyInput indicates one or both input series are nil or empty.
	ErrEmptyInput = errors.New("elastic: input series must be non-empty")

	// ErrDimensionMismatch indicates the two inputs disagree on channel count.
	ErrDimensionMismatch = errors.New("elastic: channel count mismatch")

	// ErrLengthMismatch indicates a strict measure (Euclidean) received
	// sequences of different lengths.
	ErrLengthMismatch = errors.New("elastic: sequence lengths must match")

	// ErrBadWindow indicates Window < -1 (-1 disables the band, ≥ 0 is a width).
	ErrBadWindow = errors.New("elastic: window must be -1 or non-negative")

	// ErrBadEpsilon indicates a negative LCSS matching threshold.
	ErrBadEpsilon = errors.New("elastic: epsilon must be non-negative")

	// ErrBadPenalty indicates a negative edit penalty (MSM c, TWE λ).
	ErrBadPenalty = errors.New("elastic: penalty must be non-negative")

	// ErrBadStiffness indicates a negative TWE stiffness ν.
	ErrBadStiffness = errors.New("elastic: stiffness must be non-negative")

	// ErrBadSteepness indicates a negative WDTW/WDDTW weight steepness g.
	ErrBadSteepness = errors.New("elastic: steepness must be non-negative")

	// ErrTooShort indicates an input too short for the derivative
	// transform (DDTW/WDDTW need at least 3 observations).
	ErrTooShort = errors.New("elastic: series too short for derivative transform")

	// ErrUnknownMeasure indicates a measure name outside the nine built-ins.
	ErrUnknownMeasure = errors.New("elastic: unknown measure name")
)

// Coord is one step of an alignment path: index I of the first series
// matched against index J of the second (both 0-based).
type Coord struct {
	I, J int
}

// Path is the ordered alignment from (0,0)-side to (n-1,m-1)-side.
// For min-DP measures it is the full minimum-cost route; for LCSS it
// contains only the matched pairs.
type Path []Coord

// Metric is the pure pairwise-distance capability. Implementations are
// stateless value types; a Metric is safe for concurrent use.
type Metric interface {
	// Name returns the measure's canonical lowercase name ("dtw", "msm", …).
	Name() string

	// Distance returns the measure's value for a and b, ≥ 0 (or +Inf when
	// a Sakoe–Chiba band makes the endpoints unreachable).
	Distance(a, b *series.Series) (float64, error)
}

// PathMetric extends Metric with alignment-path recovery, the byproduct
// DBA consumes. Every DP-based measure in this package implements it.
type PathMetric interface {
	Metric

	// Alignment returns the distance together with the warping path.
	// When the band makes (n,m) unreachable the distance is +Inf and the
	// path is nil.
	Alignment(a, b *series.Series) (float64, Path, error)
}

// checkPair validates the common preconditions shared by every measure
// and returns the two lengths.
//
// Complexity: O(1).
func checkPair(a, b *series.Series) (int, int, error) {
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return 0, 0, ErrEmptyInput
	}
	if a.Dim() != b.Dim() {
		return 0, 0, ErrDimensionMismatch
	}
	return n, m, nil
}

// checkWindow validates the Sakoe–Chiba band parameter.
func checkWindow(w int) error {
	if w < -1 {
		return ErrBadWindow
	}
	return nil
}
