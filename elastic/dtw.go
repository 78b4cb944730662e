// Package elastic: the DTW family — DTW, DDTW, WDTW, WDDTW.
//
// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in time
//	or speed by finding an optimal warping path through a local-cost
//	grid. The family here shares one recurrence:
//
//	  D[0][0] = 0; border cells = +∞
//	  D[i][j] = cost(i,j) + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//
//	cost(i,j) is the squared frame difference, optionally multiplied by
//	a logistic phase weight (WDTW/WDDTW), optionally computed on the
//	first-derivative transform (DDTW/WDDTW).
//
// The reported distance is the accumulated squared cost D[n][m] (no
// square root), so DTW with Window=0 on equal-length inputs equals the
// squared Euclidean distance.
//
// Complexity: Time O(n·m); Memory O(min-rows) for Distance, O(n·m) for
// Alignment.
package elastic

import (
	"math"

	"github.com/katalvlaran/tscluster/series"
)

// DTW is plain dynamic time warping with an optional Sakoe–Chiba band.
//
// Window semantics: -1 — unconstrained; w ≥ 0 — only cells with
// |i−j| ≤ w are evaluated (0 forces the diagonal). Symmetric.
type DTW struct {
	Window int
}

// NewDTW returns a DTW measure with the given Sakoe–Chiba window.
func NewDTW(window int) DTW { return DTW{Window: window} }

// Name implements Metric.
func (DTW) Name() string { return "dtw" }

// Distance implements Metric using the rolling engine.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadWindow.
func (d DTW) Distance(a, b *series.Series) (float64, error) {
	n, m, err := dtwCheck(a, b, d.Window)
	if err != nil {
		return 0, err
	}
	return dtwRecurrence(a, b, nil).distance(n, m, d.Window), nil
}

// Alignment implements PathMetric using the full-matrix engine.
func (d DTW) Alignment(a, b *series.Series) (float64, Path, error) {
	n, m, err := dtwCheck(a, b, d.Window)
	if err != nil {
		return 0, nil, err
	}
	g := dtwRecurrence(a, b, nil).matrix(n, m, d.Window)
	return g.at(n, m), g.backtrack(), nil
}

// DDTW is DTW on the Keogh–Pazzani first-derivative transform of both
// inputs. Requires at least 3 observations per series.
type DDTW struct {
	Window int
}

// NewDDTW returns a derivative DTW measure with the given window.
func NewDDTW(window int) DDTW { return DDTW{Window: window} }

// Name implements Metric.
func (DDTW) Name() string { return "ddtw" }

// Distance implements Metric.
//
// Errors: those of DTW plus ErrTooShort.
func (d DDTW) Distance(a, b *series.Series) (float64, error) {
	da, db, err := derivePair(a, b)
	if err != nil {
		return 0, err
	}
	return DTW{Window: d.Window}.Distance(da, db)
}

// Alignment implements PathMetric. Path indices refer to the derivative
// sequences (length n-2), not the raw inputs.
func (d DDTW) Alignment(a, b *series.Series) (float64, Path, error) {
	da, db, err := derivePair(a, b)
	if err != nil {
		return 0, nil, err
	}
	return DTW{Window: d.Window}.Alignment(da, db)
}

// WDTW is weighted DTW: the local cost at (i,j) is multiplied by a
// logistic function of the phase difference |i−j|,
//
//	w(d) = 1 / (1 + exp(-g·(d − mx/2))),  mx = max(n,m),
//
// so large phase shifts are progressively discouraged. G is the
// steepness of that penalty curve (0 ⇒ all weights 1/2, i.e. scaled DTW).
type WDTW struct {
	Window int
	G      float64
}

// NewWDTW returns a weighted DTW measure with the given window and
// steepness.
func NewWDTW(window int, g float64) WDTW { return WDTW{Window: window, G: g} }

// Name implements Metric.
func (WDTW) Name() string { return "wdtw" }

// Distance implements Metric.
//
// Errors: those of DTW plus ErrBadSteepness.
func (w WDTW) Distance(a, b *series.Series) (float64, error) {
	n, m, err := dtwCheck(a, b, w.Window)
	if err != nil {
		return 0, err
	}
	if w.G < 0 {
		return 0, ErrBadSteepness
	}
	return dtwRecurrence(a, b, logisticWeights(n, m, w.G)).distance(n, m, w.Window), nil
}

// Alignment implements PathMetric.
func (w WDTW) Alignment(a, b *series.Series) (float64, Path, error) {
	n, m, err := dtwCheck(a, b, w.Window)
	if err != nil {
		return 0, nil, err
	}
	if w.G < 0 {
		return 0, nil, ErrBadSteepness
	}
	g := dtwRecurrence(a, b, logisticWeights(n, m, w.G)).matrix(n, m, w.Window)
	return g.at(n, m), g.backtrack(), nil
}

// WDDTW is WDTW on the first-derivative transform.
type WDDTW struct {
	Window int
	G      float64
}

// NewWDDTW returns a weighted derivative DTW measure.
func NewWDDTW(window int, g float64) WDDTW { return WDDTW{Window: window, G: g} }

// Name implements Metric.
func (WDDTW) Name() string { return "wddtw" }

// Distance implements Metric.
func (w WDDTW) Distance(a, b *series.Series) (float64, error) {
	da, db, err := derivePair(a, b)
	if err != nil {
		return 0, err
	}
	return WDTW{Window: w.Window, G: w.G}.Distance(da, db)
}

// Alignment implements PathMetric. Path indices refer to the derivative
// sequences.
func (w WDDTW) Alignment(a, b *series.Series) (float64, Path, error) {
	da, db, err := derivePair(a, b)
	if err != nil {
		return 0, nil, err
	}
	return WDTW{Window: w.Window, G: w.G}.Alignment(da, db)
}

// Derivative returns the Keogh–Pazzani first-derivative transform of s,
// computed per channel over interior points:
//
//	d[i] = ((x[i] − x[i−1]) + (x[i+1] − x[i−1])/2) / 2,  i = 1 … n−2
//
// The result has length n−2. Exported because the transform is useful
// on its own (feature extraction, plotting) beyond DDTW/WDDTW.
//
// Errors: ErrEmptyInput (nil/empty), ErrTooShort (n < 3).
//
// Complexity: O(n·d).
func Derivative(s *series.Series) (*series.Series, error) {
	n := s.Len()
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n < 3 {
		return nil, ErrTooShort
	}

	dim := s.Dim()
	frames := make([][]float64, n-2)
	var (
		i, c int
		f    []float64
	)
	for i = 1; i <= n-2; i++ {
		f = make([]float64, dim)
		for c = 0; c < dim; c++ {
			prev, cur, next := s.Value(i-1, c), s.Value(i, c), s.Value(i+1, c)
			f[c] = ((cur - prev) + (next-prev)/2) / 2
		}
		frames[i-1] = f
	}
	out, err := series.FromFrames(frames)
	if err != nil {
		// frames are rectangular by construction; unreachable for valid s
		return nil, err
	}
	return out, nil
}

// dtwCheck bundles the precondition checks shared by the DTW family.
func dtwCheck(a, b *series.Series, window int) (int, int, error) {
	if err := checkWindow(window); err != nil {
		return 0, 0, err
	}
	return checkPair(a, b)
}

// derivePair transforms both inputs, preserving error order: pair
// preconditions first, then length sufficiency.
func derivePair(a, b *series.Series) (*series.Series, *series.Series, error) {
	if _, _, err := checkPair(a, b); err != nil {
		return nil, nil, err
	}
	da, err := Derivative(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := Derivative(b)
	if err != nil {
		return nil, nil, err
	}
	return da, db, nil
}

// dtwRecurrence builds the shared DTW-family recurrence. weights may be
// nil (plain DTW) or index-by-|i−j| logistic weights (WDTW).
func dtwRecurrence(a, b *series.Series, weights []float64) recurrence {
	cost := func(i, j int) float64 {
		c := sq(a.At(i-1), b.At(j-1))
		if weights != nil {
			d := i - j
			if d < 0 {
				d = -d
			}
			c *= weights[d]
		}
		return c
	}
	return recurrence{diag: cost, up: cost, left: cost}
}

// logisticWeights precomputes w(d) for every possible phase difference
// d = 0 … max(n,m)-1.
func logisticWeights(n, m int, g float64) []float64 {
	mx := n
	if m > mx {
		mx = m
	}
	half := float64(mx) / 2
	w := make([]float64, mx)
	for d := range w {
		w[d] = 1 / (1 + math.Exp(-g*(float64(d)-half)))
	}
	return w
}
