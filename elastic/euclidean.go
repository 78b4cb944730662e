package elastic

import (
	"math"

	"github.com/katalvlaran/tscluster/series"
)

// Euclidean is the strict lock-step baseline: the square root of the
// summed squared frame differences. Both inputs must have equal length;
// the "alignment" is the forced diagonal.
//
// Symmetric. Equals sqrt(DTW with Window=0) on equal-length inputs.
type Euclidean struct{}

// NewEuclidean returns the Euclidean measure.
func NewEuclidean() Euclidean { return Euclidean{} }

// Name implements Metric.
func (Euclidean) Name() string { return "euclidean" }

// Distance implements Metric.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrLengthMismatch.
//
// Complexity: O(n·d).
func (Euclidean) Distance(a, b *series.Series) (float64, error) {
	n, m, err := checkPair(a, b)
	if err != nil {
		return 0, err
	}
	if n != m {
		return 0, ErrLengthMismatch
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += sq(a.At(i), b.At(i))
	}
	return math.Sqrt(sum), nil
}

// Alignment implements PathMetric. The path is the diagonal
// (0,0),(1,1),…,(n-1,n-1) — Euclidean admits no warping.
func (e Euclidean) Alignment(a, b *series.Series) (float64, Path, error) {
	dist, err := e.Distance(a, b)
	if err != nil {
		return 0, nil, err
	}
	path := make(Path, a.Len())
	for i := range path {
		path[i] = Coord{I: i, J: i}
	}
	return dist, path, nil
}
