package elastic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// TestEuclidean_Basic verifies the lock-step distance on a known pair.
func TestEuclidean_Basic(t *testing.T) {
	dist, err := elastic.NewEuclidean().Distance(
		series.MustNew([]float64{0, 0, 0}),
		series.MustNew([]float64{0, 0, 1}),
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dist, 1e-12)

	dist, err = elastic.NewEuclidean().Distance(
		series.MustNew([]float64{0, 3}),
		series.MustNew([]float64{4, 0}),
	)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, dist, 1e-12, "3-4-5 triangle")
}

// TestEuclidean_LengthMismatch enforces the equal-length contract.
func TestEuclidean_LengthMismatch(t *testing.T) {
	_, err := elastic.NewEuclidean().Distance(
		series.MustNew([]float64{1, 2}),
		series.MustNew([]float64{1, 2, 3}),
	)
	assert.ErrorIs(t, err, elastic.ErrLengthMismatch)
}

// TestEuclidean_Multivariate uses whole-frame differences.
func TestEuclidean_Multivariate(t *testing.T) {
	a, err := series.NewMultivariate([][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)
	b, err := series.NewMultivariate([][]float64{{3, 0}, {0, 4}})
	require.NoError(t, err)

	dist, derr := elastic.NewEuclidean().Distance(a, b)
	require.NoError(t, derr)
	assert.InDelta(t, 5.0, dist, 1e-12, "sqrt(9+16)")
}

// TestEuclidean_AlignmentIsDiagonal: the Euclidean "path" is the forced
// lock-step diagonal.
func TestEuclidean_AlignmentIsDiagonal(t *testing.T) {
	dist, path, err := elastic.NewEuclidean().Alignment(
		series.MustNew([]float64{1, 2, 3}),
		series.MustNew([]float64{1, 2, 3}),
	)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Equal(t, elastic.Path{{I: 0, J: 0}, {I: 1, J: 1}, {I: 2, J: 2}}, path)
}
