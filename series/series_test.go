package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tscluster/series"
)

// TestNew_Empty verifies that an empty univariate input is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := series.New(nil)
	assert.ErrorIs(t, err, series.ErrEmptySeries, "nil input must error")

	_, err = series.New([]float64{})
	assert.ErrorIs(t, err, series.ErrEmptySeries, "empty input must error")
}

// TestNew_NaNInf verifies that non-finite observations are rejected.
func TestNew_NaNInf(t *testing.T) {
	_, err := series.New([]float64{1, math.NaN(), 3})
	assert.ErrorIs(t, err, series.ErrNaNInf, "NaN must error")

	_, err = series.New([]float64{1, math.Inf(-1)})
	assert.ErrorIs(t, err, series.ErrNaNInf, "-Inf must error")
}

// TestNew_CopiesInput verifies immutability: mutating the caller's slice
// after construction must not affect the series.
func TestNew_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	s, err := series.New(src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, s.Value(0, 0), "series must own a copy of its data")
}

// TestNew_Accessors checks Len/Dim/At/Value/Values on a univariate series.
func TestNew_Accessors(t *testing.T) {
	s := series.MustNew([]float64{4, 5, 6})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Dim())
	assert.Equal(t, []float64{5}, s.At(1))
	assert.Equal(t, 6.0, s.Value(2, 0))
	assert.Equal(t, []float64{4, 5, 6}, s.Values())
}

// TestNewMultivariate_Ragged verifies frame-width validation.
func TestNewMultivariate_Ragged(t *testing.T) {
	_, err := series.NewMultivariate([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, series.ErrRaggedFrames, "ragged frames must error")

	_, err = series.NewMultivariate([][]float64{{}})
	assert.ErrorIs(t, err, series.ErrRaggedFrames, "zero-width frames must error")

	_, err = series.NewMultivariate(nil)
	assert.ErrorIs(t, err, series.ErrEmptySeries, "no frames must error")
}

// TestNewMultivariate_Accessors checks shape and frame access for dim=2.
func TestNewMultivariate_Accessors(t *testing.T) {
	s, err := series.NewMultivariate([][]float64{{1, 10}, {2, 20}, {3, 30}})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, []float64{2, 20}, s.At(1))
	assert.Equal(t, 30.0, s.Value(2, 1))
	assert.Equal(t, []float64{1, 2, 3}, s.Values(), "Values returns channel 0")
}

// TestClone_Independent verifies a clone shares no storage.
func TestClone_Independent(t *testing.T) {
	s := series.MustNew([]float64{1, 2})
	c := s.Clone()

	assert.True(t, s.Equal(c, 0), "clone must equal the original exactly")
}

// TestEqual_Tolerance checks shape and tolerance semantics.
func TestEqual_Tolerance(t *testing.T) {
	a := series.MustNew([]float64{1, 2, 3})
	b := series.MustNew([]float64{1, 2, 3.0005})

	assert.False(t, a.Equal(b, 0), "exact comparison must fail")
	assert.True(t, a.Equal(b, 1e-3), "within-tolerance comparison must pass")
	assert.False(t, a.Equal(series.MustNew([]float64{1, 2}), 1), "length mismatch is never equal")
}

// TestFromFrames_Basic checks the synthesized-center constructor.
func TestFromFrames_Basic(t *testing.T) {
	s, err := series.FromFrames([][]float64{{1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Values())

	_, err = series.FromFrames([][]float64{{1}, {2, 3}})
	assert.ErrorIs(t, err, series.ErrRaggedFrames)
}
