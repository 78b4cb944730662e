// Package series: the Series value type.
//
// Design principles:
//   - Flat storage: one []float64, frame i = data[i*dim : (i+1)*dim].
//   - Constructors copy; accessors never do (hot-path discipline).
//   - No panics on user input — only sentinel errors from this file.
package series

import (
	"errors"
	"math"
)

var (
	// ErrEmptySeries is returned when a constructor receives zero observations.
	ErrEmptySeries = errors.New("series: series must be non-empty")

	// ErrRaggedFrames is returned when multivariate frames differ in width,
	// or a frame is empty.
	ErrRaggedFrames = errors.New("series: frames must share one non-zero width")

	// ErrNaNInf is returned when a NaN or ±Inf observation is encountered.
	// All algorithms in this module assume finite inputs.
	ErrNaNInf = errors.New("series: NaN or Inf observation")

	// ErrDimensionMismatch is returned when two series (or a dataset and a
	// series) disagree on channel count.
	ErrDimensionMismatch = errors.New("series: channel count mismatch")
)

// Series is an immutable, ordered sequence of numeric observations.
// Each observation ("frame") is a vector of dim channel values; dim==1
// is the univariate case.
//
// The zero value is not usable; construct via New, NewMultivariate or
// MustNew.
type Series struct {
	data []float64 // frame-major: data[i*dim+c] = channel c at time i
	dim  int       // channels per frame, ≥ 1
}

// New constructs a univariate Series from values.
// The input slice is copied; the caller keeps ownership of values.
//
// Errors: ErrEmptySeries, ErrNaNInf.
//
// Complexity: O(n).
func New(values []float64) (*Series, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Series{data: data, dim: 1}, nil
}

// MustNew is New that panics on error. Intended for literals in tests
// and examples, never for runtime data.
func MustNew(values []float64) *Series {
	s, err := New(values)
	if err != nil {
		panic(err)
	}
	return s
}

// NewMultivariate constructs a Series from frames, where frames[i] is the
// observation vector at time i. All frames must share one non-zero width.
// The input is copied.
//
// Errors: ErrEmptySeries, ErrRaggedFrames, ErrNaNInf.
//
// Complexity: O(n·d).
func NewMultivariate(frames [][]float64) (*Series, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySeries
	}
	dim := len(frames[0])
	if dim == 0 {
		return nil, ErrRaggedFrames
	}

	data := make([]float64, 0, len(frames)*dim)
	var v float64
	for _, f := range frames {
		if len(f) != dim {
			return nil, ErrRaggedFrames
		}
		for _, v = range f {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
		data = append(data, f...)
	}
	return &Series{data: data, dim: dim}, nil
}

// fromFlat adopts an already-validated flat buffer without copying.
// Internal constructor for algorithms that synthesize series (mean, DBA,
// derivative transform); the caller must not retain data.
func fromFlat(data []float64, dim int) *Series {
	return &Series{data: data, dim: dim}
}

// FromFrames builds a Series from synthesized frames without finite-value
// validation. It is the constructor averagers use for computed centers,
// where inputs are already finite by construction.
// Frames must be rectangular; ragged input returns ErrRaggedFrames.
func FromFrames(frames [][]float64) (*Series, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySeries
	}
	dim := len(frames[0])
	if dim == 0 {
		return nil, ErrRaggedFrames
	}
	data := make([]float64, 0, len(frames)*dim)
	for _, f := range frames {
		if len(f) != dim {
			return nil, ErrRaggedFrames
		}
		data = append(data, f...)
	}
	return fromFlat(data, dim), nil
}

// Len returns the number of observations (frames).
func (s *Series) Len() int {
	if s == nil || s.dim == 0 {
		return 0
	}
	return len(s.data) / s.dim
}

// Dim returns the number of channels per observation.
func (s *Series) Dim() int {
	if s == nil {
		return 0
	}
	return s.dim
}

// At returns the frame at index i as a read-only view into the series.
// Callers must not modify the returned slice. Index is the caller's
// responsibility; out-of-range i panics like any slice access.
//
// Complexity: O(1), zero allocations.
func (s *Series) At(i int) []float64 {
	return s.data[i*s.dim : (i+1)*s.dim : (i+1)*s.dim]
}

// Value returns channel c of the frame at index i.
func (s *Series) Value(i, c int) float64 {
	return s.data[i*s.dim+c]
}

// Values returns a copy of a univariate series' observations.
// For multivariate series it returns channel 0 (the common quick-look).
//
// Complexity: O(n).
func (s *Series) Values() []float64 {
	n := s.Len()
	out := make([]float64, n)
	if s.dim == 1 {
		copy(out, s.data)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = s.data[i*s.dim]
	}
	return out
}

// Clone returns a deep copy. Useful when a caller wants a mutable-safe
// center snapshot; Series itself never requires it.
func (s *Series) Clone() *Series {
	data := make([]float64, len(s.data))
	copy(data, s.data)
	return &Series{data: data, dim: s.dim}
}

// Equal reports whether s and o have identical shape and all values
// within tol of each other. A negative tol means exact equality.
//
// Complexity: O(n·d).
func (s *Series) Equal(o *Series, tol float64) bool {
	if s.Len() != o.Len() || s.dim != o.dim {
		return false
	}
	if tol < 0 {
		tol = 0
	}
	for i, v := range s.data {
		if math.Abs(v-o.data[i]) > tol {
			return false
		}
	}
	return true
}
