// Package series: the Dataset collection type.
//
// A Dataset is an ordered, dimensionally homogeneous collection of
// Series. The clustering engine borrows a Dataset for the duration of a
// fit and never mutates it; ownership stays with the caller.
package series

import "errors"

// ErrEmptyDataset is returned when a Dataset is constructed with no series.
var ErrEmptyDataset = errors.New("series: dataset must be non-empty")

// ErrNilSeries is returned when a nil *Series is passed into a Dataset.
var ErrNilSeries = errors.New("series: nil series")

// Dataset is an ordered collection of Series sharing one channel count.
// Series lengths may differ; measures that require equal lengths
// re-check at call time.
type Dataset struct {
	items []*Series
	dim   int
}

// NewDataset constructs a Dataset from the given series.
// The slice header is copied; the Series pointers are shared (Series are
// immutable, so sharing is safe).
//
// Errors: ErrEmptyDataset, ErrNilSeries, ErrDimensionMismatch.
//
// Complexity: O(n).
func NewDataset(items ...*Series) (*Dataset, error) {
	if len(items) == 0 {
		return nil, ErrEmptyDataset
	}
	for _, s := range items {
		if s == nil {
			return nil, ErrNilSeries
		}
	}
	dim := items[0].Dim()
	for _, s := range items[1:] {
		if s.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
	}
	own := make([]*Series, len(items))
	copy(own, items)
	return &Dataset{items: own, dim: dim}, nil
}

// Len returns the number of series in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Dim returns the shared channel count of all member series.
func (d *Dataset) Dim() int {
	if d == nil {
		return 0
	}
	return d.dim
}

// At returns the series at index i. Out-of-range i panics like any slice
// access; indices come from the dataset's own [0,Len) range.
func (d *Dataset) At(i int) *Series {
	return d.items[i]
}

// Append returns a new Dataset extended with s; d itself is unchanged.
//
// Errors: ErrNilSeries, ErrDimensionMismatch.
func (d *Dataset) Append(s *Series) (*Dataset, error) {
	if s == nil {
		return nil, ErrNilSeries
	}
	if s.Dim() != d.dim {
		return nil, ErrDimensionMismatch
	}
	items := make([]*Series, len(d.items)+1)
	copy(items, d.items)
	items[len(d.items)] = s
	return &Dataset{items: items, dim: d.dim}, nil
}

// EqualLengths reports whether every series in the dataset has the same
// number of observations. Strict measures (Euclidean, mean averaging)
// require this.
func (d *Dataset) EqualLengths() bool {
	n := d.items[0].Len()
	for _, s := range d.items[1:] {
		if s.Len() != n {
			return false
		}
	}
	return true
}
