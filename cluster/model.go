// Package cluster - the fitted Model.
package cluster

import (
	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// Model holds the outcome of a completed Fit. Immutable by convention:
// downstream consumers (evaluation, plotting) read Centers/Labels/
// Inertia/NIters without re-deriving them, and nothing in this package
// writes to a Model after construction.
type Model struct {
	// Centers are the k fitted representatives, in cluster-index order.
	// Mean/DBA centers are synthetic series; medoid centers are members
	// of the training dataset.
	Centers []*series.Series

	// Labels maps training-series index → cluster index in [0,k).
	Labels []int

	// Inertia is the sum over training series of the distance to the
	// assigned center, in the metric's natural scale.
	Inertia float64

	// NIters is the number of Lloyd iterations executed.
	// NIters == MaxIter together with Converged == false means the
	// iteration budget ran out — a normal terminal state.
	NIters int

	// Converged reports whether a convergence criterion (stable labels or
	// center shift ≤ tolerance) was met within the budget.
	Converged bool

	metric  elastic.Metric
	dim     int
	workers int
}

// Predict assigns every series of ds to its nearest fitted center — a
// single Assigning-equivalent pass, no updating. ds may be the training
// dataset or new data with the same channel count.
//
// Errors: ErrNilDataset, series.ErrDimensionMismatch, plus any metric
// error on incompatible series.
//
// Complexity: O(ds.Len()·k) metric evaluations.
func (m *Model) Predict(ds *series.Dataset) ([]int, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrNilDataset
	}
	if ds.Dim() != m.dim {
		return nil, series.ErrDimensionMismatch
	}

	labels := make([]int, ds.Len())
	dists := make([]float64, ds.Len())
	if _, err := assignNearest(ds, m.Centers, m.metric, m.workers, labels, dists); err != nil {
		return nil, err
	}
	return labels, nil
}

// K returns the number of clusters the model was fitted with.
func (m *Model) K() int { return len(m.Centers) }
