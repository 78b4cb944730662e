// Package cluster - center initialization strategies.
//
// Three built-in Initializer variants, all deterministic under a seeded
// rng:
//
//   - Forgy:     k distinct series sampled uniformly without replacement.
//   - Random:    uniform random labels, centers = averager over each group.
//   - k-means++: D² sampling — each next center is drawn with probability
//     proportional to the squared distance to its nearest chosen center.
//
// The controller resolves the InitMethod tag to one of these in
// NewKMeans; adding a strategy means adding a tag case here, never
// touching the Lloyd's loop.
package cluster

import (
	"math/rand"

	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// forgyInit samples k distinct series as centers.
type forgyInit struct {
	k int
}

// Initialize implements Initializer.
//
// Errors: ErrInsufficientData.
//
// Complexity: O(n) for the permutation.
func (f forgyInit) Initialize(ds *series.Dataset, rng *rand.Rand) ([]*series.Series, error) {
	n := ds.Len()
	if n < f.k {
		return nil, ErrInsufficientData
	}

	perm := rng.Perm(n)
	centers := make([]*series.Series, f.k)
	for c := 0; c < f.k; c++ {
		centers[c] = ds.At(perm[c])
	}
	return centers, nil
}

// randomInit labels every series uniformly at random and averages each
// group into a center. An empty random group (possible for small n or
// unlucky draws) is resolved by the controller's empty-cluster fallback
// before the first real iteration: its center becomes the series
// farthest from its own group's center.
type randomInit struct {
	k      int
	metric elastic.Metric
	avg    Averager
}

// Initialize implements Initializer.
//
// Errors: ErrInsufficientData, plus any averager error.
//
// Complexity: O(n) labeling + k averager invocations.
func (r randomInit) Initialize(ds *series.Dataset, rng *rand.Rand) ([]*series.Series, error) {
	n := ds.Len()
	if n < r.k {
		return nil, ErrInsufficientData
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(r.k)
	}

	var (
		centers = make([]*series.Series, r.k)
		empty   []int
		err     error
	)
	for c := 0; c < r.k; c++ {
		members := gather(ds, labels, c)
		if len(members) == 0 {
			empty = append(empty, c)
			continue
		}
		if centers[c], err = r.avg.Update(members, nil); err != nil {
			return nil, err
		}
	}

	if len(empty) > 0 {
		dists, derr := ownCenterDistances(ds, labels, centers, r.metric)
		if derr != nil {
			return nil, derr
		}
		if err = reseedEmptyClusters(ds, centers, empty, dists); err != nil {
			return nil, err
		}
	}
	return centers, nil
}

// kmeansPPInit spreads centers with D² sampling.
type kmeansPPInit struct {
	k      int
	metric elastic.Metric
}

// Initialize implements Initializer.
//
// Errors: ErrInsufficientData, plus any metric error.
//
// Complexity: O(k·n) metric evaluations.
func (p kmeansPPInit) Initialize(ds *series.Dataset, rng *rand.Rand) ([]*series.Series, error) {
	n := ds.Len()
	if n < p.k {
		return nil, ErrInsufficientData
	}

	centers := make([]*series.Series, 0, p.k)
	centers = append(centers, ds.At(rng.Intn(n)))

	// d2[i] tracks the squared distance to the nearest chosen center;
	// refreshed incrementally against only the newest center.
	d2 := make([]float64, n)
	for i := range d2 {
		d, err := p.metric.Distance(ds.At(i), centers[0])
		if err != nil {
			return nil, err
		}
		d2[i] = d * d
	}

	for len(centers) < p.k {
		next := weightedIndex(d2, rng)
		centers = append(centers, ds.At(next))
		if len(centers) == p.k {
			break
		}
		latest := centers[len(centers)-1]
		for i := range d2 {
			d, err := p.metric.Distance(ds.At(i), latest)
			if err != nil {
				return nil, err
			}
			if s := d * d; s < d2[i] {
				d2[i] = s
			}
		}
	}
	return centers, nil
}

// gather collects the members of cluster c in dataset order.
func gather(ds *series.Dataset, labels []int, c int) []*series.Series {
	var members []*series.Series
	for i, l := range labels {
		if l == c {
			members = append(members, ds.At(i))
		}
	}
	return members
}

// ownCenterDistances returns, per series, the distance to the center of
// its own label. Labels pointing at a nil center (an empty cluster being
// reseeded) yield 0, keeping those series out of the farthest search.
func ownCenterDistances(ds *series.Dataset, labels []int, centers []*series.Series, m elastic.Metric) ([]float64, error) {
	dists := make([]float64, ds.Len())
	for i, l := range labels {
		if centers[l] == nil {
			continue
		}
		d, err := m.Distance(ds.At(i), centers[l])
		if err != nil {
			return nil, err
		}
		dists[i] = d
	}
	return dists, nil
}

// reseedEmptyClusters applies the deterministic empty-cluster policy:
// each empty cluster (ascending index) takes as its center the series
// farthest from its own assigned center, lowest index on ties, each
// series used at most once.
func reseedEmptyClusters(ds *series.Dataset, centers []*series.Series, empty []int, ownDist []float64) error {
	taken := make(map[int]bool, len(empty))
	for _, c := range empty {
		best, bestDist := -1, -1.0
		for i, d := range ownDist {
			if taken[i] {
				continue
			}
			if d > bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return ErrInsufficientData
		}
		taken[best] = true
		centers[c] = ds.At(best)
	}
	return nil
}
