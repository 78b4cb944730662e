// Package cluster - center update (averaging) procedures.
//
// Three Averager variants behind the AveragingMethod tag:
//
//   - mean:   elementwise arithmetic mean, equal lengths required.
//   - DBA:    DTW Barycenter Averaging — repeatedly align every member to
//     the reference along the metric's warping path and replace each
//     reference frame with the mean of everything mapped onto it.
//   - medoid: the member minimizing total distance to the rest; the
//     center is always an existing series.
//
// Parallelism: DBA's per-member alignments and the medoid's per-member
// distance sums are independent, so they fan out under errgroup into
// disjoint slots. Reductions stay sequential — float accumulation order
// is part of determinism here.
package cluster

import (
	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// meanAverager computes the elementwise arithmetic mean.
type meanAverager struct{}

// Update implements Averager.
//
// Errors: ErrUnequalLengths when members differ in length.
//
// Complexity: O(members·n·d).
func (meanAverager) Update(members []*series.Series, current *series.Series) (*series.Series, error) {
	if len(members) == 0 {
		return current, nil
	}
	n, dim := members[0].Len(), members[0].Dim()
	for _, m := range members[1:] {
		if m.Len() != n {
			return nil, ErrUnequalLengths
		}
	}

	frames := make([][]float64, n)
	inv := 1 / float64(len(members))
	var (
		t int
		m *series.Series
	)
	for t = 0; t < n; t++ {
		acc := make([]float64, dim)
		for _, m = range members {
			floats.Add(acc, m.At(t))
		}
		floats.Scale(inv, acc)
		frames[t] = acc
	}
	return series.FromFrames(frames)
}

// dbaAverager refines a synthetic center toward the cluster barycenter
// under the configured path metric.
type dbaAverager struct {
	metric  elastic.PathMetric
	rounds  int
	workers int
}

// Update implements Averager.
//
// Per round: every member is aligned against the current reference (in
// parallel), then each reference frame becomes the mean of all member
// frames its index attracted. Alignments are recomputed every round —
// the reference changed, so cached paths would be wrong. A reference
// frame that attracted nothing (possible with sparse LCSS paths) keeps
// its previous value.
//
// A single member with one round reproduces that member exactly: every
// self-alignment frame bucket holds just the matching member frames.
//
// Complexity: O(rounds · members · n·m) alignment work.
func (d dbaAverager) Update(members []*series.Series, current *series.Series) (*series.Series, error) {
	if len(members) == 0 {
		return current, nil
	}
	ref := current
	if ref == nil {
		ref = members[0]
	}

	paths := make([]elastic.Path, len(members))
	for round := 0; round < d.rounds; round++ {
		// Phase 1: independent alignments into disjoint slots.
		g := new(errgroup.Group)
		g.SetLimit(d.workers)
		for i := range members {
			i := i
			g.Go(func() error {
				_, p, err := d.metric.Alignment(ref, members[i])
				if err != nil {
					return err
				}
				paths[i] = p
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		// Phase 2: sequential accumulate-then-divide merge.
		n, dim := ref.Len(), ref.Dim()
		sums := make([][]float64, n)
		counts := make([]int, n)
		for t := range sums {
			sums[t] = make([]float64, dim)
		}
		for i, p := range paths {
			for _, c := range p {
				floats.Add(sums[c.I], members[i].At(c.J))
				counts[c.I]++
			}
		}

		frames := make([][]float64, n)
		for t := 0; t < n; t++ {
			if counts[t] == 0 {
				frames[t] = append([]float64(nil), ref.At(t)...)
				continue
			}
			floats.Scale(1/float64(counts[t]), sums[t])
			frames[t] = sums[t]
		}

		next, err := series.FromFrames(frames)
		if err != nil {
			return nil, err
		}
		ref = next
	}
	return ref, nil
}

// medoidAverager selects the member with the minimal summed distance to
// every other member; ties break toward the lowest member index.
type medoidAverager struct {
	metric  elastic.Metric
	workers int
}

// Update implements Averager.
//
// Complexity: O(members² / 2) metric evaluations, fanned out per member.
func (md medoidAverager) Update(members []*series.Series, current *series.Series) (*series.Series, error) {
	if len(members) == 0 {
		return current, nil
	}
	if len(members) == 1 {
		return members[0], nil
	}

	totals := make([]float64, len(members))
	g := new(errgroup.Group)
	g.SetLimit(md.workers)
	for i := range members {
		i := i
		g.Go(func() error {
			var sum float64
			for j := range members {
				if j == i {
					continue
				}
				dist, err := md.metric.Distance(members[i], members[j])
				if err != nil {
					return err
				}
				sum += dist
			}
			totals[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for i := 1; i < len(totals); i++ {
		if totals[i] < totals[best] {
			best = i
		}
	}
	return members[best], nil
}
