// Package cluster - the Lloyd's-loop controller.
//
// State machine: Uninitialized → Initialized → (Assigning ⇄ Updating) →
// Converged | IterationLimitReached. The loop is strictly sequential —
// assignment must see the latest centers, update the latest assignment —
// while the work inside each phase fans out across workers with disjoint
// output slots.
//
// Design principles:
//   - Fail fast: all validation happens before the first iteration.
//   - Deterministic: ties break toward the lowest index everywhere; float
//     reductions are sequential; one seed drives all randomness.
//   - A Model is only built from a fully completed assignment against the
//     final centers — never from a half-finished phase.
package cluster

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// KMeans is the configured (not yet fitted) clustering engine. Safe to
// reuse: every Fit call is independent and starts from the seed.
type KMeans struct {
	cfg     Config
	init    Initializer
	avg     Averager
	workers int
	log     io.Writer
}

// NewKMeans validates cfg and resolves its tags into concrete
// initializer and averager capabilities.
//
// Errors: ErrBadClusterCount, ErrNilMetric, ErrBadInitMethod,
// ErrBadAveragingMethod, ErrBadMaxIter, ErrBadTolerance,
// ErrBadAveragingIterations, ErrPathMetricRequired.
func NewKMeans(cfg Config) (*KMeans, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var avg Averager
	switch cfg.Averaging {
	case AverageMean:
		avg = meanAverager{}
	case AverageDBA:
		// validated: the metric implements PathMetric
		avg = dbaAverager{
			metric:  cfg.Metric.(elastic.PathMetric),
			rounds:  cfg.AveragingIterations,
			workers: workers,
		}
	case AverageMedoid:
		avg = medoidAverager{metric: cfg.Metric, workers: workers}
	}

	var init Initializer
	switch cfg.Init {
	case InitForgy:
		init = forgyInit{k: cfg.NumClusters}
	case InitRandom:
		init = randomInit{k: cfg.NumClusters, metric: cfg.Metric, avg: avg}
	case InitKMeansPP:
		init = kmeansPPInit{k: cfg.NumClusters, metric: cfg.Metric}
	}

	log := cfg.Log
	if log == nil {
		log = io.Discard
	}

	return &KMeans{cfg: cfg, init: init, avg: avg, workers: workers, log: log}, nil
}

// NewKMedoids is NewKMeans with medoid averaging forced — the k-medoids
// variant of the engine.
func NewKMedoids(cfg Config) (*KMeans, error) {
	cfg.Averaging = AverageMedoid
	return NewKMeans(cfg)
}

// Fit partitions ds into NumClusters groups and returns the fitted
// Model. ds is borrowed, never mutated.
//
// Errors: ErrNilDataset, ErrInsufficientData, ErrUnequalLengths, plus
// any metric parameter error — all surfaced before the first iteration.
//
// Complexity per iteration: O(n·k) metric evaluations for assignment
// plus the averager's update cost per cluster.
func (km *KMeans) Fit(ds *series.Dataset) (*Model, error) {
	if err := validateDataset(ds, km.cfg); err != nil {
		return nil, err
	}

	var (
		n       = ds.Len()
		rng     = rngFromSeed(km.cfg.Seed)
		labels  = make([]int, n)
		dists   = make([]float64, n)
		iters   = 0
		converg = false
	)

	centers, err := km.init.Initialize(ds, rng)
	if err != nil {
		return nil, err
	}

	for iter := 1; iter <= km.cfg.MaxIter; iter++ {
		iters = iter

		// Assigning: nearest center per series, disjoint slots.
		changed, aerr := km.assign(ds, centers, labels, dists)
		if aerr != nil {
			return nil, aerr
		}
		inertia := floats.Sum(dists)
		if km.cfg.Verbose {
			fmt.Fprintf(km.log, "iter %d: inertia=%g changed=%d\n", iter, inertia, changed)
		}
		if changed == 0 && iter > 1 {
			converg = true
			break
		}

		// Updating: new center per cluster; empty clusters reseeded first.
		next, uerr := km.update(ds, centers, labels, dists)
		if uerr != nil {
			return nil, uerr
		}

		shift, serr := km.maxShift(centers, next)
		if serr != nil {
			return nil, serr
		}
		centers = next
		if shift <= km.cfg.Tolerance {
			converg = true
			break
		}
	}

	// Final assignment against the final centers, so the Model's labels
	// and inertia always describe the centers it carries.
	if _, err = km.assign(ds, centers, labels, dists); err != nil {
		return nil, err
	}

	model := &Model{
		Centers:   centers,
		Labels:    append([]int(nil), labels...),
		Inertia:   floats.Sum(dists),
		NIters:    iters,
		Converged: converg,
		metric:    km.cfg.Metric,
		dim:       ds.Dim(),
		workers:   km.workers,
	}
	return model, nil
}

// assign labels every series with its nearest center (ties → lowest
// cluster index) and records the chosen distance. Returns how many
// labels changed.
func (km *KMeans) assign(ds *series.Dataset, centers []*series.Series, labels []int, dists []float64) (int, error) {
	return assignNearest(ds, centers, km.cfg.Metric, km.workers, labels, dists)
}

// update derives the next generation of centers from the current
// assignment. Empty clusters are reseeded sequentially (the policy needs
// a global farthest search), then the per-cluster averager calls fan
// out.
func (km *KMeans) update(ds *series.Dataset, centers []*series.Series, labels []int, dists []float64) ([]*series.Series, error) {
	k := km.cfg.NumClusters
	next := make([]*series.Series, k)

	var empty []int
	memberSets := make([][]*series.Series, k)
	for c := 0; c < k; c++ {
		memberSets[c] = gather(ds, labels, c)
		if len(memberSets[c]) == 0 {
			empty = append(empty, c)
		}
	}
	if len(empty) > 0 {
		if err := reseedEmptyClusters(ds, next, empty, dists); err != nil {
			return nil, err
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(km.workers)
	for c := 0; c < k; c++ {
		if next[c] != nil { // reseeded
			continue
		}
		c := c
		g.Go(func() error {
			center, err := km.avg.Update(memberSets[c], centers[c])
			if err != nil {
				return err
			}
			next[c] = center
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

// maxShift returns the largest center-to-previous-center distance under
// the configured metric — the convergence criterion.
func (km *KMeans) maxShift(prev, next []*series.Series) (float64, error) {
	var shift float64
	for c := range prev {
		d, err := km.cfg.Metric.Distance(prev[c], next[c])
		if err != nil {
			return 0, err
		}
		if d > shift {
			shift = d
		}
	}
	return shift, nil
}

// assignNearest is the shared single-pass assignment used by both the
// controller and Model.Predict.
func assignNearest(ds *series.Dataset, centers []*series.Series, metric elastic.Metric, workers int, labels []int, dists []float64) (int, error) {
	g := new(errgroup.Group)
	g.SetLimit(workers)

	changes := make([]int, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		i := i
		g.Go(func() error {
			best, bestDist := -1, 0.0
			for c, center := range centers {
				d, err := metric.Distance(ds.At(i), center)
				if err != nil {
					return err
				}
				if best < 0 || d < bestDist {
					best, bestDist = c, d
				}
			}
			if labels[i] != best {
				changes[i] = 1
			}
			labels[i] = best
			dists[i] = bestDist
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var changed int
	for _, c := range changes {
		changed += c
	}
	return changed, nil
}
