// Package cluster: configuration surface and sentinel error set.
//
// This file defines ONLY the package-level contracts. All controller
// stages MUST return these sentinels and tests MUST check them via
// errors.Is. No stage panics on user input.
package cluster

import (
	"errors"
	"io"
	"math/rand"

	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

var (
	// ErrBadClusterCount indicates NumClusters ≤ 0.
	ErrBadClusterCount = errors.New("cluster: number of clusters must be positive")

	// ErrNilMetric indicates Config.Metric was left nil.
	ErrNilMetric = errors.New("cluster: metric must not be nil")

	// ErrBadInitMethod indicates an InitMethod outside the defined set.
	ErrBadInitMethod = errors.New("cluster: unknown initialization method")

	// ErrBadAveragingMethod indicates an AveragingMethod outside the defined set.
	ErrBadAveragingMethod = errors.New("cluster: unknown averaging method")

	// ErrBadMaxIter indicates MaxIter ≤ 0.
	ErrBadMaxIter = errors.New("cluster: max iterations must be positive")

	// ErrBadAveragingIterations indicates AveragingIterations ≤ 0 with DBA.
	ErrBadAveragingIterations = errors.New("cluster: averaging iterations must be positive")

	// ErrBadTolerance indicates a negative convergence tolerance.
	ErrBadTolerance = errors.New("cluster: tolerance must be non-negative")

	// ErrPathMetricRequired indicates DBA was selected with a metric that
	// cannot produce alignment paths.
	ErrPathMetricRequired = errors.New("cluster: DBA requires a path-capable metric")

	// ErrNilDataset indicates Fit/Predict received a nil dataset.
	ErrNilDataset = errors.New("cluster: dataset must not be nil")

	// ErrInsufficientData indicates the dataset holds fewer series than
	// clusters requested.
	ErrInsufficientData = errors.New("cluster: dataset smaller than number of clusters")

	// ErrUnequalLengths indicates mean averaging (or another equal-length
	// stage) met series of different lengths.
	ErrUnequalLengths = errors.New("cluster: equal-length series required")
)

// InitMethod selects the center initialization strategy. The set is
// closed; the controller resolves the tag once during NewKMeans and
// never switches on it again.
type InitMethod int

const (
	// InitForgy samples k distinct series uniformly as the initial centers.
	InitForgy InitMethod = iota

	// InitRandom assigns every series a uniform random label and derives
	// centers from those groups via the configured averager.
	InitRandom

	// InitKMeansPP spreads centers with D² (squared-distance proportional)
	// sampling.
	InitKMeansPP
)

// AveragingMethod selects how a cluster's new center is derived.
type AveragingMethod int

const (
	// AverageMean is the elementwise arithmetic mean (equal lengths only).
	AverageMean AveragingMethod = iota

	// AverageDBA is DTW Barycenter Averaging: iterative alignment-and-
	// average refinement of a synthetic center.
	AverageDBA

	// AverageMedoid selects the member minimizing total distance to the
	// rest of the cluster; centers are always existing series (k-medoids).
	AverageMedoid
)

// Initializer produces k starting centers from a dataset. Deterministic
// given a seeded rng.
type Initializer interface {
	Initialize(ds *series.Dataset, rng *rand.Rand) ([]*series.Series, error)
}

// Averager derives a cluster's new center from its members and the
// current center. Mean/DBA synthesize a series; medoid selects one.
type Averager interface {
	Update(members []*series.Series, current *series.Series) (*series.Series, error)
}

// Config collects every knob of the clustering engine. Zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// NumClusters is k, the number of partitions (> 0).
	NumClusters int

	// Init selects the center initialization strategy.
	Init InitMethod

	// Metric is the pairwise distance; DBA additionally requires it to
	// implement elastic.PathMetric.
	Metric elastic.Metric

	// Averaging selects the center update procedure. AverageMedoid turns
	// the engine into k-medoids.
	Averaging AveragingMethod

	// AveragingIterations bounds DBA refinement rounds per update (> 0;
	// ignored by mean and medoid).
	AveragingIterations int

	// MaxIter bounds Lloyd's-loop rounds (> 0). Exhausting it is a normal
	// terminal state, not an error.
	MaxIter int

	// Tolerance is the convergence threshold on the maximum
	// center-to-previous-center distance (≥ 0).
	Tolerance float64

	// Seed drives every stochastic step; 0 selects a fixed default seed,
	// so runs are reproducible either way.
	Seed int64

	// Workers bounds phase parallelism; ≤ 0 means GOMAXPROCS.
	Workers int

	// Verbose emits one line per iteration to Log.
	Verbose bool

	// Log receives verbose output; nil means discard.
	Log io.Writer
}

// DefaultConfig mirrors the customary defaults of the estimator family
// this package implements: Forgy init, unconstrained DTW, mean
// averaging, 8 clusters.
func DefaultConfig() Config {
	return Config{
		NumClusters:         8,
		Init:                InitForgy,
		Metric:              elastic.NewDTW(-1),
		Averaging:           AverageMean,
		AveragingIterations: 10,
		MaxIter:             300,
		Tolerance:           1e-6,
	}
}
