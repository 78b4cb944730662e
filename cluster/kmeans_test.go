package cluster_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tscluster/cluster"
	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// twoBlobs is the canonical 4-series fixture: two tight groups around
// 0 and 5.
func twoBlobs(t *testing.T) *series.Dataset {
	t.Helper()
	ds, err := series.NewDataset(
		series.MustNew([]float64{0, 0, 0}),
		series.MustNew([]float64{0, 0, 1}),
		series.MustNew([]float64{5, 5, 5}),
		series.MustNew([]float64{5, 5, 6}),
	)
	require.NoError(t, err)
	return ds
}

// forgySeedPicking finds a seed whose Forgy permutation starts with the
// wanted center indices, by replaying the same draw the initializer
// performs. t.Fatal if no seed below the search bound qualifies.
func forgySeedPicking(t *testing.T, n int, want ...int) int64 {
	t.Helper()
	for seed := int64(1); seed < 10000; seed++ {
		perm := rand.New(rand.NewSource(seed)).Perm(n)
		ok := true
		for i, w := range want {
			if perm[i] != w {
				ok = false
				break
			}
		}
		if ok {
			return seed
		}
	}
	t.Fatal("no qualifying seed found")
	return 0
}

// TestNewKMeans_ConfigValidation walks the fail-fast config sentinels.
func TestNewKMeans_ConfigValidation(t *testing.T) {
	base := cluster.DefaultConfig()

	cfg := base
	cfg.NumClusters = 0
	_, err := cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrBadClusterCount)

	cfg = base
	cfg.Metric = nil
	_, err = cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrNilMetric)

	cfg = base
	cfg.Init = cluster.InitMethod(99)
	_, err = cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrBadInitMethod)

	cfg = base
	cfg.Averaging = cluster.AveragingMethod(99)
	_, err = cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrBadAveragingMethod)

	cfg = base
	cfg.MaxIter = 0
	_, err = cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrBadMaxIter)

	cfg = base
	cfg.Tolerance = -1
	_, err = cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrBadTolerance)

	cfg = base
	cfg.Averaging = cluster.AverageDBA
	cfg.AveragingIterations = 0
	_, err = cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrBadAveragingIterations)
}

// distanceOnlyMetric hides the path capability, for DBA validation.
type distanceOnlyMetric struct{ inner elastic.Metric }

func (d distanceOnlyMetric) Name() string { return d.inner.Name() }
func (d distanceOnlyMetric) Distance(a, b *series.Series) (float64, error) {
	return d.inner.Distance(a, b)
}

// TestNewKMeans_DBANeedsPathMetric rejects DBA with a path-less metric.
func TestNewKMeans_DBANeedsPathMetric(t *testing.T) {
	cfg := cluster.DefaultConfig()
	cfg.Averaging = cluster.AverageDBA
	cfg.Metric = distanceOnlyMetric{inner: elastic.NewDTW(-1)}

	_, err := cluster.NewKMeans(cfg)
	assert.ErrorIs(t, err, cluster.ErrPathMetricRequired)
}

// TestFit_FailFast covers the dataset-level validation stages.
func TestFit_FailFast(t *testing.T) {
	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 2
	cfg.Metric = elastic.NewEuclidean()
	km, err := cluster.NewKMeans(cfg)
	require.NoError(t, err)

	_, err = km.Fit(nil)
	assert.ErrorIs(t, err, cluster.ErrNilDataset)

	tiny, derr := series.NewDataset(series.MustNew([]float64{1}))
	require.NoError(t, derr)
	_, err = km.Fit(tiny)
	assert.ErrorIs(t, err, cluster.ErrInsufficientData)

	// mean averaging demands equal lengths
	ragged, derr := series.NewDataset(
		series.MustNew([]float64{1, 2}),
		series.MustNew([]float64{1, 2, 3}),
	)
	require.NoError(t, derr)
	_, err = km.Fit(ragged)
	assert.ErrorIs(t, err, cluster.ErrUnequalLengths)

	// a strict metric on ragged data fails before the loop even with
	// medoid averaging
	medoidCfg := cfg
	medoidCfg.Averaging = cluster.AverageMedoid
	medoidCfg.NumClusters = 1
	kmed, merr := cluster.NewKMedoids(medoidCfg)
	require.NoError(t, merr)
	_, err = kmed.Fit(ragged)
	assert.ErrorIs(t, err, elastic.ErrLengthMismatch)

	// metric parameter errors surface at Fit start, never mid-loop
	badCfg := cluster.DefaultConfig()
	badCfg.NumClusters = 2
	badCfg.Metric = elastic.NewDTW(-2)
	kbad, berr := cluster.NewKMeans(badCfg)
	require.NoError(t, berr)
	_, err = kbad.Fit(twoBlobs(t))
	assert.ErrorIs(t, err, elastic.ErrBadWindow)
}

// TestFit_TwoBlobScenario is the canonical walkthrough: Forgy picks
// series 0 and 2 as centers; one assignment splits {0,1} from {2,3};
// the mean update lands on [0,0,0.5] and [5,5,5.5]; the next pass
// changes nothing.
func TestFit_TwoBlobScenario(t *testing.T) {
	ds := twoBlobs(t)

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 2
	cfg.Init = cluster.InitForgy
	cfg.Metric = elastic.NewEuclidean()
	cfg.Averaging = cluster.AverageMean
	cfg.Seed = forgySeedPicking(t, 4, 0, 2)

	km, err := cluster.NewKMeans(cfg)
	require.NoError(t, err)
	model, err := km.Fit(ds)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 1, 1}, model.Labels)
	assert.True(t, model.Centers[0].Equal(series.MustNew([]float64{0, 0, 0.5}), 1e-9))
	assert.True(t, model.Centers[1].Equal(series.MustNew([]float64{5, 5, 5.5}), 1e-9))
	assert.True(t, model.Converged)
	assert.LessOrEqual(t, model.NIters, 2, "the fixture converges within two iterations")
	assert.InDelta(t, 2.0, model.Inertia, 1e-9, "four members at distance 0.5 each")
}

// TestFit_LabelsAlwaysTotal: every series gets exactly one label in
// [0,k), whatever the configuration.
func TestFit_LabelsAlwaysTotal(t *testing.T) {
	ds := twoBlobs(t)

	for _, init := range []cluster.InitMethod{cluster.InitForgy, cluster.InitRandom, cluster.InitKMeansPP} {
		cfg := cluster.DefaultConfig()
		cfg.NumClusters = 2
		cfg.Init = init
		cfg.Metric = elastic.NewDTW(-1)
		cfg.Seed = 11

		km, err := cluster.NewKMeans(cfg)
		require.NoError(t, err)
		model, err := km.Fit(ds)
		require.NoError(t, err)

		require.Len(t, model.Labels, ds.Len())
		for i, l := range model.Labels {
			assert.GreaterOrEqual(t, l, 0, "series %d", i)
			assert.Less(t, l, 2, "series %d", i)
		}
	}
}

// TestFit_InertiaMonotoneInBudget: re-running the same seeded fit with
// a growing iteration budget can only keep or lower the final inertia
// (Lloyd's monotonicity law).
func TestFit_InertiaMonotoneInBudget(t *testing.T) {
	// 9 series in three loose groups
	ds, err := series.NewDataset(
		series.MustNew([]float64{0, 0, 1}),
		series.MustNew([]float64{1, 0, 0}),
		series.MustNew([]float64{0, 1, 0}),
		series.MustNew([]float64{10, 10, 11}),
		series.MustNew([]float64{11, 10, 10}),
		series.MustNew([]float64{10, 11, 10}),
		series.MustNew([]float64{20, 20, 21}),
		series.MustNew([]float64{21, 20, 20}),
		series.MustNew([]float64{20, 21, 20}),
	)
	require.NoError(t, err)

	prev := -1.0
	for budget := 1; budget <= 6; budget++ {
		cfg := cluster.DefaultConfig()
		cfg.NumClusters = 3
		cfg.Metric = elastic.NewEuclidean()
		cfg.Averaging = cluster.AverageMean
		cfg.Seed = 5
		cfg.MaxIter = budget
		cfg.Tolerance = 0

		km, kerr := cluster.NewKMeans(cfg)
		require.NoError(t, kerr)
		model, ferr := km.Fit(ds)
		require.NoError(t, ferr)

		if prev >= 0 {
			assert.LessOrEqual(t, model.Inertia, prev+1e-9,
				"inertia must not increase when the budget grows (budget=%d)", budget)
		}
		prev = model.Inertia
	}
}

// TestFit_IterationLimitIsNotAnError: exhausting MaxIter returns a
// valid model flagged as not converged.
func TestFit_IterationLimitIsNotAnError(t *testing.T) {
	ds := twoBlobs(t)

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 2
	cfg.Metric = elastic.NewEuclidean()
	cfg.Averaging = cluster.AverageMean
	cfg.Seed = forgySeedPicking(t, 4, 0, 2)
	cfg.MaxIter = 1
	cfg.Tolerance = 0

	km, err := cluster.NewKMeans(cfg)
	require.NoError(t, err)
	model, err := km.Fit(ds)
	require.NoError(t, err)

	assert.Equal(t, 1, model.NIters)
	assert.False(t, model.Converged, "the centers still moved after one round")
	assert.Equal(t, []int{0, 0, 1, 1}, model.Labels, "labels reflect the final centers")
}

// TestFit_EmptyClusterFallback: random initialization that leaves a
// cluster empty must reseed it deterministically, not fail.
func TestFit_EmptyClusterFallback(t *testing.T) {
	ds := twoBlobs(t)

	// replay the random labeling to find a seed leaving label 2 unused
	var seed int64
	for s := int64(1); s < 10000; s++ {
		rng := rand.New(rand.NewSource(s))
		seen := map[int]bool{}
		for i := 0; i < ds.Len(); i++ {
			seen[rng.Intn(3)] = true
		}
		if !seen[2] {
			seed = s
			break
		}
	}
	require.NotZero(t, seed, "no empty-cluster seed found")

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 3
	cfg.Init = cluster.InitRandom
	cfg.Metric = elastic.NewEuclidean()
	cfg.Averaging = cluster.AverageMean
	cfg.Seed = seed

	km, err := cluster.NewKMeans(cfg)
	require.NoError(t, err)

	first, err := km.Fit(ds)
	require.NoError(t, err)
	second, err := km.Fit(ds)
	require.NoError(t, err)

	for c, center := range first.Centers {
		require.NotNil(t, center, "cluster %d must have a center", c)
		assert.True(t, center.Equal(second.Centers[c], 0), "fallback must be deterministic")
	}
	assert.Equal(t, first.Labels, second.Labels)
}

// TestFit_DBAConvergesToBarycenter: one cluster over {[0,0,0],[2,2,2]}
// under DTW+DBA settles on the elementwise midpoint [1,1,1].
func TestFit_DBAConvergesToBarycenter(t *testing.T) {
	ds, err := series.NewDataset(
		series.MustNew([]float64{0, 0, 0}),
		series.MustNew([]float64{2, 2, 2}),
	)
	require.NoError(t, err)

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 1
	cfg.Metric = elastic.NewDTW(-1)
	cfg.Averaging = cluster.AverageDBA
	cfg.AveragingIterations = 5
	cfg.Seed = 3

	km, kerr := cluster.NewKMeans(cfg)
	require.NoError(t, kerr)
	model, ferr := km.Fit(ds)
	require.NoError(t, ferr)

	assert.True(t, model.Centers[0].Equal(series.MustNew([]float64{1, 1, 1}), 1e-9),
		"the DBA barycenter of two constant series is their midpoint")
	assert.InDelta(t, 6.0, model.Inertia, 1e-9, "3 squared units per member")
}

// TestFit_SingleMemberDBAKeepsSeries: a one-member cluster's DBA center
// is that member, unchanged.
func TestFit_SingleMemberDBAKeepsSeries(t *testing.T) {
	only := series.MustNew([]float64{4, 2, 7, 1})
	ds, err := series.NewDataset(only)
	require.NoError(t, err)

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 1
	cfg.Metric = elastic.NewDTW(-1)
	cfg.Averaging = cluster.AverageDBA
	cfg.AveragingIterations = 1

	km, kerr := cluster.NewKMeans(cfg)
	require.NoError(t, kerr)
	model, ferr := km.Fit(ds)
	require.NoError(t, ferr)

	assert.True(t, model.Centers[0].Equal(only, 1e-12))
	assert.Equal(t, 0.0, model.Inertia)
}

// TestFit_KMedoidsPicksMember: medoid centers are existing dataset
// series, with ties resolved toward the lowest index.
func TestFit_KMedoidsPicksMember(t *testing.T) {
	ds, err := series.NewDataset(
		series.MustNew([]float64{0}),
		series.MustNew([]float64{1}),
		series.MustNew([]float64{10}),
	)
	require.NoError(t, err)

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 1
	cfg.Metric = elastic.NewEuclidean()
	cfg.Seed = 2

	km, kerr := cluster.NewKMedoids(cfg)
	require.NoError(t, kerr)
	model, ferr := km.Fit(ds)
	require.NoError(t, ferr)

	assert.True(t, model.Centers[0].Equal(series.MustNew([]float64{1}), 0),
		"[1] minimizes the summed distance to the others")

	// tie case: both members are equally central; lowest index wins
	tie, terr := series.NewDataset(
		series.MustNew([]float64{0}),
		series.MustNew([]float64{2}),
	)
	require.NoError(t, terr)
	model, ferr = km.Fit(tie)
	require.NoError(t, ferr)
	assert.True(t, model.Centers[0].Equal(series.MustNew([]float64{0}), 0))
}

// TestFit_KMeansPPReproducible: identical seed and dataset ⇒ identical
// model, twice in a row.
func TestFit_KMeansPPReproducible(t *testing.T) {
	ds := twoBlobs(t)

	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 2
	cfg.Init = cluster.InitKMeansPP
	cfg.Metric = elastic.NewDTW(-1)
	cfg.Averaging = cluster.AverageDBA
	cfg.AveragingIterations = 3
	cfg.Seed = 7

	km, err := cluster.NewKMeans(cfg)
	require.NoError(t, err)

	first, err := km.Fit(ds)
	require.NoError(t, err)
	second, err := km.Fit(ds)
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Inertia, second.Inertia)
	assert.Equal(t, first.NIters, second.NIters)
	for c := range first.Centers {
		assert.True(t, first.Centers[c].Equal(second.Centers[c], 0))
	}
}

// TestFit_VerboseTrace: Verbose writes one line per iteration to Log.
func TestFit_VerboseTrace(t *testing.T) {
	ds := twoBlobs(t)

	var buf bytes.Buffer
	cfg := cluster.DefaultConfig()
	cfg.NumClusters = 2
	cfg.Metric = elastic.NewEuclidean()
	cfg.Averaging = cluster.AverageMean
	cfg.Verbose = true
	cfg.Log = &buf

	km, err := cluster.NewKMeans(cfg)
	require.NoError(t, err)
	_, err = km.Fit(ds)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "iter 1:", "the first iteration must be traced")
}
