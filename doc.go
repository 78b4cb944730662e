// Package tscluster is your in-memory toolkit for grouping time series —
// from elastic distance measures to barycenter averaging and full
// k-means / k-medoids partitioning.
//
// 🚀 What is tscluster?
//
//	A modern, deterministic library that brings together:
//		• Series primitives: immutable uni- and multivariate sequences
//		• Elastic distances: Euclidean, DTW, DDTW, WDTW, WDDTW, LCSS, ERP, MSM, TWE
//		• Alignment paths: exact warping paths for every DP-based measure
//		• Initialization: random assignment, Forgy, k-means++
//		• Averaging: arithmetic mean, DTW Barycenter Averaging (DBA), medoid
//		• Lloyd's loop: assign → update → converge, with a fitted Model
//
// ✨ Why choose tscluster?
//
//   - Reproducible – every stochastic step is driven by an explicit seed
//   - Rock-solid guarantees – sentinel errors, fail-fast validation, no panics
//   - Parallel inside, sequential outside – phases fan out across workers,
//     the loop itself stays strictly ordered
//   - Extensible – Metric, Initializer and Averager are small capabilities;
//     new variants slot in without touching the controller
//
// Everything is organized under three subpackages:
//
//	series/  — Series and Dataset value types
//	elastic/ — the elastic distance family + warping paths
//	cluster/ — initializers, averagers, Lloyd's-loop controller, Model
//
// Quick example:
//
//	ds, _ := series.NewDataset(
//		series.MustNew([]float64{0, 0, 0}),
//		series.MustNew([]float64{0, 0, 1}),
//		series.MustNew([]float64{5, 5, 5}),
//		series.MustNew([]float64{5, 5, 6}),
//	)
//
//	cfg := cluster.DefaultConfig()
//	cfg.NumClusters = 2
//	cfg.Metric = elastic.NewDTW(-1)
//	cfg.Averaging = cluster.AverageDBA
//
//	km, _ := cluster.NewKMeans(cfg)
//	model, _ := km.Fit(ds)
//	fmt.Println(model.Labels, model.Inertia)
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/tscluster
package tscluster
