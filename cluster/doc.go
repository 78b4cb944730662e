// Package cluster partitions a dataset of time series into k groups
// around representative centers, using any elastic distance measure and
// a pluggable averaging procedure.
//
// 🚀 What is in here?
//
//	The full Lloyd's-loop machinery:
//	  • Initializers — random assignment, Forgy, k-means++
//	  • Averagers — arithmetic mean, DTW Barycenter Averaging (DBA), medoid
//	  • KMeans — the initialize → assign → update → converge controller
//	  • Model — fitted centers, labels, inertia, iteration count, Predict
//
// ✨ Guarantees:
//
//   - Fail-fast: every configuration and dataset problem is surfaced
//     before the first iteration; a Fit either completes or never starts
//   - Deterministic: one explicit seed drives every stochastic step;
//     identical seed + dataset ⇒ identical model
//   - Hitting MaxIter is a normal terminal state (Converged=false on the
//     Model), never an error
//   - Phases fan out across Workers goroutines with disjoint output
//     slots; reductions stay sequential so float results are stable
//
// ⚙️ Usage:
//
//	cfg := cluster.DefaultConfig()
//	cfg.NumClusters = 3
//	cfg.Metric = elastic.NewDTW(10)
//	cfg.Averaging = cluster.AverageDBA
//	cfg.Seed = 42
//
//	km, err := cluster.NewKMeans(cfg)
//	model, err := km.Fit(ds)
//	labels, err := model.Predict(other)
//
// k-medoids is the same controller with medoid averaging; use
// NewKMedoids or set Averaging=AverageMedoid yourself.
package cluster
