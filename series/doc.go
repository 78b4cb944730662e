// Package series defines the value types every other tscluster package
// consumes: an immutable time series and a homogeneous dataset of them.
//
// 🚀 What is a Series?
//
//	An ordered sequence of numeric observations, each observation a
//	fixed-width vector of channel values (width 1 for the univariate
//	case). Storage is a single flat []float64 with a channel stride,
//	so frame access is a cheap re-slice, never a copy.
//
// ✨ Guarantees:
//
//   - Immutable – constructors copy their input; accessors hand out
//     read-only views. A Series never changes after New/NewMultivariate.
//   - Validated once – rectangular frames, finite values, non-empty
//     data are checked at construction, so downstream algorithms can
//     skip per-call revalidation.
//   - Homogeneous datasets – NewDataset rejects mixed channel counts;
//     lengths may differ (elastic measures tolerate that; strict
//     measures re-check at call time).
//
// Errors are package-level sentinels (ErrEmptySeries, ErrRaggedFrames,
// ErrNaNInf, ErrDimensionMismatch) matched via errors.Is.
package series
