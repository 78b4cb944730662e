// Package elastic computes elastic distance measures between time
// series, with optional alignment paths recovered from the dynamic
// program.
//
// 🚀 What is an elastic measure?
//
//	A distance that is allowed to stretch and compress the time axis
//	while comparing two sequences. The family implemented here:
//	  • Euclidean — strict lock-step baseline (equal lengths only)
//	  • DTW / DDTW — dynamic time warping, raw or on first derivatives
//	  • WDTW / WDDTW — logistic phase-difference weighting
//	  • LCSS — longest common subsequence under an ε threshold
//	  • ERP — edit distance with a real gap value g
//	  • MSM — move–split–merge edit operations
//	  • TWE — time warp edit with stiffness ν and edit penalty λ
//
// ✨ Key features:
//
//   - One DP engine: every min-DP measure is a recurrence plugged into
//     a shared rolling (distance-only, O(m) memory) or full-matrix
//     (alignment, O(n·m) memory) evaluator
//   - Sakoe–Chiba band: Window ≥ 0 restricts |i−j| ≤ Window; Window = -1
//     disables the constraint; cells outside the band cost +Inf
//   - Deterministic backtracking: the minimum-cost predecessor wins,
//     ties broken diagonal > up > left, so alignment paths (and DBA
//     built on them) are reproducible
//   - Multivariate throughout: local costs are computed on frame
//     vectors, univariate is the width-1 case
//
// ⚙️ Usage:
//
//	m := elastic.NewDTW(10)          // Sakoe–Chiba band ±10
//	dist, err := m.Distance(a, b)
//	dist, path, err := m.Alignment(a, b)
//
// Performance: O(n·m) time for all DP measures (O(n·w) inside a band of
// width w); O(min(n,m)) memory for Distance, O(n·m) for Alignment.
package elastic
