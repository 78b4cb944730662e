// Package elastic: LCSS — longest common subsequence distance.
//
// Description:
//
//	Two frames "match" when their Euclidean difference is within
//	Epsilon (and, if a band is set, their indices within Window).
//	The DP counts the longest chain of matches preserving order:
//
//	  L[i][j] = L[i-1][j-1] + 1                 if frames match
//	          = max(L[i-1][j], L[i][j-1])       otherwise
//
//	distance = 1 − L[n][m] / min(n, m) ∈ [0, 1].
//
// LCSS ignores how far apart non-matching frames are, which makes it
// robust to outliers at the cost of a coarser scale.
//
// Complexity: Time O(n·m); Memory O(m) for Distance, O(n·m) for Alignment.
package elastic

import "github.com/katalvlaran/tscluster/series"

// LCSS is the longest-common-subsequence measure.
//
// Epsilon is the matching threshold (≥ 0; 0 requires exact frame
// equality). Window follows the shared Sakoe–Chiba semantics.
type LCSS struct {
	Window  int
	Epsilon float64
}

// NewLCSS returns an LCSS measure with the given window and threshold.
func NewLCSS(window int, epsilon float64) LCSS {
	return LCSS{Window: window, Epsilon: epsilon}
}

// Name implements Metric.
func (LCSS) Name() string { return "lcss" }

// Distance implements Metric.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadWindow, ErrBadEpsilon.
func (l LCSS) Distance(a, b *series.Series) (float64, error) {
	n, m, err := l.check(a, b)
	if err != nil {
		return 0, err
	}

	// rolling two-row count DP
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			switch {
			case inBand(i, j, l.Window) && l2(a.At(i-1), b.At(j-1)) <= l.Epsilon:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return lcssScore(prev[m], n, m), nil
}

// Alignment implements PathMetric. The path holds ONLY the matched
// pairs (the common subsequence), so its length equals L[n][m]; callers
// averaging along it must tolerate reference indices with no match.
//
// Backtrack rule: diagonal when the cell extends a match, otherwise the
// larger of up/left with up preferred — the max-DP analogue of this
// package's diagonal > up > left contract.
func (l LCSS) Alignment(a, b *series.Series) (float64, Path, error) {
	n, m, err := l.check(a, b)
	if err != nil {
		return 0, nil, err
	}

	// full count matrix
	L := make([][]int, n+1)
	for i := range L {
		L[i] = make([]int, m+1)
	}
	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			switch {
			case inBand(i, j, l.Window) && l2(a.At(i-1), b.At(j-1)) <= l.Epsilon:
				L[i][j] = L[i-1][j-1] + 1
			case L[i-1][j] >= L[i][j-1]:
				L[i][j] = L[i-1][j]
			default:
				L[i][j] = L[i][j-1]
			}
		}
	}

	path := make(Path, 0, L[n][m])
	i, j = n, m
	for i > 0 && j > 0 {
		switch {
		case inBand(i, j, l.Window) &&
			l2(a.At(i-1), b.At(j-1)) <= l.Epsilon &&
			L[i][j] == L[i-1][j-1]+1:
			path = append(path, Coord{I: i - 1, J: j - 1})
			i--
			j--
		case L[i-1][j] >= L[i][j-1]:
			i--
		default:
			j--
		}
	}
	for lo, hi := 0, len(path)-1; lo < hi; lo, hi = lo+1, hi-1 {
		path[lo], path[hi] = path[hi], path[lo]
	}
	return lcssScore(L[n][m], n, m), path, nil
}

// check validates LCSS parameters plus the shared pair preconditions.
func (l LCSS) check(a, b *series.Series) (int, int, error) {
	if err := checkWindow(l.Window); err != nil {
		return 0, 0, err
	}
	if l.Epsilon < 0 {
		return 0, 0, ErrBadEpsilon
	}
	return checkPair(a, b)
}

// lcssScore converts a subsequence length into the [0,1] distance.
func lcssScore(length, n, m int) float64 {
	shorter := n
	if m < shorter {
		shorter = m
	}
	return 1 - float64(length)/float64(shorter)
}
