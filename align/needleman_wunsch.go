package align

// NeedlemanWunsch — exact global alignment by full-matrix dynamic programming.
//
// Description:
//
//	Fills the complete (n+1)x(m+1) score matrix M where M[i][j] is the
//	optimal score of aligning x[:i] against y[:j], then walks back from
//	(n,m) to (0,0) reconstructing one optimal alignment.
//
// Recurrence:
//
//	M[0][0] = 0
//	M[i][0] = i·Gap,  M[0][j] = j·Gap
//	M[i][j] = max( M[i-1][j-1] + score(x[i-1], y[j-1]),
//	               M[i][j-1]   + Gap,
//	               M[i-1][j]   + Gap )
//
// Traceback tie-break (a total order, reproduced by every call):
//
//	diagonal (match/mismatch) > vertical (gap in Y) > horizontal (gap in X).
//
// Returns the alignment and the optimal score M[n][m].
//
// Edge cases: either input may be empty; both empty yields an empty
// alignment with score 0.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func NeedlemanWunsch(x, y []byte, opts Options) (Alignment, int) {
	dp := scoreMatrix(x, y, opts)
	return traceback(x, y, dp, opts), dp[len(x)][len(y)]
}

// NeedlemanWunschMatrix returns the filled score matrix for x vs y.
// Diagnostic surface: feed it to FormatScoreMatrix to inspect the DP table.
// The matrix is freshly allocated on every call; callers own it.
func NeedlemanWunschMatrix(x, y []byte, opts Options) [][]int {
	return scoreMatrix(x, y, opts)
}

// scoreMatrix fills the (n+1)x(m+1) table per the recurrence above.
func scoreMatrix(x, y []byte, opts Options) [][]int {
	n, m := len(x), len(y)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}

	// Row 0 and column 0 are cumulative gap costs.
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + opts.Gap
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + opts.Gap
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			dp[i][j] = max3(
				dp[i-1][j-1]+opts.score(x[i-1], y[j-1]),
				dp[i][j-1]+opts.Gap,
				dp[i-1][j]+opts.Gap,
			)
		}
	}
	return dp
}

// traceback walks dp from (n,m) to (0,0), appending consumed columns and
// reversing once at the end (front-insertion would cost O(len²)).
func traceback(x, y []byte, dp [][]int, opts Options) Alignment {
	i, j := len(x), len(y)
	tx := make([]byte, 0, i+j)
	ty := make([]byte, 0, i+j)

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+opts.score(x[i-1], y[j-1]):
			tx = append(tx, x[i-1])
			ty = append(ty, y[j-1])
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+opts.Gap:
			tx = append(tx, x[i-1])
			ty = append(ty, GapMark)
			i--
		default:
			// j > 0 here: when j == 0 the vertical branch always holds.
			tx = append(tx, GapMark)
			ty = append(ty, y[j-1])
			j--
		}
	}

	reverseBytes(tx)
	reverseBytes(ty)
	return Alignment{X: tx, Y: ty}
}

// reverseBytes reverses s in place.
func reverseBytes(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// max3 returns the maximum of three ints.
func max3(a, b, c int) int {
	if a >= b && a >= c {
		return a
	}
	if b >= c {
		return b
	}
	return c
}
