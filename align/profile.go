package align

// Score profiles — the linear-space half of Hirschberg's algorithm.
//
// lastRow computes only the final row of the score matrix that
// NeedlemanWunsch would build, keeping two rolling row buffers instead of
// the full table. splitColumn combines a forward profile with a profile
// computed on reversed inputs to locate a column through which some
// optimal global alignment must pass.

// lastRow returns the last row of the (len(x)+1)x(len(y)+1) score matrix
// for x vs y, i.e. M[len(x)][0..len(y)], using O(len(y)) memory.
//
// Two named buffers roll down the matrix: prev holds row i-1, curr is
// filled as row i, then the buffers swap. No per-row allocations.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m)
func lastRow(x, y []byte, opts Options) []int {
	m := len(y)
	prev := make([]int, m+1)
	curr := make([]int, m+1)

	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + opts.Gap
	}

	for i := 1; i <= len(x); i++ {
		curr[0] = prev[0] + opts.Gap
		for j := 1; j <= m; j++ {
			curr[j] = max3(
				prev[j-1]+opts.score(x[i-1], y[j-1]),
				curr[j-1]+opts.Gap,
				prev[j]+opts.Gap,
			)
		}
		prev, curr = curr, prev
	}
	return prev
}

// splitColumn locates the optimal split column from a forward profile fwd
// (prefix of x vs all of y) and a reverse profile rev (reversed suffix of x
// vs reversed y). Index j of fwd pairs with index len-1-j of rev, so the
// combined score for splitting y at column j is fwd[j] + rev[m-j].
//
// Returns the smallest j maximizing the combined score: the scan keeps the
// first maximum (strict > comparison), a fixed tie-break that pins down
// which of possibly many optimal alignments the caller reconstructs.
//
// Returns ErrProfileLength if the profiles differ in length; both are
// always computed over the same y, so this signals a broken invariant.
//
// Complexity: O(m).
func splitColumn(fwd, rev []int) (int, error) {
	if len(fwd) != len(rev) {
		return 0, ErrProfileLength
	}

	m := len(fwd) - 1
	best, bestCol := fwd[0]+rev[m], 0
	for j := 1; j <= m; j++ {
		if sum := fwd[j] + rev[m-j]; sum > best {
			best, bestCol = sum, j
		}
	}
	return bestCol, nil
}

// reversedCopy returns a new slice holding s in reverse order.
// The input is never mutated; recursion in Hirschberg shares read-only
// subslices of the original backing arrays.
func reversedCopy(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		out[len(s)-1-i] = b
	}
	return out
}
