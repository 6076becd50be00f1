package align

// Hirschberg — optimal global alignment in linear space.
//
// Description:
//
//	Divide-and-conquer over score profiles (Hirschberg, CACM 1975).
//	The first sequence is halved at xmid = n/2; two linear-space profile
//	passes (forward over the prefix, backward over the reversed suffix)
//	are combined by splitColumn to find a column ymid through which some
//	optimal alignment passes. The two quadrants are then solved
//	recursively and their partial alignments concatenated in order.
//
// Base cases:
//
//	n == 0            — every symbol of y is an insertion (all-gap x track)
//	m == 0            — every symbol of x is a deletion (all-gap y track)
//	n == 1 || m == 1  — NeedlemanWunsch on the small strip; a one-symbol
//	                    sequence cannot be halved meaningfully, and the
//	                    fallback bounds the recursion depth
//
// The returned alignment is optimal: its Score(opts) always equals the
// score NeedlemanWunsch reports for the same inputs. When several optimal
// alignments exist the two solvers may pick different ones; each is
// individually deterministic via its fixed tie-breaks.
//
// Failure semantics: the only error is ErrProfileLength propagated from
// splitColumn, which cannot occur for well-formed inputs; there are no
// retries and no partial results.
//
// Complexity:
//
//	Time   = O(n·m) summed over the whole recursion
//	Memory = O(m) auxiliary (two rolling profile rows), O(log n) call depth
func Hirschberg(x, y []byte, opts Options) (Alignment, error) {
	n, m := len(x), len(y)

	switch {
	case n == 0:
		return Alignment{X: gapRun(m), Y: append([]byte(nil), y...)}, nil
	case m == 0:
		return Alignment{X: append([]byte(nil), x...), Y: gapRun(n)}, nil
	case n == 1 || m == 1:
		a, _ := NeedlemanWunsch(x, y, opts)
		return a, nil
	}

	// Halve x; truncation toward zero is the fixed policy for odd n.
	xmid := n / 2

	fwd := lastRow(x[:xmid], y, opts)
	rev := lastRow(reversedCopy(x[xmid:]), reversedCopy(y), opts)

	ymid, err := splitColumn(fwd, rev)
	if err != nil {
		return Alignment{}, err
	}

	left, err := Hirschberg(x[:xmid], y[:ymid], opts)
	if err != nil {
		return Alignment{}, err
	}
	right, err := Hirschberg(x[xmid:], y[ymid:], opts)
	if err != nil {
		return Alignment{}, err
	}

	// Concatenation order encodes global left-to-right order.
	return Alignment{
		X: append(left.X, right.X...),
		Y: append(left.Y, right.Y...),
	}, nil
}

// gapRun returns k gap markers.
func gapRun(k int) []byte {
	out := make([]byte, k)
	for i := range out {
		out[i] = GapMark
	}
	return out
}
