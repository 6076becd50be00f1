// Package align - unified dispatcher for the global-alignment solvers.
//
// This file provides the canonical entry point to run an alignment:
//
//   - Align: route on Options.Mode to NeedlemanWunsch (FullMatrix),
//     Hirschberg (LinearSpace), or pick by input size (Auto).
//
// Design principles:
//   - Deterministic: routing depends only on inputs and options.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf.
//   - Observable equivalence: every route returns an optimal alignment
//     and the true optimal score.
package align

// Align computes an optimal global alignment of x and y and its score,
// routing to a solver according to opts.Mode.
//
// Auto keeps the full matrix while (len(x)+1)·(len(y)+1) stays within
// autoCellLimit cells and switches to linear space beyond it.
//
// Errors: ErrUnknownMode for a Mode outside the declared constants;
// ErrProfileLength propagated from the linear-space solver (internal
// invariant, not reachable with well-formed inputs).
func Align(x, y []byte, opts Options) (Alignment, int, error) {
	mode := opts.Mode
	if mode == Auto {
		if (len(x)+1)*(len(y)+1) <= autoCellLimit {
			mode = FullMatrix
		} else {
			mode = LinearSpace
		}
	}

	switch mode {
	case FullMatrix:
		a, score := NeedlemanWunsch(x, y, opts)
		return a, score, nil
	case LinearSpace:
		a, err := Hirschberg(x, y, opts)
		if err != nil {
			return Alignment{}, 0, err
		}
		return a, a.Score(opts), nil
	default:
		return Alignment{}, 0, ErrUnknownMode
	}
}
