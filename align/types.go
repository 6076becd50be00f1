// Package align defines scoring options, result types, and sentinel errors
// for the align subpackage of github.com/katalvlaran/seqalign.
package align

import "errors"

// Sentinel errors for alignment operations.
var (
	// ErrProfileLength indicates forward and reverse score profiles of
	// differing length were combined. This is an internal-contract failure:
	// profiles over the same Y always have length len(Y)+1.
	ErrProfileLength = errors.New("align: forward and reverse score profiles must have equal length")
	// ErrUnknownMode indicates a Mode value outside the declared constants.
	ErrUnknownMode = errors.New("align: unknown alignment mode")
)

// GapMark is the marker byte inserted into one track to pad an insertion
// or deletion in the other. It never matches an input symbol for scoring:
// a track position holding GapMark always costs Options.Gap.
const GapMark byte = '-'

// Mode selects which solver Align dispatches to.
//
//   - Auto        — FullMatrix for small inputs, LinearSpace beyond
//     autoCellLimit DP cells. Either route returns an optimal alignment
//     with the same score, deterministically.
//   - FullMatrix  — Needleman–Wunsch. Memory: O(n·m).
//   - LinearSpace — Hirschberg divide-and-conquer. Memory: O(m).
type Mode int

const (
	// Auto routes on input size; the route is a pure function of the input.
	Auto Mode = iota
	// FullMatrix always uses the quadratic-space exact solver.
	FullMatrix
	// LinearSpace always uses the Hirschberg solver.
	LinearSpace
)

// autoCellLimit is the (n+1)·(m+1) DP-cell count above which Auto prefers
// LinearSpace. The value only trades memory for constant factors; both
// routes are exact.
const autoCellLimit = 4096

// Options configures the linear scoring scheme.
//
// Fields:
//   - Match    — score added when two aligned symbols are equal.
//   - Mismatch — score added when two aligned symbols differ.
//   - Gap      — penalty added once per gap marker in either track.
//   - Mode     — solver selection for Align (ignored by the direct
//     NeedlemanWunsch / Hirschberg entry points).
//
// Options is threaded by value into every solver call; the package holds
// no scoring globals, so concurrent calls with different schemes never
// interfere.
type Options struct {
	Match    int
	Mismatch int
	Gap      int
	Mode     Mode
}

// DefaultOptions returns the classic unit scheme:
// Match=+1, Mismatch=-1, Gap=-1, Mode=Auto.
func DefaultOptions() Options {
	return Options{
		Match:    1,
		Mismatch: -1,
		Gap:      -1,
		Mode:     Auto,
	}
}

// score returns the match/mismatch contribution for one aligned symbol pair.
func (o Options) score(a, b byte) int {
	if a == b {
		return o.Match
	}
	return o.Mismatch
}

// Alignment holds one optimal global alignment: two equal-length tracks
// where position i pairs X[i] with Y[i], either symbol possibly a GapMark.
// Removing every GapMark from X yields the first input verbatim; same for Y.
type Alignment struct {
	X []byte
	Y []byte
}

// Len reports the common track length (number of alignment columns).
func (a Alignment) Len() int { return len(a.X) }

// Score re-derives the alignment's total score under opts by summing
// match, mismatch, and gap contributions column by column.
//
// Complexity: O(Len).
func (a Alignment) Score(opts Options) int {
	var total int
	for i := 0; i < len(a.X); i++ {
		switch {
		case a.X[i] == GapMark || a.Y[i] == GapMark:
			total += opts.Gap
		default:
			total += opts.score(a.X[i], a.Y[i])
		}
	}
	return total
}
