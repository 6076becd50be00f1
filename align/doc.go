// Package align computes optimal global alignments between two byte
// sequences under a linear scoring scheme (match, mismatch, gap penalty).
//
// 🚀 What is global alignment?
//
//	A global alignment accounts for every symbol of both inputs end-to-end,
//	inserting gap markers ('-') where one sequence inserts or deletes.
//	It is the workhorse of:
//	  • DNA / protein sequence comparison
//	  • Diff-like reconciliation of token streams
//	  • Spelling correction & fuzzy matching
//	  • Any edit-distance problem that needs the edits, not just the cost
//
// ✨ Key features:
//   - NeedlemanWunsch: exact O(n·m) time & memory, full traceback
//   - Hirschberg: the same optimal alignment in O(min(n,m)) memory
//     via divide-and-conquer over score profiles
//   - deterministic output under fixed, documented tie-break rules
//   - injectable scoring (Options), no process-wide globals
//   - FormatScoreMatrix for human-readable DP-matrix dumps
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	opts := align.DefaultOptions() // +1 match, -1 mismatch, -1 gap
//
//	// exact, quadratic space
//	a, score := align.NeedlemanWunsch([]byte("AGTACGCA"), []byte("TATGC"), opts)
//
//	// same result, linear space
//	b, err := align.Hirschberg([]byte("AGTACGCA"), []byte("TATGC"), opts)
//
// Performance:
//
//   - Time:   O(n·m) for both solvers (Hirschberg sums a geometric series
//     of profile passes over the recursion)
//   - Memory: O(n·m) (NeedlemanWunsch) or O(min recursion + m) (Hirschberg)
//
// See examples in example_test.go for worked alignments.
package align
