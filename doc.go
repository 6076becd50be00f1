// Package seqalign is an in-memory toolkit for optimal global alignment
// of symbol sequences — from the classic full-matrix solver to the
// linear-space divide-and-conquer of Hirschberg.
//
// 🚀 What is seqalign?
//
//	A small, zero-dependency library that brings together:
//		• Needleman–Wunsch: exact global alignment with full traceback
//		• Hirschberg: the same optimal alignment in linear space
//		• Linear scoring: match / mismatch / gap-penalty configuration
//		• Diagnostics: a human-readable score-matrix dump
//
// ✨ Why choose seqalign?
//
//   - Deterministic – fixed tie-break rules, repeatable output per solver
//   - Memory-honest – O(n·m) or O(min(n,m)) auxiliary space, your call
//   - Pure Go – no cgo, no hidden deps
//   - Testable – scoring is injected per call, never a process global
//
// Everything lives in one subpackage:
//
//	align/ — scoring options, Needleman–Wunsch, Hirschberg, matrix dump
//
// Quick ASCII example:
//
//	    X: AGTACGCA        AGTACGCA
//	    Y: TATGC      →    --TATGC-
//
//	aligns every symbol of both inputs end-to-end, padding with gap
//	markers where one sequence inserts or deletes.
//
// Dive into align/doc.go for the algorithm outlines, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/seqalign/align
package seqalign
