package align

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatScoreMatrix renders a score matrix as a human-readable grid:
// right-aligned fixed-width cells, one matrix row per line, trailing
// newline. Purely diagnostic; the rendering is not part of any solver
// contract.
//
// Pairs with NeedlemanWunschMatrix:
//
//	fmt.Print(align.FormatScoreMatrix(align.NeedlemanWunschMatrix(x, y, opts)))
func FormatScoreMatrix(m [][]int) string {
	// Widest cell decides the column width.
	width := 1
	for _, row := range m {
		for _, v := range row {
			if w := len(strconv.Itoa(v)); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
