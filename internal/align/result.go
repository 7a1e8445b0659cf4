package align

import (
	"fmt"
	"strings"
)

// MatchCount returns the number of positions where the two aligned
// sides carry the same non-gap symbol.
func MatchCount(alignedRow, alignedCol []Symbol) int {
	count := 0
	for i := range alignedRow {
		if alignedRow[i] == alignedCol[i] && alignedRow[i] != Gap {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of positions where both sides carry
// a symbol but the symbols differ.
func MismatchCount(alignedRow, alignedCol []Symbol) int {
	count := 0
	for i := range alignedRow {
		if alignedRow[i] != alignedCol[i] && alignedRow[i] != Gap && alignedCol[i] != Gap {
			count++
		}
	}
	return count
}

// GapCount returns the total number of gap symbols across both sides.
func GapCount(alignedRow, alignedCol []Symbol) int {
	count := 0
	for i := range alignedRow {
		if alignedRow[i] == Gap {
			count++
		}
		if alignedCol[i] == Gap {
			count++
		}
	}
	return count
}

// PathScore recomputes the score of an aligned pair by summing the
// weights position by position. For any result produced by the
// aligners it equals the reported score.
func PathScore(alignedRow, alignedCol []Symbol, sc Scoring) Score {
	var total Score
	for i := range alignedRow {
		if alignedRow[i] == Gap || alignedCol[i] == Gap {
			total += sc.Gap
		} else {
			total += sc.Weight(alignedRow[i], alignedCol[i])
		}
	}
	return total
}

// CIGAR renders the aligned pair as a CIGAR string: M match, X
// mismatch, I gap on the row side, D gap on the column side.
func CIGAR(alignedRow, alignedCol []Symbol) string {
	if len(alignedRow) == 0 {
		return ""
	}

	var out strings.Builder
	currentOp := byte(0)
	count := 0
	for i := range alignedRow {
		var op byte
		switch {
		case alignedRow[i] == Gap:
			op = 'I'
		case alignedCol[i] == Gap:
			op = 'D'
		case alignedRow[i] == alignedCol[i]:
			op = 'M'
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
			continue
		}
		if count > 0 {
			fmt.Fprintf(&out, "%d%c", count, currentOp)
		}
		currentOp = op
		count = 1
	}
	fmt.Fprintf(&out, "%d%c", count, currentOp)
	return out.String()
}
