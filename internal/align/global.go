package align

// GlobalResult is a full-length alignment of two sequences. The two
// aligned sides always have equal length; removing the gaps from
// either side reproduces the corresponding input sequence.
type GlobalResult struct {
	AlignedRow []Symbol
	AlignedCol []Symbol
	Score      Score

	// IdentityNum counts the diagonal traceback steps whose two
	// symbols are exactly equal; IdentityDen counts all diagonal
	// steps, floored to 1.
	IdentityNum int
	IdentityDen int
}

// Identity returns the fraction of diagonally aligned positions whose
// symbols match.
func (r GlobalResult) Identity() float64 {
	return float64(r.IdentityNum) / float64(r.IdentityDen)
}

// Length returns the common length of the aligned sides.
func (r GlobalResult) Length() int {
	return len(r.AlignedRow)
}

// NeedlemanWunsch aligns rowSeq against colSeq over their full
// lengths. It is total over any two sequences, including empty ones,
// and never fails.
func NeedlemanWunsch(rowSeq, colSeq []Symbol, sc Scoring) GlobalResult {
	matrix := fillGlobal(rowSeq, colSeq, sc)
	return tracebackGlobal(rowSeq, colSeq, sc, matrix)
}

// fillGlobal builds the (len(rowSeq)+1) x (len(colSeq)+1) score
// matrix. Borders carry the monotonic prefix-gap cost: cell (i, 0) and
// cell (0, j) align the first i/j symbols against pure gaps.
func fillGlobal(rowSeq, colSeq []Symbol, sc Scoring) *Matrix {
	matrix := NewMatrix(len(rowSeq)+1, len(colSeq)+1)
	for j := 1; j <= len(colSeq); j++ {
		matrix.SetAt(0, j, Score(j)*sc.Gap)
	}
	for i := 1; i <= len(rowSeq); i++ {
		matrix.SetAt(i, 0, Score(i)*sc.Gap)
	}
	for i := 1; i <= len(rowSeq); i++ {
		for j := 1; j <= len(colSeq); j++ {
			matrix.SetAt(i, j, bestScore(matrix, sc, rowSeq[i-1], colSeq[j-1], i, j))
		}
	}
	return matrix
}

// bestScore applies the three-way recurrence at (i, j): the diagonal
// predecessor plus the match/mismatch weight, and the top and left
// predecessors plus the gap weight.
func bestScore(matrix *Matrix, sc Scoring, rowSym, colSym Symbol, i, j int) Score {
	diag := matrix.At(i-1, j-1) + sc.Weight(rowSym, colSym)
	up := matrix.At(i-1, j) + sc.Gap
	left := matrix.At(i, j-1) + sc.Gap
	return max(diag, up, left)
}

// tracebackGlobal reconstructs one optimal alignment from the
// bottom-right cell back to the origin. At each cell the incoming move
// is chosen by testing whether the current score is exactly reproduced
// by the candidate's reverse recurrence, in fixed priority order:
// up, then left, then diagonal. The priority is the deterministic
// tie-break whenever several moves reproduce the score.
//
// At row 0 the up probe falls off the grid and the border
// initialization guarantees the left test succeeds (and symmetrically
// at column 0), so the walk never steps past index 0.
func tracebackGlobal(rowSeq, colSeq []Symbol, sc Scoring, matrix *Matrix) GlobalResult {
	capacity := len(rowSeq) + len(colSeq)
	result := GlobalResult{
		AlignedRow: make([]Symbol, 0, capacity),
		AlignedCol: make([]Symbol, 0, capacity),
	}

	i, j := matrix.Height()-1, matrix.Width()-1
	result.Score = matrix.At(i, j)

	for i > 0 || j > 0 {
		current := matrix.At(i, j)
		if up, ok := matrix.Get(i-1, j); ok && current == up+sc.Gap {
			i--
			result.AlignedRow = append(result.AlignedRow, symbolAt(rowSeq, i))
			result.AlignedCol = append(result.AlignedCol, Gap)
		} else if left, ok := matrix.Get(i, j-1); ok && current == left+sc.Gap {
			j--
			result.AlignedRow = append(result.AlignedRow, Gap)
			result.AlignedCol = append(result.AlignedCol, symbolAt(colSeq, j))
		} else {
			i--
			j--
			rowSym, colSym := symbolAt(rowSeq, i), symbolAt(colSeq, j)
			result.AlignedRow = append(result.AlignedRow, rowSym)
			result.AlignedCol = append(result.AlignedCol, colSym)
			result.IdentityDen++
			if rowSym == colSym {
				result.IdentityNum++
			}
		}
	}

	// Aligned sides were built back to front.
	reverse(result.AlignedRow)
	reverse(result.AlignedCol)
	if result.IdentityDen == 0 {
		result.IdentityDen = 1
	}
	return result
}
