package align

// AlignedSpan is one side of a local alignment: a half-open window
// [Start, End) into the original sequence and the aligned symbols for
// that window, with internal gaps.
type AlignedSpan struct {
	Start   int
	End     int
	Symbols []Symbol
}

// LocalResult is one best-scoring local alignment.
type LocalResult struct {
	Row   AlignedSpan
	Col   AlignedSpan
	Score Score

	IdentityNum int
	IdentityDen int
}

// Identity returns the fraction of diagonally aligned positions whose
// symbols match.
func (r LocalResult) Identity() float64 {
	return float64(r.IdentityNum) / float64(r.IdentityDen)
}

// SmithWatermanAll finds every local alignment tied for the best
// score, ordered by the row-major position of the maximal cell each
// traceback starts from. It is total over any two sequences.
//
// When the matrix-wide maximum is 0 there is no positive-scoring
// region and the result set is empty.
func SmithWatermanAll(rowSeq, colSeq []Symbol, sc Scoring) []LocalResult {
	matrix := fillLocal(rowSeq, colSeq, sc)
	if matrix.Max() == 0 {
		return nil
	}

	cells := matrix.ArgmaxAll()
	results := make([]LocalResult, 0, len(cells))
	for _, cell := range cells {
		results = append(results, tracebackLocal(rowSeq, colSeq, sc, matrix, cell))
	}
	return results
}

// fillLocal builds the score matrix with all borders at 0 (a local
// alignment may start anywhere) and every interior cell clamped to be
// non-negative: a local alignment never carries a negative running
// score forward.
func fillLocal(rowSeq, colSeq []Symbol, sc Scoring) *Matrix {
	matrix := NewMatrix(len(rowSeq)+1, len(colSeq)+1)
	for i := 1; i <= len(rowSeq); i++ {
		for j := 1; j <= len(colSeq); j++ {
			score := bestScore(matrix, sc, rowSeq[i-1], colSeq[j-1], i, j)
			matrix.SetAt(i, j, max(score, 0))
		}
	}
	return matrix
}

// tracebackLocal walks from one maximal cell back to the first
// zero-score cell, which delimits the start of the local window. Moves
// follow the same up/left/diagonal priority as the global traceback.
//
// Because borders are zero and every positive transition consumes a
// symbol from each side, any cell with a nonzero score has both
// coordinates >= 1, so the predecessor probes stay on the grid.
func tracebackLocal(rowSeq, colSeq []Symbol, sc Scoring, matrix *Matrix, start Cell) LocalResult {
	result := LocalResult{
		Row:   AlignedSpan{Start: start.I, End: start.I},
		Col:   AlignedSpan{Start: start.J, End: start.J},
		Score: matrix.At(start.I, start.J),
	}

	i, j := start.I, start.J
	for {
		current := matrix.At(i, j)
		if current == 0 {
			break
		}
		if up, ok := matrix.Get(i-1, j); ok && current == up+sc.Gap {
			i--
			result.Row.Start--
			result.Row.Symbols = append(result.Row.Symbols, symbolAt(rowSeq, i))
			result.Col.Symbols = append(result.Col.Symbols, Gap)
		} else if left, ok := matrix.Get(i, j-1); ok && current == left+sc.Gap {
			j--
			result.Col.Start--
			result.Row.Symbols = append(result.Row.Symbols, Gap)
			result.Col.Symbols = append(result.Col.Symbols, symbolAt(colSeq, j))
		} else {
			i--
			j--
			result.Row.Start--
			result.Col.Start--
			rowSym, colSym := symbolAt(rowSeq, i), symbolAt(colSeq, j)
			result.Row.Symbols = append(result.Row.Symbols, rowSym)
			result.Col.Symbols = append(result.Col.Symbols, colSym)
			result.IdentityDen++
			if rowSym == colSym {
				result.IdentityNum++
			}
		}
	}

	reverse(result.Row.Symbols)
	reverse(result.Col.Symbols)
	if result.IdentityDen == 0 {
		result.IdentityDen = 1
	}
	return result
}
