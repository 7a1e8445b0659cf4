// Package seqalign provides a high-level API for pairwise sequence
// alignment.
//
// Example usage:
//
//	result := seqalign.Global("GCATGCG", "GATTACA")
//	fmt.Println(seqalign.FormatGlobal(result, "query", "target", 80))
//
//	best := seqalign.Local("GGTTGACTA", "TGTTACGG")
//	for _, r := range best {
//	    fmt.Printf("score %d at rows [%d, %d)\n", r.Score, r.Row.Start, r.Row.End)
//	}
package seqalign

import (
	"github.com/seqalign/seqalign-go/internal/align"
	"github.com/seqalign/seqalign-go/internal/report"
)

// Re-export core types for convenience.
type (
	Symbol       = align.Symbol
	Score        = align.Score
	Scoring      = align.Scoring
	GlobalResult = align.GlobalResult
	LocalResult  = align.LocalResult
	AlignedSpan  = align.AlignedSpan
)

// Gap is the reserved placeholder symbol in alignment output.
const Gap = align.Gap

// DefaultScoring returns the conventional +1/-1/-2 weights.
func DefaultScoring() Scoring {
	return align.DefaultScoring()
}

// Global aligns two sequences over their full lengths with the default
// weights.
func Global(row, col string) GlobalResult {
	return GlobalWith(row, col, align.DefaultScoring())
}

// GlobalWith aligns two sequences over their full lengths.
func GlobalWith(row, col string, sc Scoring) GlobalResult {
	return align.NeedlemanWunsch(align.Symbols(row), align.Symbols(col), sc)
}

// Local finds every best-scoring local alignment with the default
// weights.
func Local(row, col string) []LocalResult {
	return LocalWith(row, col, align.DefaultScoring())
}

// LocalWith finds every best-scoring local alignment.
func LocalWith(row, col string, sc Scoring) []LocalResult {
	return align.SmithWatermanAll(align.Symbols(row), align.Symbols(col), sc)
}

// FormatGlobal renders a global result as a fixed-width report.
func FormatGlobal(r GlobalResult, rowName, colName string, maxWidth int) string {
	return report.Global(r, report.Options{RowName: rowName, ColName: colName, MaxWidth: maxWidth})
}

// FormatLocals renders a set of local results as a fixed-width report.
func FormatLocals(results []LocalResult, rowName, colName string, maxWidth int) string {
	return report.Locals(results, report.Options{RowName: rowName, ColName: colName, MaxWidth: maxWidth})
}

// Symbols converts a string into a symbol sequence.
func Symbols(s string) []Symbol {
	return align.Symbols(s)
}

// String renders a symbol sequence, gaps included.
func String(seq []Symbol) string {
	return align.String(seq)
}

// CIGAR renders an aligned pair as a CIGAR string.
func CIGAR(alignedRow, alignedCol []Symbol) string {
	return align.CIGAR(alignedRow, alignedCol)
}

// MatchCount counts the positions where both sides carry the same
// non-gap symbol.
func MatchCount(alignedRow, alignedCol []Symbol) int {
	return align.MatchCount(alignedRow, alignedCol)
}

// MismatchCount counts the positions where both sides carry differing
// symbols.
func MismatchCount(alignedRow, alignedCol []Symbol) int {
	return align.MismatchCount(alignedRow, alignedCol)
}

// GapCount counts the gap symbols across both sides.
func GapCount(alignedRow, alignedCol []Symbol) int {
	return align.GapCount(alignedRow, alignedCol)
}
