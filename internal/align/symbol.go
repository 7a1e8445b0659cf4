// Package align implements pairwise sequence alignment under a linear
// match/mismatch/gap scoring scheme.
//
// Two classical algorithms are provided: Needleman-Wunsch global
// alignment, which spans the entirety of both input sequences, and
// Smith-Waterman local alignment, which finds every highest-scoring
// pair of contiguous substrings. Both are pure, total computations:
// any pair of symbol sequences, including empty ones, produces a
// result.
package align

// Symbol is the atomic element of a sequence, e.g. one amino-acid or
// nucleotide letter.
type Symbol rune

// Gap is the reserved placeholder symbol emitted for insertions and
// deletions in alignment output. It is never expected in real input
// sequences.
const Gap Symbol = '-'

// Symbols converts a string into a symbol sequence.
func Symbols(s string) []Symbol {
	seq := make([]Symbol, 0, len(s))
	for _, r := range s {
		seq = append(seq, Symbol(r))
	}
	return seq
}

// String renders a symbol sequence, gaps included.
func String(seq []Symbol) string {
	runes := make([]rune, len(seq))
	for i, sym := range seq {
		runes[i] = rune(sym)
	}
	return string(runes)
}

// Ungapped returns a copy of seq with every gap symbol removed.
// Removing the gaps from an aligned sequence reproduces the original
// input sequence exactly, in order.
func Ungapped(seq []Symbol) []Symbol {
	out := make([]Symbol, 0, len(seq))
	for _, sym := range seq {
		if sym != Gap {
			out = append(out, sym)
		}
	}
	return out
}

// symbolAt normalizes an absent slot to the gap sentinel: indexes
// outside the sequence read as Gap.
func symbolAt(seq []Symbol, i int) Symbol {
	if i < 0 || i >= len(seq) {
		return Gap
	}
	return seq[i]
}

func reverse(seq []Symbol) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}
