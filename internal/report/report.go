// Package report renders alignment results as fixed-width text blocks:
// the two aligned sequences with a marker line between them and
// numeric position headers in the left margin.
package report

import (
	"fmt"
	"strings"

	"github.com/seqalign/seqalign-go/internal/align"
)

const defaultMaxWidth = 80

// Options control rendering. The zero value names the sequences
// generically and wraps blocks at 80 columns.
type Options struct {
	RowName  string
	ColName  string
	MaxWidth int
}

func (o Options) rowName() string {
	if o.RowName == "" {
		return "<row sequence>"
	}
	return o.RowName
}

func (o Options) colName() string {
	if o.ColName == "" {
		return "<column sequence>"
	}
	return o.ColName
}

func (o Options) maxWidth() int {
	if o.MaxWidth <= 0 {
		return defaultMaxWidth
	}
	return o.MaxWidth
}

// Global renders a global alignment.
func Global(r align.GlobalResult, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s x %s\n", opts.rowName(), opts.colName())
	fmt.Fprintf(&b, "score %d, identity %d/%d (%.1f%%)\n",
		r.Score, r.IdentityNum, r.IdentityDen, r.Identity()*100)
	renderPair(&b, r.AlignedRow, r.AlignedCol, 0, 0, opts.maxWidth())
	return b.String()
}

// Locals renders every best local alignment, in order.
func Locals(results []align.LocalResult, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s x %s\n", opts.rowName(), opts.colName())
	if len(results) == 0 {
		b.WriteString("no local alignment with positive score\n")
		return b.String()
	}
	for n, r := range results {
		fmt.Fprintf(&b, "alignment %d of %d: score %d, identity %d/%d (%.1f%%), row [%d, %d), column [%d, %d)\n",
			n+1, len(results), r.Score, r.IdentityNum, r.IdentityDen, r.Identity()*100,
			r.Row.Start, r.Row.End, r.Col.Start, r.Col.End)
		renderPair(&b, r.Row.Symbols, r.Col.Symbols, r.Row.Start, r.Col.Start, opts.maxWidth())
	}
	return b.String()
}

// renderPair writes fixed-width blocks for one aligned pair. rowBase
// and colBase are the zero-based positions of the first symbol on each
// side; printed positions are one-based and skip over gaps.
func renderPair(b *strings.Builder, row, col []align.Symbol, rowBase, colBase, maxWidth int) {
	margin := max(
		digitCount(rowBase+len(align.Ungapped(row))),
		digitCount(colBase+len(align.Ungapped(col))),
	)
	chunk := maxWidth - margin - 1
	if chunk < 1 {
		chunk = 1
	}

	rowPos, colPos := rowBase, colBase
	for start := 0; start < len(row); start += chunk {
		end := min(start+chunk, len(row))
		b.WriteByte('\n')
		fmt.Fprintf(b, "%*d %s\n", margin, rowPos+1, align.String(row[start:end]))
		fmt.Fprintf(b, "%*s %s\n", margin, "", markers(row[start:end], col[start:end]))
		fmt.Fprintf(b, "%*d %s\n", margin, colPos+1, align.String(col[start:end]))
		rowPos += symbolCount(row[start:end])
		colPos += symbolCount(col[start:end])
	}
}

// markers builds the line between the two sides: '|' for a match, '.'
// for a mismatch, a space wherever either side holds a gap.
func markers(row, col []align.Symbol) string {
	var b strings.Builder
	for i := range row {
		switch {
		case row[i] == align.Gap || col[i] == align.Gap:
			b.WriteByte(' ')
		case row[i] == col[i]:
			b.WriteByte('|')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func symbolCount(seq []align.Symbol) int {
	count := 0
	for _, sym := range seq {
		if sym != align.Gap {
			count++
		}
	}
	return count
}

// digitCount returns the decimal width of n, including a sign column
// for negatives.
func digitCount(n int) int {
	if n == 0 {
		return 1
	}
	count := 0
	if n < 0 {
		count++
		n = -n
	}
	for ; n > 0; n /= 10 {
		count++
	}
	return count
}
