package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairCounts(t *testing.T) {
	row := Symbols("AT-GC")
	col := Symbols("ATGGA")

	assert.Equal(t, 3, MatchCount(row, col))
	assert.Equal(t, 1, MismatchCount(row, col))
	assert.Equal(t, 1, GapCount(row, col))
}

func TestCIGAR(t *testing.T) {
	tests := []struct {
		name string
		row  string
		col  string
		want string
	}{
		{"empty", "", "", ""},
		{"all match", "ATGC", "ATGC", "4M"},
		{"mismatch tail", "ATGC", "ATGA", "3M1X"},
		{"row gap", "AT-GC", "ATGGC", "2M1I2M"},
		{"col gap", "ATGGC", "AT-GC", "2M1D2M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CIGAR(Symbols(tt.row), Symbols(tt.col)))
		})
	}
}

func TestUngapped(t *testing.T) {
	assert.Equal(t, Symbols("ATGC"), Ungapped(Symbols("A-T-GC-")))
	assert.Empty(t, Ungapped(Symbols("---")))
}

func TestSymbolsRoundTrip(t *testing.T) {
	assert.Equal(t, "WHAT", String(Symbols("WHAT")))
	assert.Empty(t, Symbols(""))
}

func TestScoringWeight(t *testing.T) {
	sc := Scoring{Match: 5, Mismatch: -4, Gap: -9}
	assert.Equal(t, Score(5), sc.Weight('Q', 'Q'))
	assert.Equal(t, Score(-4), sc.Weight('Q', 'W'))
}
