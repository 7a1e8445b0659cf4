package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmithWatermanAll(t *testing.T) {
	t.Run("single best window", func(t *testing.T) {
		sc := Scoring{Match: 3, Mismatch: -3, Gap: -2}
		results := SmithWatermanAll(Symbols("GGTTGACTA"), Symbols("TGTTACGG"), sc)

		require.Len(t, results, 1)
		r := results[0]

		assert.Equal(t, Score(13), r.Score)
		assert.Equal(t, 1, r.Row.Start)
		assert.Equal(t, 7, r.Row.End)
		assert.Equal(t, "GTTGAC", String(r.Row.Symbols))
		assert.Equal(t, 1, r.Col.Start)
		assert.Equal(t, 6, r.Col.End)
		assert.Equal(t, "GTT-AC", String(r.Col.Symbols))
		assert.Equal(t, 5, r.IdentityNum)
		assert.Equal(t, 5, r.IdentityDen)
	})

	t.Run("ties enumerated in row-major order", func(t *testing.T) {
		// Both As in the row align equally well against the single
		// column symbol.
		results := SmithWatermanAll(Symbols("ACA"), Symbols("A"), DefaultScoring())

		require.Len(t, results, 2)

		assert.Equal(t, 0, results[0].Row.Start)
		assert.Equal(t, 1, results[0].Row.End)
		assert.Equal(t, 2, results[1].Row.Start)
		assert.Equal(t, 3, results[1].Row.End)
		for _, r := range results {
			assert.Equal(t, Score(1), r.Score)
			assert.Equal(t, "A", String(r.Row.Symbols))
			assert.Equal(t, "A", String(r.Col.Symbols))
			assert.Equal(t, 0, r.Col.Start)
			assert.Equal(t, 1, r.Col.End)
			assert.Equal(t, 1, r.IdentityNum)
			assert.Equal(t, 1, r.IdentityDen)
		}
	})

	t.Run("no positive region", func(t *testing.T) {
		results := SmithWatermanAll(Symbols("AAAA"), Symbols("TTTT"), DefaultScoring())
		assert.Empty(t, results)
	})

	t.Run("empty sequences", func(t *testing.T) {
		assert.Empty(t, SmithWatermanAll(nil, nil, DefaultScoring()))
		assert.Empty(t, SmithWatermanAll(Symbols("ACGT"), nil, DefaultScoring()))
		assert.Empty(t, SmithWatermanAll(nil, Symbols("ACGT"), DefaultScoring()))
	})
}

// TestSmithWatermanLaws checks the properties every local result must
// satisfy: windows that round-trip into the inputs, scores equal to
// the matrix-wide maximum, and sane identity fractions.
func TestSmithWatermanLaws(t *testing.T) {
	pairs := []struct{ row, col string }{
		{"GGTTGACTA", "TGTTACGG"},
		{"GATTACA", "GCATGCG"},
		{"ACACACTA", "AGCACACA"},
		{"KITTEN", "SITTING"},
	}
	configs := []Scoring{
		DefaultScoring(),
		{Match: 3, Mismatch: -3, Gap: -2},
		{Match: 2, Mismatch: -1, Gap: -1},
	}

	for _, pair := range pairs {
		for _, sc := range configs {
			row, col := Symbols(pair.row), Symbols(pair.col)
			results := SmithWatermanAll(row, col, sc)

			for _, r := range results {
				require.Equal(t, len(r.Row.Symbols), len(r.Col.Symbols))

				require.True(t, 0 <= r.Row.Start && r.Row.Start <= r.Row.End && r.Row.End <= len(row))
				require.True(t, 0 <= r.Col.Start && r.Col.Start <= r.Col.End && r.Col.End <= len(col))
				assert.Equal(t, row[r.Row.Start:r.Row.End], Ungapped(r.Row.Symbols))
				assert.Equal(t, col[r.Col.Start:r.Col.End], Ungapped(r.Col.Symbols))

				assert.Equal(t, results[0].Score, r.Score)
				assert.Greater(t, r.Score, Score(0))
				assert.Equal(t, r.Score, PathScore(r.Row.Symbols, r.Col.Symbols, sc))

				assert.GreaterOrEqual(t, r.IdentityDen, 1)
				assert.LessOrEqual(t, r.IdentityNum, r.IdentityDen)
			}
		}
	}
}

func BenchmarkSmithWatermanAll(b *testing.B) {
	var s1, s2 string
	for i := 0; i < 250; i++ {
		s1 += "ACGT"
		s2 += "AGCT"
	}
	row, col := Symbols(s1), Symbols(s2)
	sc := DefaultScoring()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SmithWatermanAll(row, col, sc)
	}
}
