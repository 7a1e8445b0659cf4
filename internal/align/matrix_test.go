package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixDimensions(t *testing.T) {
	m := NewMatrix(3, 5)
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 5, m.Width())
}

func TestMatrixGetSet(t *testing.T) {
	m := NewMatrix(2, 3)

	t.Run("zero filled", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				score, ok := m.Get(i, j)
				require.True(t, ok)
				assert.Equal(t, Score(0), score)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		require.True(t, m.Set(1, 2, -7))
		score, ok := m.Get(1, 2)
		require.True(t, ok)
		assert.Equal(t, Score(-7), score)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, cell := range []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
			_, ok := m.Get(cell.I, cell.J)
			assert.False(t, ok, "Get(%d, %d)", cell.I, cell.J)
			assert.False(t, m.Set(cell.I, cell.J, 1), "Set(%d, %d)", cell.I, cell.J)
		}
	})
}

func TestMatrixAtPanics(t *testing.T) {
	m := NewMatrix(2, 2)

	assert.Equal(t, Score(0), m.At(1, 1))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
	assert.Panics(t, func() { m.SetAt(-1, 0, 1) })
}

func TestMatrixMax(t *testing.T) {
	m := NewMatrix(2, 3)
	m.SetAt(0, 0, -4)
	m.SetAt(0, 2, 9)
	m.SetAt(1, 1, 3)
	assert.Equal(t, Score(9), m.Max())
}

func TestMatrixArgmaxAll(t *testing.T) {
	t.Run("single maximum", func(t *testing.T) {
		m := NewMatrix(2, 2)
		m.SetAt(1, 0, 5)
		assert.Equal(t, []Cell{{1, 0}}, m.ArgmaxAll())
	})

	t.Run("ties in row-major order", func(t *testing.T) {
		m := NewMatrix(3, 3)
		m.SetAt(2, 0, 7)
		m.SetAt(0, 1, 7)
		m.SetAt(1, 2, 7)
		assert.Equal(t, []Cell{{0, 1}, {1, 2}, {2, 0}}, m.ArgmaxAll())
	})

	t.Run("all zero", func(t *testing.T) {
		m := NewMatrix(1, 2)
		assert.Equal(t, []Cell{{0, 0}, {0, 1}}, m.ArgmaxAll())
	})
}
