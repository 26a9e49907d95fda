package povmosaic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbGrid(t *testing.T, x, y int, pix []int) *Grid {
	t.Helper()
	g := &Grid{X: x, Y: y, Z: 3, Max: 255, Pix: pix}
	require.NoError(t, g.Validate())
	return g
}

func TestSampleInBounds(t *testing.T) {
	g := rgbGrid(t, 2, 2, []int{
		10, 11, 12, 20, 21, 22,
		30, 31, 32, 40, 41, 42,
	})
	assert.Equal(t, 10, g.Sample(0, 0, 0))
	assert.Equal(t, 21, g.Sample(1, 0, 1))
	assert.Equal(t, 32, g.Sample(0, 1, 2))
	assert.Equal(t, 40, g.Sample(1, 1, 0))
}

func TestSampleTruncatesFractions(t *testing.T) {
	g := rgbGrid(t, 2, 2, []int{
		10, 11, 12, 20, 21, 22,
		30, 31, 32, 40, 41, 42,
	})
	assert.Equal(t, g.Sample(0, 0, 0), g.Sample(0.9, 0.9, 0))
	assert.Equal(t, g.Sample(1, 1, 0), g.Sample(1.2, 1.7, 0))
}

func TestSampleClampsEdges(t *testing.T) {
	g := rgbGrid(t, 2, 2, []int{
		10, 11, 12, 20, 21, 22,
		30, 31, 32, 40, 41, 42,
	})
	// Both axes clamp independently.
	assert.Equal(t, g.Sample(0, 0, 0), g.Sample(-3.2, 0, 0))
	assert.Equal(t, g.Sample(1, 0, 0), g.Sample(25, 0, 0))
	assert.Equal(t, g.Sample(0, 0, 0), g.Sample(0, -1, 0))
	assert.Equal(t, g.Sample(0, 1, 0), g.Sample(0, 100, 0))
	assert.Equal(t, g.Sample(1, 1, 0), g.Sample(7, 7, 0))
}

func TestLumaCoefficients(t *testing.T) {
	g := rgbGrid(t, 3, 1, []int{
		255, 255, 255,
		0, 0, 0,
		255, 0, 0,
	})
	// The weights sum to just under one, and the result truncates:
	// pure white lands on 254, not 255.
	assert.Equal(t, 254, g.Luma(0, 0))
	assert.Equal(t, 0, g.Luma(1, 0))
	assert.Equal(t, 76, g.Luma(2, 0))
}

func TestLumaGreyPassthrough(t *testing.T) {
	g := &Grid{X: 2, Y: 1, Z: 1, Max: 255, Pix: []int{13, 200}}
	require.NoError(t, g.Validate())
	assert.Equal(t, 13, g.Luma(0, 0))
	assert.Equal(t, 200, g.Luma(1, 0))

	la := &Grid{X: 1, Y: 1, Z: 2, Max: 255, Pix: []int{99, 128}}
	require.NoError(t, la.Validate())
	assert.Equal(t, 99, la.Luma(0, 0))
}

func TestLumaBilinearCollapsesAtIntegerCoordinates(t *testing.T) {
	g := rgbGrid(t, 2, 2, []int{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, g.Luma(float64(x), float64(y)),
				g.LumaBilinear(float64(x), float64(y)), "at %d,%d", x, y)
		}
	}
}

func TestLumaBilinearTruncates(t *testing.T) {
	g := &Grid{X: 2, Y: 1, Z: 1, Max: 255, Pix: []int{0, 255}}
	require.NoError(t, g.Validate())
	// 0.1*0 + 0.9*255 = 229.5: truncation gives 229 where rounding
	// would give 230.
	assert.Equal(t, 229, g.LumaBilinear(0.9, 0))
	// Corners past the edge reuse edge values.
	assert.Equal(t, 255, g.LumaBilinear(1, 0))
	assert.Equal(t, 127, g.LumaBilinear(0.5, 0.5))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Grid{X: 0, Y: 0, Z: 3, Max: 255}).Validate())
	assert.Error(t, (&Grid{X: 1, Y: 1, Z: 5, Max: 255, Pix: make([]int, 5)}).Validate())
	assert.Error(t, (&Grid{X: 1, Y: 1, Z: 3, Max: 100, Pix: make([]int, 3)}).Validate())
	assert.Error(t, (&Grid{X: 2, Y: 2, Z: 3, Max: 255, Pix: make([]int, 11)}).Validate())
}

func TestHasAlpha(t *testing.T) {
	assert.False(t, (&Grid{Z: 1}).HasAlpha())
	assert.True(t, (&Grid{Z: 2}).HasAlpha())
	assert.False(t, (&Grid{Z: 3}).HasAlpha())
	assert.True(t, (&Grid{Z: 4}).HasAlpha())
}
