package utils

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGridDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ramp.pgm")
	require.NoError(t, os.WriteFile(path, []byte("P2 2 1 255\n0 255\n"), 0o644))

	g, err := ReadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Z)
	assert.Equal(t, []int{0, 255}, g.Pix)

	_, err = ReadGrid(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestSortPaletteByBrightness(t *testing.T) {
	palette := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{R: 0, G: 0, B: 0},
		{R: 0.5, G: 0.5, B: 0.5},
	}
	SortPaletteByBrightness(palette)
	assert.Equal(t, colorful.Color{R: 0, G: 0, B: 0}, palette[0])
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, palette[2])
}

func TestSelectDiverseWeightedColorsSeedsStrongest(t *testing.T) {
	cands := []weightedColor{
		{Col: colorful.Color{R: 1, G: 0, B: 0}, Weight: 0.2},
		{Col: colorful.Color{R: 0, G: 1, B: 0}, Weight: 0.7},
		{Col: colorful.Color{R: 0, G: 0, B: 1}, Weight: 0.1},
	}
	out := SelectDiverseWeightedColors(cands, 2)
	require.Len(t, out, 2)
	assert.Equal(t, colorful.Color{R: 0, G: 1, B: 0}, out[0])

	// k past the candidate count clamps.
	assert.Len(t, SelectDiverseWeightedColors(cands, 10), 3)
	assert.Nil(t, SelectDiverseWeightedColors(cands, 0))
	assert.Nil(t, SelectDiverseWeightedColors(nil, 3))
}

func TestExtractDominantPaletteOnSolidImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	palette := ExtractPalette(img, 2, PaletteMethodDominantColor)
	require.NotEmpty(t, palette)
	assert.Greater(t, palette[0].R, 0.9)
	assert.Less(t, palette[0].G, 0.1)

	assert.Nil(t, ExtractDominantPalette(img, 0))
}

func TestSavePaletteRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.png")
	palette := []colorful.Color{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 0, B: 1},
	}
	require.NoError(t, SavePalette(palette, 8, path))

	img, err := ReadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	r, _, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), b)

	assert.Error(t, SavePalette(nil, 8, filepath.Join(dir, "empty.png")))
}
