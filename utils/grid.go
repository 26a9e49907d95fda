package utils

import (
	"image"
	"image/color"

	"github.com/setanarut/povmosaic"
)

// GridFromImage converts a decoded image into the integer sample grid
// the converter consumes. 8-bit and 16-bit sources keep their native
// depth; the channel count follows the source structure, with the
// alpha channel dropped when every pixel is fully opaque.
func GridFromImage(img image.Image) *povmosaic.Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		g := &povmosaic.Grid{X: w, Y: h, Z: 1, Max: 255, Pix: make([]int, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.Pix[y*w+x] = int(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
		return g

	case *image.Gray16:
		g := &povmosaic.Grid{X: w, Y: h, Z: 1, Max: 65535, Pix: make([]int, w*h)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.Pix[y*w+x] = int(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
		return g

	case *image.NRGBA:
		z := 4
		if src.Opaque() {
			z = 3
		}
		g := &povmosaic.Grid{X: w, Y: h, Z: z, Max: 255, Pix: make([]int, w*h*z)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				off := (y*w + x) * z
				g.Pix[off] = int(c.R)
				g.Pix[off+1] = int(c.G)
				g.Pix[off+2] = int(c.B)
				if z == 4 {
					g.Pix[off+3] = int(c.A)
				}
			}
		}
		return g

	case *image.NRGBA64:
		z := 4
		if src.Opaque() {
			z = 3
		}
		g := &povmosaic.Grid{X: w, Y: h, Z: z, Max: 65535, Pix: make([]int, w*h*z)}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := src.NRGBA64At(b.Min.X+x, b.Min.Y+y)
				off := (y*w + x) * z
				g.Pix[off] = int(c.R)
				g.Pix[off+1] = int(c.G)
				g.Pix[off+2] = int(c.B)
				if z == 4 {
					g.Pix[off+3] = int(c.A)
				}
			}
		}
		return g
	}

	// Everything else (paletted, premultiplied, YCbCr) goes through the
	// non-premultiplied 16-bit model.
	pix := make([]color.NRGBA64, w*h)
	opaque := true
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			pix[y*w+x] = c
			if c.A != 65535 {
				opaque = false
			}
		}
	}
	z := 4
	if opaque {
		z = 3
	}
	g := &povmosaic.Grid{X: w, Y: h, Z: z, Max: 65535, Pix: make([]int, w*h*z)}
	for i, c := range pix {
		off := i * z
		g.Pix[off] = int(c.R)
		g.Pix[off+1] = int(c.G)
		g.Pix[off+2] = int(c.B)
		if z == 4 {
			g.Pix[off+3] = int(c.A)
		}
	}
	return g
}

// ImageFromGrid renders a grid back into an image, mainly so palette
// extraction can run on sources that never were an image.Image (PNM).
func ImageFromGrid(g *povmosaic.Grid) image.Image {
	img := image.NewNRGBA64(image.Rect(0, 0, g.X, g.Y))
	scale := 65535 / g.Max
	for y := 0; y < g.Y; y++ {
		for x := 0; x < g.X; x++ {
			var c color.NRGBA64
			switch g.Z {
			case 1, 2:
				v := uint16(g.Pix[(y*g.X+x)*g.Z] * scale)
				c = color.NRGBA64{R: v, G: v, B: v, A: 65535}
			default:
				off := (y*g.X + x) * g.Z
				c = color.NRGBA64{
					R: uint16(g.Pix[off] * scale),
					G: uint16(g.Pix[off+1] * scale),
					B: uint16(g.Pix[off+2] * scale),
					A: 65535,
				}
			}
			if g.HasAlpha() {
				c.A = uint16(g.Pix[(y*g.X+x)*g.Z+g.Z-1] * scale)
			}
			img.SetNRGBA64(x, y, c)
		}
	}
	return img
}
