package povmosaic

import "fmt"

// Row pitch of the triangle packing: the height of a unit-side-2
// triangle. Written out in full so row counts derive bit-identically.
const triangleHeight = 1.7320508075688772935274463415059

// convert36 walks the 3/6 triangle packing: one tile per source column,
// rows spaced a triangle height apart, alternating rows shifted half a
// tile sideways and alternating columns flipped upside down.
func convert36(e *emitter) {
	rows := int(float64(e.g.Y) / triangleHeight)
	for row := 0; row < rows; row++ {
		e.rowComment(row)

		parity := "translate <0.5, 0, 0>"
		if (row+1)%2 == 0 {
			parity = "translate <-0.5, 0, 0>"
		}
		sy := float64(row) * triangleHeight

		for x := 0; x < e.g.X; x++ {
			flip := ""
			if (x+1)%2 == 0 {
				flip = "scale <1.0, -1.0, 1.0>"
			}
			fx := float64(x)

			r, g, b := e.colorAt(fx, sy)
			c := e.lumaAt(fx, sy, true)
			a, ok := e.alphaAt(fx, sy)
			if !ok {
				continue
			}

			e.openRecord(r, g, b, c, a)
			e.tline(flip)
			e.tline("scale(<1, 1, 1> + (scale_map * " + mapTriple(c) + "))")
			e.tline("rotate(rotate_map * " + mapTriple(c) + ")")
			e.tline(e.rotateJitter())
			e.tline(parity)
			e.tline("translate(move_map * " + mapTriple(c) + ")")
			e.tline(e.moveJitter())
			e.tline(fmt.Sprintf("translate<%d, %s, 0>", x, ftoa(sy)))
			e.closeRecord()
		}
	}
}

// convert44 walks the 4/4 square packing: exactly one tile per source
// pixel. Even rows optionally shift (brick bond) or rotate; luminance
// samples nearest-neighbor since tile centers sit on pixel centers.
func convert44(e *emitter) {
	for y := 0; y < e.g.Y; y++ {
		e.rowComment(y)

		parityTrn := ""
		parityRot := "rotate evenodd_rotate"
		if (y+1)%2 == 0 {
			parityTrn = "translate evenodd_offset"
			parityRot = ""
		}
		fy := float64(y)

		for x := 0; x < e.g.X; x++ {
			fx := float64(x)

			r, g, b := e.colorAt(fx, fy)
			c := e.lumaAt(fx, fy, false)
			a, ok := e.alphaAt(fx, fy)
			if !ok {
				continue
			}

			e.openRecord(r, g, b, c, a)
			e.tline("scale(scale_all + (scale_map * " + mapTriple(c) + "))")
			e.tline(parityRot)
			e.tline("rotate((rotate_map * " + mapTriple(c) + ") + rotate_all)")
			e.tline(e.rotateJitter())
			e.tline(parityTrn)
			e.tline("translate(move_map * " + mapTriple(c) + ")")
			e.tline(e.moveJitter())
			e.tline(fmt.Sprintf("translate<%d, %d, 0>", x, y))
			e.closeRecord()
		}
	}
}

// convert63 walks the 6/3 honeycomb packing: centers on a triangular
// lattice at half the 3/6 row pitch, even rows shifted half a tile.
// The bilinear luminance sample shifts with the row so the map input
// reads where the tile actually lands; 3/6 deliberately does not.
func convert63(e *emitter) {
	pitch := 0.5 * triangleHeight
	rows := int(float64(e.g.Y) / pitch)
	for row := 0; row < rows; row++ {
		e.rowComment(row)

		parity := "transform {evenodd_transform}"
		shift := 0.0
		if (row+1)%2 == 0 {
			parity = "translate<0.5, 0, 0>"
			shift = 0.5
		}
		sy := float64(row) * pitch

		for x := 0; x < e.g.X; x++ {
			fx := float64(x)

			r, g, b := e.colorAt(fx, sy)
			c := e.lumaAt(fx+shift, sy, true)
			a, ok := e.alphaAt(fx, sy)
			if !ok {
				continue
			}

			e.openRecord(r, g, b, c, a)
			e.tline("scale(<1, 1, 1> + (scale_map * " + mapTriple(c) + "))")
			e.tline("rotate(rotate_map * " + mapTriple(c) + ")")
			e.tline(e.rotateJitter())
			e.tline(parity)
			e.tline("translate(move_map * " + mapTriple(c) + ")")
			e.tline(e.moveJitter())
			e.tline(fmt.Sprintf("translate<%d, %s, 0>", x, ftoa(sy)))
			e.closeRecord()
		}
	}
}
