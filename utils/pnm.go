package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/setanarut/povmosaic"
)

// DecodePNM reads a Netpbm image (P1-P6: PBM, PGM, PPM in both ASCII
// and binary form) into a sample grid. Bitmaps become 0/255 grey
// (1 is black per the PBM convention); grey and color maxvals other
// than 255 rescale to the nearest supported channel depth.
func DecodePNM(r io.Reader) (*povmosaic.Grid, error) {
	br := bufio.NewReader(r)

	magic, err := pnmToken(br)
	if err != nil {
		return nil, fmt.Errorf("pnm: reading magic: %w", err)
	}
	if len(magic) != 2 || magic[0] != 'P' || magic[1] < '1' || magic[1] > '6' {
		return nil, fmt.Errorf("pnm: bad magic %q", magic)
	}
	format := int(magic[1] - '0')

	w, err := pnmInt(br)
	if err != nil {
		return nil, fmt.Errorf("pnm: reading width: %w", err)
	}
	h, err := pnmInt(br)
	if err != nil {
		return nil, fmt.Errorf("pnm: reading height: %w", err)
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("pnm: bad size %dx%d", w, h)
	}

	maxval := 1
	if format != 1 && format != 4 {
		maxval, err = pnmInt(br)
		if err != nil {
			return nil, fmt.Errorf("pnm: reading maxval: %w", err)
		}
		if maxval < 1 || maxval > 65535 {
			return nil, fmt.Errorf("pnm: bad maxval %d", maxval)
		}
	}

	z := 1
	if format == 3 || format == 6 {
		z = 3
	}

	// Rescale odd maxvals to a supported channel ceiling.
	outMax := 255
	if maxval > 255 {
		outMax = 65535
	}

	g := &povmosaic.Grid{X: w, Y: h, Z: z, Max: outMax, Pix: make([]int, w*h*z)}

	switch format {
	case 1:
		for i := range g.Pix {
			b, err := pnmBit(br)
			if err != nil {
				return nil, fmt.Errorf("pnm: reading bitmap: %w", err)
			}
			if b == 0 {
				g.Pix[i] = 255
			}
		}

	case 2, 3:
		for i := range g.Pix {
			v, err := pnmInt(br)
			if err != nil {
				return nil, fmt.Errorf("pnm: reading sample %d: %w", i, err)
			}
			g.Pix[i] = rescale(v, maxval, outMax)
		}

	case 4:
		// The single whitespace byte after the header is consumed with
		// the last header token; packed rows follow immediately.
		stride := (w + 7) / 8
		row := make([]byte, stride)
		for y := 0; y < h; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, fmt.Errorf("pnm: reading bitmap row %d: %w", y, err)
			}
			for x := 0; x < w; x++ {
				if row[x/8]&(0x80>>uint(x%8)) == 0 {
					g.Pix[y*w+x] = 255
				}
			}
		}

	case 5, 6:
		bytesPer := 1
		if maxval > 255 {
			bytesPer = 2
		}
		buf := make([]byte, w*h*z*bytesPer)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("pnm: reading raster: %w", err)
		}
		for i := range g.Pix {
			var v int
			if bytesPer == 2 {
				v = int(buf[2*i])<<8 | int(buf[2*i+1])
			} else {
				v = int(buf[i])
			}
			g.Pix[i] = rescale(v, maxval, outMax)
		}
	}

	return g, nil
}

// ReadPNM decodes the Netpbm file at path.
func ReadPNM(path string) (*povmosaic.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePNM(f)
}

func rescale(v, from, to int) int {
	if from == to {
		return v
	}
	if v < 0 {
		v = 0
	}
	if v > from {
		v = from
	}
	return v * to / from
}

// pnmToken reads the next whitespace-delimited token, skipping
// # comments, which the format allows anywhere in the header and in
// ASCII rasters.
func pnmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' || b == '\r' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func pnmInt(br *bufio.Reader) (int, error) {
	tok, err := pnmToken(br)
	if err != nil {
		return 0, err
	}
	v := 0
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bad integer %q", tok)
		}
		v = v*10 + int(c-'0')
		if v > 1<<30 {
			return 0, fmt.Errorf("integer %q out of range", tok)
		}
	}
	return v, nil
}

// pnmBit reads one P1 digit. Plain-bitmap digits need no separating
// whitespace, so this works bytewise rather than tokenwise.
func pnmBit(br *bufio.Reader) (int, error) {
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch {
		case inComment:
			if b == '\n' || b == '\r' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case b == '0':
			return 0, nil
		case b == '1':
			return 1, nil
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
		default:
			return 0, fmt.Errorf("bad bitmap byte %q", b)
		}
	}
}
