// Command povmosaic converts a raster image (PNG, PNM, GIF, JPEG,
// TIFF) into a POV-Ray mosaic scene.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/povmosaic"
	"github.com/setanarut/povmosaic/utils"
)

func realMain() error {
	lattice := flag.String("lattice", "36", "plane partition: 36 (triangles), 44 (squares), 63 (hexagons)")
	output := flag.String("output", "", "output POV-Ray file (default input name with .pov)")
	paletteSize := flag.Int("palette", 0, "quantize tile colors to a palette of this many colors (0 disables)")
	paletteMethod := flag.String("palette-method", "dominantcolor", "palette extraction method: dominantcolor or kmeans")
	paletteOut := flag.String("palette-out", "", "also save the extracted palette swatches as PNG")
	nearest := flag.Bool("nearest", false, "nearest-neighbor luminance sampling instead of bilinear")
	noStretch := flag.Bool("no-alpha-stretch", false, "disable the 1% alpha extension before dithering")
	brick := flag.Float64("brick", 0, "horizontal shift of even rows, e.g. 0.5 for brick bond (4/4 only)")
	jitterMove := flag.Float64("jitter-move", 0, "random per-tile placement jitter magnitude")
	jitterRotate := flag.Float64("jitter-rotate", 0, "random per-tile rotation jitter, degrees")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s [OPTIONS] <input image file>:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.NArg() {
	case 0:
		flag.Usage()
		return fmt.Errorf("no input file given")
	case 1:
		// Great
	default:
		flag.Usage()
		return fmt.Errorf("unrecognised arguments %s", strings.Join(flag.Args()[1:], ", "))
	}
	input := flag.Arg(0)

	opt := povmosaic.DefaultOptions()
	switch *lattice {
	case "36":
		opt.Lattice = povmosaic.Triangular36
	case "44":
		opt.Lattice = povmosaic.Square44
	case "63":
		opt.Lattice = povmosaic.Hexagonal63
	default:
		return fmt.Errorf("unknown lattice %q (want 36, 44 or 63)", *lattice)
	}
	opt.NearestLuma = *nearest
	opt.NoAlphaStretch = *noStretch
	if *brick != 0 {
		if opt.Lattice != povmosaic.Square44 {
			return fmt.Errorf("-brick only applies to the 4/4 lattice")
		}
		opt.BrickOffset = povmosaic.Vec3{*brick, 0, 0}
	}
	if *jitterMove != 0 {
		opt.MoveJitter = povmosaic.Vec3{*jitterMove, *jitterMove, *jitterMove}
	}
	if *jitterRotate != 0 {
		opt.RotateJitter = povmosaic.Vec3{*jitterRotate, *jitterRotate, *jitterRotate}
	}
	if *seed != 0 {
		opt.Rand = rand.New(rand.NewSource(*seed))
	}

	fmt.Printf("Reading %s...", input)
	grid, err := utils.ReadGrid(input)
	if err != nil {
		return err
	}
	fmt.Printf("done (%dx%d, %d channels, max %d)\n", grid.X, grid.Y, grid.Z, grid.Max)

	if *paletteSize > 0 {
		method := utils.PaletteMethodDominantColor
		switch *paletteMethod {
		case "dominantcolor":
		case "kmeans":
			method = utils.PaletteMethodKMeans
		default:
			return fmt.Errorf("unknown palette method %q", *paletteMethod)
		}
		fmt.Printf("Extracting %d-color palette (%s)...", *paletteSize, method)
		palette := utils.ExtractPalette(utils.ImageFromGrid(grid), *paletteSize, method)
		utils.SortPaletteByBrightness(palette)
		fmt.Println("done")
		if *paletteOut != "" {
			if err := utils.SavePalette(palette, 64, *paletteOut); err != nil {
				return err
			}
		}
		opt.Palette = palette
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".pov"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("Converting to POV-Ray file '%s' (%s lattice)...", out, opt.Lattice)
	if err := povmosaic.Convert(grid, f, opt); err != nil {
		return err
	}
	fmt.Println("done")

	return nil
}

func main() {
	err := realMain()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
