package povmosaic

import (
	"bufio"
	"fmt"
	"time"
)

// Version string stamped into generated scene headers.
const Version = "2.0.0"

// Fixed scene text below mirrors the exported templates: thingie /
// finish / normal preset libraries, camera, lights and the closing
// boilerplate. None of it is computed; per-run values are stamped in
// with Fprintf.

func maxXY(g *Grid) int {
	if g.X > g.Y {
		return g.X
	}
	return g.Y
}

func writeIntro(w *bufio.Writer, g *Grid, desc string, now time.Time) {
	fmt.Fprintf(w, `/*
Persistence of Vision Ray Tracer Scene Description File
Version: 3.7
Description: %s
Source image properties: Width %d px, Height %d px, Colors per channel: %d
File automatically generated at %s by povmosaic ver. %s
*/

`, desc, g.X, g.Y, g.Max, now.Format(time.ANSIC), Version)

	w.WriteString(`
#version 3.7;

global_settings{
    max_trace_level 3   // Small to speed up preview. May need to be increased for metals
    adc_bailout 0.01    // High to speed up preview. May need to be decreased to 1/256
    assumed_gamma 1.0
    ambient_light <0.5, 0.5, 0.5>
    charset utf8
}

#include "functions.inc"

`)
}

const finishVariants = `
//       Thingie finish variants
#declare thingie_finish_1 = finish{ambient 0.1 diffuse 0.7 specular 0.8 reflection 0 roughness 0.005};  // Smooth plastic
#declare thingie_finish_2 = finish{phong 0.1 phong_size 1}; // Dull, good color representation
#declare thingie_finish_3 = finish{ambient 0.1 diffuse 0.5 specular 1
    roughness 0.01 metallic reflection {0.75 metallic}};    // Metallic example
#declare thingie_finish_4 = finish{ambient 0.1 diffuse 0.5 reflection 0.1 specular 1 roughness 0.005
    irid {0.5 thickness 0.9 turbulence 0.9}};    // Iridescence example
`

const colorFunctions = `#declare yes_color = 1;         // Whether source per-thingie color is taken or global pattern applied
// Color-related settings below work only for "yes_color = 1;"
#declare cm = function(Channel) {Channel};   // Color transfer function for RGB channels, all thingies
#declare f_val = function(Luma, Alpha) {0.0};  // Filter value for all thingies. 0 means opaque.
#declare t_val = function(Luma, Alpha) {0.0};  // Transmit value for all thingies. Note that for Alpha = transparency you need inversion (1 - Alpha)!
`

const overlayTexture = `#declare thingie_texture_2 = texture {  // Define transparent texture overlay here
  pigment {gradient z colour_map {[0.0, rgbt <0,0,0,1>] [1.0, rgbt <0,0,0,1>]} scale 0.1 rotate <30, 30, 0>}};

`

const mapSpline = `
/*       Map function
Maps are transfer functions control value (i.e. source pixel brightness) is passed through.
By default exported map is five points linear spline, control points are set in the table below,
first column is input, first digits in second column is output for this input.
Note that by default input=output, i.e. no changes applied to source pixel brightness. */

#declare Curve = function {  // Spline curve construction begins
  spline { linear_spline
    0.0,   <0.0,   0>,
    0.25,  <0.25,  0>,
    0.5,   <0.5,   0>,
    0.75,  <0.75,  0>,
    1.0,   <1.0,   0>}
  };  // Construction complete
#declare map = function(c) {Curve(c).u};  // Spline curve assigned as map
`

func writeModifierDeclares(w *bufio.Writer, g *Grid, opt Options) {
	fmt.Fprintf(w, `
//       Per-thingie modifiers
#declare move_map = %s;    // To move thingies depending on map. Additive, no constrains on values. Maximum source image size is %d
#declare scale_map = %s;   // To rescale thingies depending on map. Additive, no constrains on values except object overlap on x,y
#declare rotate_map = %s;  // To rotate thingies depending on map. Values in degrees
#declare move_rnd = %s;    // To move thingies randomly. No constrains on values
#declare rotate_rnd = %s;  // To rotate thingies randomly. Values in degrees

//       Per-thingie normal modifiers
#declare normal_move_rnd = %s;    // Random move of normal map. No constrains on values
#declare normal_rotate_rnd = %s;  // Random rotate of normal map. Values in degrees
`, opt.MoveMap.pov(), maxXY(g), opt.ScaleMap.pov(), opt.RotateMap.pov(),
		opt.MoveJitter.pov(), opt.RotateJitter.pov(),
		opt.NormalMoveJitter.pov(), opt.NormalRotateJitter.pov())
}

func writeSeedAndBackground(w *bufio.Writer, now time.Time) {
	fmt.Fprintf(w, `
//       Seed random
#declare rnd_1 = seed(%d);

background{color rgbft <0, 0, 0, 1, 1>} // Hey, I am just trying to be explicit in here!

`, now.UnixMicro())
}

const cameraAndLightsByDeclare = `
/*
  Camera and light

NOTE: Coordinate system match Photoshop,
origin is top left, z points to the viewer.
sky vector is important!

*/

#declare camera_position = <0.0, 0.0, 3.0>;  // Camera position over object, used for view angle

camera{
//  orthographic
  location camera_position
  right x*image_width/image_height
  up y
  sky <0, -1, 0>
  direction <0, 0, vlength(camera_position - <0.0, 0.0, 1.0 / max(X, Y)>)>  // May alone work for many pictures. Otherwise fiddle with angle below
  angle 2.0*(degrees(atan2(0.5 * image_width * max((X + 0.5)/image_width, (Y + 0.5)/image_height) / max(X + 0.5, Y + 0.5), vlength(camera_position - <0.0, 0.0, 1.0 / max(X, Y)>)))) // Supposed to fit object
  look_at<0.0, 0.0, 0.0>
}

light_source{0*x
  color rgb<1.1, 1.0, 1.0>
//  area_light <1, 0, 0>, <0, 1, 0>, 5, 5 circular orient area_illumination on
  translate<4, -2, 3>
}

light_source{0*x
  color rgb<0.9, 1.0, 1.0>
//  area_light <1, 0, 0>, <0, 1, 0>, 5, 5 circular orient area_illumination on
  translate<-2, -6, 7>
}


/*  ----------------------------------------------
    |  Insert preset to override settings above  |
    ----------------------------------------------  */

// #include "preset.inc"    // Set path and name of your file related to scene file

`

const closingToad = `
/*

happy rendering

  0~0
 (---)
(.>|<.)
-------

*/`

// writeObjectClose wraps the emitted union with the yes_color fallback
// pigment, interior and global transform, then the signature block.
func writeObjectClose(w *bufio.Writer) {
	w.WriteString(`
object {thething
  #if (yes_color < 1)
    pigment {color rgb<0.5, 0.5, 0.5>}
    finish {thingie_finish}
  #end
  interior {thething_interior}
  transform {thething_transform}
}
` + closingToad)
}

/*  3/6 triangle packing  */

func writeHeader36(w *bufio.Writer, g *Grid, opt Options, now time.Time) {
	writeIntro(w, g, "Mosaic picture consisting from triangular prisms, triangle packing, Regular plane partition 3/6.", now)

	w.WriteString(`
// Necessary math stuff set as de facto constants to avoid importing math
#declare sqrtof3 = 1.7320508075688772935274463415059;      // sqrt(3)
#declare sqrtof3div2 = 0.86602540378443864676372317075294; // sqrt(3)/2


/*  -------------------------
    |  Predefined variants  |
    -------------------------  */

//       Thingie variants
#declare thingie_1 = prism {
    linear_sweep
    linear_spline
    -1,
    0,
    4,
    <-1.0, sqrtof3div2>, <1.0, sqrtof3div2>, <0, -sqrtof3div2>, <-1.0, sqrtof3div2>
    rotate x*90 translate z
};
#declare thingie_2 = prism {
    conic_sweep
    linear_spline
    -1,
    0,
    4,
    <-1.0, sqrtof3div2>, <1.0, sqrtof3div2>, <0, -sqrtof3div2>, <-1.0, sqrtof3div2>
    rotate x*90 translate z
};
#declare thingie_3 = difference {
    object {thingie_2}
    object {thingie_2 scale<1, 1, -1.0> translate<0, 0, 1.0>}
};  // WARNING: CSG of two previously defined objects depends on them!
` + finishVariants + `
//       Thingie normal variants
#declare thingie_normal_1 = normal{function {1}};  // Constant normal placeholder, template for function
#declare thingie_normal_2 = normal{bumps 1.0 scale<0.01, 0.01, 0.01>};
#declare thingie_normal_3 = normal{bumps 0.05 scale<1.0, 0.05, 0.5>};
#declare thingie_normal_4 = normal{spiral1 8 0.5 scallop_wave};
#declare thingie_normal_5 = normal{tiling 3 scale <0.5, 5, 0.5> rotate <90, 0, 0>};

/*  ----------------------------------------------------
    |  Global modifiers for all thingies in the scene  |
    ----------------------------------------------------  */

` + overlayTexture + colorFunctions + mapSpline + `
/*  -------------------------------------------
    |  Selecting variants, configuring scene  |
    -------------------------------------------  */

#declare thingie = thingie_1;
#declare thingie_finish = thingie_finish_1;
#declare thingie_normal = thingie_normal_1;
`)
	writeModifierDeclares(w, g, opt)

	fmt.Fprintf(w, `
/*  --------------------------------------------------
    |  Some properties for whole thething and scene  |
    --------------------------------------------------  */

//       Common interior for the whole thething, fade_distance set to thingie size before scale_map etc.
#declare thething_interior = interior {ior 2.0 fade_power 1.5 fade_distance 1.0*%s fade_color <0.0, 0.5, 1.0>};
//       Common transform for the whole thething, placed here just to avoid scrolling
#declare thething_transform = transform {
  // You can place your global scale, rotate etc. here
};
`, ftoa(1.0/float64(maxXY(g))))

	writeSeedAndBackground(w, now)

	fmt.Fprintf(w, `
/*  -----------------------------------------
    |  Source image width and height.       |
    |  Necessary for further calculations.  |
    -----------------------------------------  */

#declare X = %d;  // Source image width, px
#declare Y = %d;  // Source image height, px

`, g.X, g.Y)

	w.WriteString(cameraAndLightsByDeclare)
	w.WriteString(`
// Object thething made out of thingies

#declare thething = union{
`)
}

func writeFooter36(w *bufio.Writer, g *Grid) {
	w.WriteString(`
  // Object transforms to fit 1, 1, 1 cube at 0, 0, 0 coordinates
  translate <0.25, 1.5, 0> + <-0.5 * X, -0.5 * Y, 0>
  scale<1.0 / max(X, Y), 1.0 / max(X, Y), 1.0 / max(X, Y)>
} // thething closed
`)
	writeObjectClose(w)
}

/*  4/4 square packing  */

func writeHeader44(w *bufio.Writer, g *Grid, opt Options, now time.Time) {
	writeIntro(w, g, "Mosaic picture consisting from solid boxes, square packing, Regular plane partition 4/4.", now)

	w.WriteString(`
/*  -------------------------
    |  Predefined variants  |
    -------------------------  */

//       Thingie variants
#declare thingie_1 = box{<-0.5, -0.5, -0.5>, <0.5, 0.5, 0.5>};
#declare thingie_2 = sphere{<0, 0, 0>, 0.5};
#declare thingie_3 = cylinder{<0, 0, 0>, <0, 0, 1.0>, 0.5};
#declare thingie_4 = superellipsoid{<0.5, 0.5> scale 0.5};
// CSG example below, tetragonal bipyramid
#declare thingie_5 = union{
  prism{conic_sweep linear_spline 0.5, 1, 5,
    <-0.5, -0.5>, <-0.5, 0.5>, <0.5, 0.5>, <0.5, -0.5>, <-0.5, -0.5> translate<0, -1, 0>}
  prism{conic_sweep linear_spline -1, -0.5, 5,
    <-0.5, -0.5>, <-0.5, 0.5>, <0.5, 0.5>, <0.5, -0.5>, <-0.5, -0.5> translate<0, 1, 0>}
  rotate x*90};
// CSG examples below, may be good for randomly rotated thingies
#declare thingie_6 = intersection{
    cylinder{<0, 0, -1.0>, <0, 0, 1.0>, 0.5}
    cylinder{<0, 0, -1.0>, <0, 0, 1.0>, 0.5 rotate x*90}
    cylinder{<0, 0, -1.0>, <0, 0, 1.0>, 0.5 rotate y*90}
  };  //  Cubic rounded CSG end
#declare thingie_7 = intersection{
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5}
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5 rotate z*109.5}
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5 rotate z*109.5 rotate y*109.5}
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5 rotate z*109.5 rotate y*219.0}
  };  //  Tetrahedral rounded CSG end
#declare thingie_8 = isosurface{function{f_rounded_box(x, y, z, 0.11, 0.5, 0.5, 0.5)}};  // First float is roundness, three others - size
` + finishVariants + `
//       Thingie normal variants
#declare thingie_normal_1 = normal{function {1}};  // Constant normal placeholder, template for function
#declare thingie_normal_2 = normal{bumps 1.0 scale<0.01, 0.01, 0.01>};
#declare thingie_normal_3 = normal{bumps 0.05 scale<1.0, 0.05, 0.5>};
#declare thingie_normal_4 = normal{spiral1 8 0.5 scallop_wave};
#declare counts = 8; #declare thingie_normal_5 = normal{function{mod(abs(cos(counts*x)+cos(-counts*y)+cos(counts*z)), 1)}};
#declare thingie_normal_6 = normal{function{mod(8*sqrt(pow(x,2)+pow(y,2)+pow(z,2)), 1.0)}};

/*  ----------------------------------------------------
    |  Global modifiers for all thingies in the scene  |
    ----------------------------------------------------  */

` + overlayTexture + colorFunctions)

	fmt.Fprintf(w, `
#declare evenodd_rotate = %s;  // Odd lines rotate, rarely useful
#declare evenodd_offset = %s;      // Even lines shift, 0.5 x for brick wall
#declare scale_all = <1, 1, 1>;             // Base scale of all thingies. 1=original
#declare rotate_all = <0, 0, 0>;            // Base rotation of all thingies. Values in degrees
`, opt.BrickRotate.pov(), opt.BrickOffset.pov())

	w.WriteString(mapSpline + `
/*  -------------------------------------------
    |  Selecting variants, configuring scene  |
    -------------------------------------------  */

#declare thingie = thingie_8;  // Default set to isosurface thingie_8 to give you favorable first impression
#declare thingie_finish = thingie_finish_1;
#declare thingie_normal = thingie_normal_1;
`)
	writeModifierDeclares(w, g, opt)

	fmt.Fprintf(w, `
/*  --------------------------------------------------
    |  Some properties for whole thething and scene  |
    --------------------------------------------------  */

//       Common interior for the whole thething, fade_distance set to thingie size before scale_map etc.
#declare thething_interior = interior {ior 2.0 fade_power 1.5 fade_distance 1.0*%s fade_color <0.0, 0.5, 1.0>};
//       Common transform for the whole thething, placed here just to avoid scrolling
#declare thething_transform = transform {
  // You can place your global scale, rotate etc. here
};
`, ftoa(1.0/float64(maxXY(g))))

	writeSeedAndBackground(w, now)

	fmt.Fprintf(w, `
/*
  Camera and light

NOTE: Coordinate system match Photoshop,
origin is top left, z points to the viewer.
sky vector is important!

*/

#declare camera_position = <0.0, 0.0, 3.0>;  // Camera position over object, used for view angle

camera{
//  orthographic
  location camera_position
  right x*image_width/image_height
  up y
  sky <0, -1, 0>
  direction <0, 0, vlength(camera_position - <0.0, 0.0, %s>)>  // May alone work for many pictures. Otherwise fiddle with angle below
  angle 2.0*(degrees(atan2(0.5 * image_width * max(%d/image_width, %d/image_height) / %d, vlength(camera_position - <0.0, 0.0, %s>)))) // Supposed to fit object
  look_at<0.0, 0.0, 0.0>
}

light_source{0*x
  color rgb<1.1, 1.0, 1.0>
//  area_light <1, 0, 0>, <0, 1, 0>, 5, 5 circular orient area_illumination on
  translate<4, -2, 3>
}

light_source{0*x
  color rgb<0.9, 1.0, 1.0>
//  area_light <1, 0, 0>, <0, 1, 0>, 5, 5 circular orient area_illumination on
  translate<-2, -6, 7>
}


/*  ----------------------------------------------
    |  Insert preset to override settings above  |
    ----------------------------------------------  */

// #include "preset.inc"    // Set path and name of your file related to scene file


// Object thething made out of thingies
#declare thething = union{
`, ftoa(1.0/float64(maxXY(g))), g.X, g.Y, maxXY(g), ftoa(1.0/float64(maxXY(g))))
}

func writeFooter44(w *bufio.Writer, g *Grid) {
	scale := ftoa(1.0 / float64(maxXY(g)))
	fmt.Fprintf(w, `
  // Object transforms to fit 1, 1, 1 cube at 0, 0, 0 coordinates
  translate <0.5, 0.5, 0> + <%s, %s, 0>
  scale<%s, %s, %s>
} // thething closed
`, ftoa(-0.5*float64(g.X)), ftoa(-0.5*float64(g.Y)), scale, scale, scale)
	writeObjectClose(w)
}

/*  6/3 honeycomb packing  */

func writeHeader63(w *bufio.Writer, g *Grid, opt Options, now time.Time) {
	writeIntro(w, g, "Mosaic picture consisting from solid spheres, triangle packing, Regular plane partition 6/3.", now)

	w.WriteString(`
// Necessary math stuff set as de facto constants to avoid importing math
#declare sqrtof3 = 1.7320508075688772935274463415059;   // sqrt(3)
#declare revsqrtof3 = 1.0/sqrtof3;                      // 1.0/sqrt(3)


/*  -------------------------
    |  Predefined variants  |
    -------------------------  */

//       Thingie variants
#declare thingie_1 = sphere{<0, 0, 0>, 0.5};
#declare thingie_2 = cylinder{<0, 0, 0>, <0, 0, 1.0>, 0.5};
#declare thingie_3 = cone{<0, 0, 0>, 0.5, <0, 0, 1.0>, 0.0};
// Hexagonal prism below, like pencils in honeycomb pack. Try conic_sweep as well
#declare thingie_4 = prism{linear_sweep linear_spline -1, 0, 7,
 <-0.5, 0.5*revsqrtof3>, <0,revsqrtof3>, <0.5, 0.5*revsqrtof3>,
 <0.5, -0.5*revsqrtof3>, <0,-revsqrtof3>, <-0.5, -0.5*revsqrtof3>,
 <-0.5, 0.5*revsqrtof3> rotate x*90 translate z};
// Rhomb prism below. Try conic_sweep as well
#declare thingie_5 = prism{linear_sweep linear_spline -1, 0, 5, <-1.0, 0>,
 <0, sqrtof3>, <1, 0>, <0, -sqrtof3>, <-1.0, 0> rotate x*90 scale 0.5 translate z};
// CSG examples below, may be good for randomly rotated thingies
#declare thingie_6 = intersection{
    cylinder{<0, 0, -1.0>, <0, 0, 1.0>, 0.5}
    cylinder{<0, 0, -1.0>, <0, 0, 1.0>, 0.5 rotate x*90}
    cylinder{<0, 0, -1.0>, <0, 0, 1.0>, 0.5 rotate y*90}
  };  //  Cubic rounded CSG end
#declare thingie_7 = intersection{
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5}
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5 rotate z*109.5}
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5 rotate z*109.5 rotate y*109.5}
    cylinder{<0, -1.0, 0>, <0, 1.0, 0>, 0.5 rotate z*109.5 rotate y*219.0}
  };  //  Tetrahedral rounded CSG end
` + finishVariants + `
//       Thingie normal variants
#declare thingie_normal_1 = normal{function {1}};  // Constant normal placeholder, template for function
#declare thingie_normal_2 = normal{bumps 1.0 scale<0.01, 0.01, 0.01>};
#declare thingie_normal_3 = normal{bumps 0.05 scale<1.0, 0.05, 0.5>};
#declare thingie_normal_4 = normal{spiral1 8 0.5 scallop_wave};
#declare counts = 8; #declare thingie_normal_5 = normal{function{mod(abs(cos(counts*x)+cos(-counts*y)+cos(counts*z)), 1)}};  // Typically counts 4-16 is acceptable
#declare thingie_normal_6 = normal{function{64*abs(x*y*z)}};

/*  ----------------------------------------------------
    |  Global modifiers for all thingies in the scene  |
    ----------------------------------------------------  */

` + overlayTexture + colorFunctions + `
#declare evenodd_transform = transform { };  // You may put odd lines transform here, rarely useful
` + mapSpline + `
/*  -------------------------------------------
    |  Selecting variants, configuring scene  |
    -------------------------------------------  */

#declare thingie = thingie_1;
#declare thingie_finish = thingie_finish_1;
#declare thingie_normal = thingie_normal_1;
`)
	writeModifierDeclares(w, g, opt)

	writeSeedAndBackground(w, now)

	fmt.Fprintf(w, `
/*  -----------------------------------------
    |  Source image width and height.       |
    |  Necessary for further calculations.  |
    -----------------------------------------  */

#declare X = %d;  // Source image width, px
#declare Y = %d;  // Source image height, px


/*  --------------------------------------------------
    |  Some properties for whole thething and scene  |
    --------------------------------------------------  */

//       Common interior for the whole thething, fade_distance set to thingie size before scale_map etc.
#declare thething_interior = interior {ior 2.5 fade_power 1.5 fade_distance (1.0 / max(X, Y)) fade_color <0.0, 0.5, 1.0>};
//       Common transform for the whole thething, placed here just to avoid scrolling
#declare thething_transform = transform {
  // You can place your global scale, rotate etc. here
};
`, g.X, g.Y)

	w.WriteString(cameraAndLightsByDeclare)
	w.WriteString(`
// Object thething made out of thingies

#declare thething = union{
`)
}

func writeFooter63(w *bufio.Writer, g *Grid) {
	w.WriteString(`
  // Object transforms to fit 1, 1, 1 cube at 0, 0, 0 coordinates
  translate <0.25, 0.5, 0> + <-0.5 * X, -0.5 * Y, 0>
  scale<1.0 / max(X, Y), 1.0 / max(X, Y), 1.0 / max(X, Y)>
} // thething closed
`)
	writeObjectClose(w)
}
