package povmosaic

import "gonum.org/v1/gonum/interp"

// LinearSpline builds a piecewise-linear transfer curve from control
// points, the Go-side counterpart of the linear_spline map the scene
// declares. xs must be strictly increasing. The returned function suits
// Options.Map as well as Options.ColorTransform.
func LinearSpline(xs, ys []float64) (func(float64) float64, error) {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return pl.Predict, nil
}
