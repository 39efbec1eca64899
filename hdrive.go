// Package hdrive computes the 2D geometric profiles of a strain wave
// ("harmonic") gear drive from a small set of engineering parameters.
//
// The three parts of a harmonic drive are generated as ordered point
// sequences suitable for CAD/CAM export:
//   - the flex spline, a thin walled cup with external teeth,
//   - the circular spline, a rigid ring with internal teeth,
//   - the wave generator, an elliptical cam that deforms the flex spline.
//
// Tooth outlines use the S-curve (double-arc) approximation common to
// harmonic drive manufacture rather than an involute. Profile generation
// lives in form2 and form2/must2; part composition lives in drive; export
// glue (DXF, SVG, STL, plots, coordinate files) lives in render.
package hdrive

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
	// Mil is millimetres per 1/1000 of an inch
	Mil = MillimetresPerInch / 1000.0
)

// tolerance is the coincidence tolerance used when comparing points.
const tolerance = 1e-9
