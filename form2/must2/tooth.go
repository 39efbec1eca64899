// Package must2 generates the 2D profile curves of a harmonic drive.
// Constructors panic on bad input with errors wrapping the hdrive error
// kinds; the form2 package wraps them with error returning equivalents.
package must2

import (
	"fmt"
	"math"

	"github.com/imnuman/hdrive"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tooth returns the outline of a single tooth in a local frame centered
// on the tooth's angular midpoint: x tangent to the pitch circle, y
// radial. The curve runs root to tip to root with the tip at x=0.
//
// The outline is the S-curve (double-arc) approximation used for
// harmonic drive teeth, not an involute. The external variant eases y
// with a half sine over a linear x sweep of -w/3 to +w/3, w being half
// the circular pitch; the internal variant sweeps x with a cosine
// weighted root radius term and rises linearly in y.
//
// The external variant samples n+1 points, the internal variant n. The
// asymmetry is inherited from the manufacturing drawings this package
// reproduces and is deliberate; both variants cover the full parameter
// range t in [0,1].
func Tooth(spec hdrive.ToothSpec, n int) hdrive.PointSequence {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	if n < 2 {
		panic(fmt.Errorf("%w: %d points per tooth, need at least 2", hdrive.ErrDegenerateProfile, n))
	}
	pitch := math.Pi * spec.Module
	w := pitch / 2
	add, ded := spec.Addendum, spec.Dedendum

	if spec.Internal {
		pts := make([]r2.Vec, n)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			if t <= 0.5 {
				// Left flank, root to tip.
				angle := math.Pi * (1 - 2*t)
				pts[i] = r2.Vec{
					X: -w/4 + spec.RootRadius*math.Cos(angle)*0.5,
					Y: -ded + (add+ded)*(2*t),
				}
			} else {
				// Right flank, tip to root.
				angle := math.Pi * (2*t - 1)
				pts[i] = r2.Vec{
					X: w/4 - spec.RootRadius*math.Cos(angle)*0.5,
					Y: add - (add+ded)*(2*(t-0.5)),
				}
			}
		}
		return hdrive.PointSequence{Points: pts}
	}

	pts := make([]r2.Vec, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		if t <= 0.5 {
			// Left flank, root to tip.
			progress := 2 * t
			angle := math.Pi * progress / 2
			pts[i] = r2.Vec{
				X: -w / 3 * (1 - progress),
				Y: -ded + (add+ded)*math.Sin(angle),
			}
		} else {
			// Right flank, tip to root.
			progress := 2 * (t - 0.5)
			angle := math.Pi * (1 - progress) / 2
			pts[i] = r2.Vec{
				X: w / 3 * progress,
				Y: -ded + (add+ded)*math.Sin(angle),
			}
		}
	}
	return hdrive.PointSequence{Points: pts}
}
