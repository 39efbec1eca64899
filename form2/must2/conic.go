package must2

import (
	"fmt"
	"math"

	"github.com/imnuman/hdrive"
	"github.com/imnuman/hdrive/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Ellipse returns a closed ellipse outline with the given axis lengths,
// sampled at n equally spaced angles, counter clockwise from the
// positive major axis. The first point is appended again at the end so
// closure is exact, not merely within tolerance; downstream polyline
// closing depends on the coincidence being bit for bit.
func Ellipse(majorAxis, minorAxis float64, n int) hdrive.PointSequence {
	if majorAxis <= 0 || minorAxis <= 0 {
		panic(fmt.Errorf("%w: ellipse axes %g x %g", hdrive.ErrInvalidParameter, majorAxis, minorAxis))
	}
	if n < 3 {
		panic(fmt.Errorf("%w: %d points on ellipse, need at least 3", hdrive.ErrDegenerateProfile, n))
	}
	a := majorAxis / 2
	b := minorAxis / 2
	pts := make([]r2.Vec, n, n+1)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Vec{X: a * math.Cos(angle), Y: b * math.Sin(angle)}
	}
	pts = append(pts, pts[0])
	return hdrive.PointSequence{Points: pts, Closed: true}
}

// Circle returns a closed circle outline of the given diameter. See
// Ellipse for the sampling and closure contract.
func Circle(diameter float64, n int) hdrive.PointSequence {
	if diameter <= 0 {
		panic(fmt.Errorf("%w: circle diameter %g", hdrive.ErrInvalidParameter, diameter))
	}
	return Ellipse(diameter, diameter, n)
}

// BoltCircle returns n hole centers equally spaced on a bolt circle of
// the given diameter, starting on the positive x axis. n of zero is a
// valid pattern with no holes.
func BoltCircle(diameter float64, n int) []r2.Vec {
	if diameter <= 0 {
		panic(fmt.Errorf("%w: bolt circle diameter %g", hdrive.ErrInvalidParameter, diameter))
	}
	if n < 0 {
		panic(fmt.Errorf("%w: %d bolts", hdrive.ErrInvalidParameter, n))
	}
	centers := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		centers[i] = d2.PolarToXY(diameter/2, 2*math.Pi*float64(i)/float64(n))
	}
	return centers
}
