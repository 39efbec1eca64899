package must2

import (
	"fmt"
	"math"

	"github.com/imnuman/hdrive"
	"gonum.org/v1/gonum/spatial/r2"
)

// GearArray replicates a single tooth outline z times around a pitch
// circle, returning the full gear profile. The local tangential offset
// of each tooth point becomes an angular increment via the small angle
// approximation dtheta = x/r, valid because |x| is a fraction of the
// circular pitch and r spans many teeth.
//
// External gears add the radial offset outward (flex spline); internal
// gears subtract it so material points inward (circular spline). The
// returned sequence has z*tooth.Len() points and is closed: the last
// tooth's end wraps to the first tooth's start.
func GearArray(tooth hdrive.PointSequence, z int, pitchDiameter float64, internal bool) hdrive.PointSequence {
	if z < 1 {
		panic(fmt.Errorf("%w: %d teeth", hdrive.ErrInvalidParameter, z))
	}
	if pitchDiameter <= 0 {
		panic(fmt.Errorf("%w: pitch diameter %g", hdrive.ErrInvalidParameter, pitchDiameter))
	}
	if tooth.Len() == 0 {
		panic(fmt.Errorf("%w: empty tooth profile", hdrive.ErrDegenerateProfile))
	}
	r := pitchDiameter / 2
	pts := make([]r2.Vec, 0, z*tooth.Len())
	for k := 0; k < z; k++ {
		offset := 2 * math.Pi * float64(k) / float64(z)
		for _, p := range tooth.Points {
			theta := offset + p.X/r
			rt := r + p.Y
			if internal {
				rt = r - p.Y
			}
			pts = append(pts, r2.Vec{X: rt * math.Cos(theta), Y: rt * math.Sin(theta)})
		}
	}
	return hdrive.PointSequence{Points: pts, Closed: true}
}
