package render

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	sdfxrender "github.com/deadsy/sdfx/render"

	"github.com/imnuman/hdrive"
	"github.com/imnuman/hdrive/drive"
	"github.com/imnuman/hdrive/form2"
)

// CAD kernel adapter. The 2D point sequences become sdfx polygons which
// are extruded and combined into solid bodies, the same construction
// the shop drawings describe: a toothed band on a thin walled cup, a
// ring with internal teeth and bolt holes, an elliptical cam plate.
// All solids sit with their base on z=0.

// polygon2D converts a closed sequence to an sdfx polygon. The
// duplicated closing point of conic sequences is dropped; sdfx closes
// the loop itself.
func polygon2D(s hdrive.PointSequence) (sdf.SDF2, error) {
	pts := s.Points
	if s.EndsCoincide() {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: polygon with %d vertices", hdrive.ErrDegenerateProfile, len(pts))
	}
	v := make([]sdf.V2, len(pts))
	for i, p := range pts {
		v[i] = sdf.V2{X: p.X, Y: p.Y}
	}
	return sdf.Polygon2D(v)
}

func raise(s sdf.SDF3, z float64) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3d(sdf.V3{Z: z}))
}

// FlexSplineSolid returns the flex spline cup: outer wall with the
// toothed band at the rim, hollowed above the base.
func FlexSplineSolid(p hdrive.Parameters, opts drive.Options) (sdf.SDF3, error) {
	g, err := drive.FlexSpline(p, opts)
	if err != nil {
		return nil, err
	}
	teeth2, err := polygon2D(g.Sequences(hdrive.RoleTeeth)[0])
	if err != nil {
		return nil, err
	}
	band := raise(sdf.Extrude3D(teeth2, p.ToothZoneWidth), p.CupDepth-p.ToothZoneWidth/2)

	wall, err := sdf.Cylinder3D(p.CupDepth, p.OuterDiameterFlex/2, 0)
	if err != nil {
		return nil, err
	}
	cavity, err := sdf.Cylinder3D(p.CupDepth, p.InnerDiameterFlex/2, 0)
	if err != nil {
		return nil, err
	}
	body := sdf.Union3D(raise(wall, p.CupDepth/2), band)
	return sdf.Difference3D(body, raise(cavity, p.BaseThickness+p.CupDepth/2)), nil
}

// CircularSplineSolid returns the circular spline ring with internal
// teeth and the bolt hole pattern.
func CircularSplineSolid(p hdrive.Parameters, opts drive.Options) (sdf.SDF3, error) {
	g, err := drive.CircularSpline(p, opts)
	if err != nil {
		return nil, err
	}
	ring, err := sdf.Cylinder3D(p.RingHeight, p.OuterDiameterCirc/2, 0)
	if err != nil {
		return nil, err
	}
	teeth2, err := polygon2D(g.Sequences(hdrive.RoleTeeth)[0])
	if err != nil {
		return nil, err
	}
	// The internal tooth outline bounds the open center of the ring.
	body := sdf.Difference3D(ring, sdf.Extrude3D(teeth2, p.RingHeight))

	centers, err := form2.BoltCircle(p.BoltCircleDiameter, p.NumBolts)
	if err != nil {
		return nil, err
	}
	for _, c := range centers {
		hole, err := sdf.Cylinder3D(p.RingHeight, p.BoltHoleDiameter/2, 0)
		if err != nil {
			return nil, err
		}
		hole = sdf.Transform3D(hole, sdf.Translate3d(sdf.V3{X: c.X, Y: c.Y}))
		body = sdf.Difference3D(body, hole)
	}
	return raise(body, p.RingHeight/2), nil
}

// WaveGeneratorSolid returns the elliptical cam plate with bearing seat
// recess and shaft bore.
func WaveGeneratorSolid(p hdrive.Parameters, opts drive.Options) (sdf.SDF3, error) {
	g, err := drive.WaveGenerator(p, opts)
	if err != nil {
		return nil, err
	}
	cam2, err := polygon2D(g.Sequences(hdrive.RoleCam)[0])
	if err != nil {
		return nil, err
	}
	body := raise(sdf.Extrude3D(cam2, p.ToothZoneWidth), p.ToothZoneWidth/2)

	// 0.02 mm seat clearance for the bearing press fit.
	seat, err := sdf.Cylinder3D(p.BearingWidth, p.BearingOD/2+0.02, 0)
	if err != nil {
		return nil, err
	}
	body = sdf.Difference3D(body, raise(seat, p.ToothZoneWidth-p.BearingWidth/2))

	bore, err := sdf.Cylinder3D(2*p.ToothZoneWidth, p.HubBore/2, 0)
	if err != nil {
		return nil, err
	}
	return sdf.Difference3D(body, raise(bore, p.ToothZoneWidth/2)), nil
}

// BearingSolid returns the purchased bearing as a plain ring, for
// assembly visualisation only.
func BearingSolid(p hdrive.Parameters) (sdf.SDF3, error) {
	outer, err := sdf.Cylinder3D(p.BearingWidth, p.BearingOD/2, 0)
	if err != nil {
		return nil, err
	}
	bore, err := sdf.Cylinder3D(p.BearingWidth, p.BearingID/2, 0)
	if err != nil {
		return nil, err
	}
	return raise(sdf.Difference3D(outer, bore), p.BearingWidth/2), nil
}

// CreateSTL meshes a solid to path with marching cubes at the given
// cell resolution.
func CreateSTL(path string, s sdf.SDF3, meshCells int) {
	sdfxrender.ToSTL(s, meshCells, path, &sdfxrender.MarchingCubesOctree{})
}
