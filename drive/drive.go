// Package drive composes the harmonic drive parts from derived gear
// parameters: the flex spline, the circular spline and the wave
// generator, each a bag of role tagged point sequences ready for
// export. No geometry is computed here beyond placement of bolt hole
// centers; the curves come from form2.
package drive

import (
	"fmt"

	"github.com/imnuman/hdrive"
	"github.com/imnuman/hdrive/form2"
)

// Part names as they appear on drawings and output files.
const (
	NameFlexSpline     = "flex_spline"
	NameCircularSpline = "circular_spline"
	NameWaveGenerator  = "wave_generator"
	NameBearing        = "bearing"
)

// Options are the per generation run sampling densities.
// The zero value selects the defaults.
type Options struct {
	// PointsPerTooth is the sample count per tooth flank pair.
	// Minimum 2, default 20.
	PointsPerTooth int
	// PointsPerConic is the sample count for ellipses and circles.
	// Minimum 3, default 360.
	PointsPerConic int
}

func (o Options) withDefaults() Options {
	if o.PointsPerTooth == 0 {
		o.PointsPerTooth = 20
	}
	if o.PointsPerConic == 0 {
		o.PointsPerConic = 360
	}
	return o
}

func (o Options) validate() error {
	switch {
	case o.PointsPerTooth < 2:
		return fmt.Errorf("%w: %d points per tooth", hdrive.ErrDegenerateProfile, o.PointsPerTooth)
	case o.PointsPerConic < 3:
		return fmt.Errorf("%w: %d points per conic", hdrive.ErrDegenerateProfile, o.PointsPerConic)
	}
	return nil
}

func setup(p hdrive.Parameters, o Options) (Options, error) {
	if err := p.Validate(); err != nil {
		return o, err
	}
	o = o.withDefaults()
	return o, o.validate()
}

// FlexSpline returns the flex spline profile: the external tooth
// outline on the pitch circle and the inner bore of the cup wall.
func FlexSpline(p hdrive.Parameters, opts Options) (hdrive.PartGeometry, error) {
	opts, err := setup(p, opts)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	tooth, err := form2.Tooth(p.ToothSpec(false), opts.PointsPerTooth)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	teeth, err := form2.GearArray(tooth, p.ZFlex, p.PitchDiameterFlex, false)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	bore, err := form2.Circle(p.InnerDiameterFlex, opts.PointsPerConic)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	g := hdrive.NewPartGeometry(NameFlexSpline)
	g.Add(hdrive.RoleTeeth, teeth)
	g.Add(hdrive.RoleInnerBore, bore)
	return g, nil
}

// CircularSpline returns the circular spline profile: outer rim,
// internal tooth outline and the bolt hole pattern.
func CircularSpline(p hdrive.Parameters, opts Options) (hdrive.PartGeometry, error) {
	opts, err := setup(p, opts)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	rim, err := form2.Circle(p.OuterDiameterCirc, opts.PointsPerConic)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	tooth, err := form2.Tooth(p.ToothSpec(true), opts.PointsPerTooth)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	teeth, err := form2.GearArray(tooth, p.ZCirc, p.PitchDiameterCirc, true)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	g := hdrive.NewPartGeometry(NameCircularSpline)
	g.Add(hdrive.RoleOuterRim, rim)
	g.Add(hdrive.RoleTeeth, teeth)

	centers, err := form2.BoltCircle(p.BoltCircleDiameter, p.NumBolts)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	for _, c := range centers {
		hole, err := form2.Circle(p.BoltHoleDiameter, opts.PointsPerConic)
		if err != nil {
			return hdrive.PartGeometry{}, err
		}
		g.Add(hdrive.RoleBoltHole, hole.Translated(c))
	}
	return g, nil
}

// WaveGenerator returns the wave generator profile: elliptical cam,
// bearing seat, hub and shaft bore.
func WaveGenerator(p hdrive.Parameters, opts Options) (hdrive.PartGeometry, error) {
	opts, err := setup(p, opts)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	g := hdrive.NewPartGeometry(NameWaveGenerator)
	cam, err := form2.Ellipse(p.EllipseMajor, p.EllipseMinor, opts.PointsPerConic)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	g.Add(hdrive.RoleCam, cam)
	for _, c := range []struct {
		role hdrive.Role
		dia  float64
	}{
		{hdrive.RoleBearingSeat, p.BearingOD},
		{hdrive.RoleHub, p.BearingID},
		{hdrive.RoleBore, p.HubBore},
	} {
		loop, err := form2.Circle(c.dia, opts.PointsPerConic)
		if err != nil {
			return hdrive.PartGeometry{}, err
		}
		g.Add(c.role, loop)
	}
	return g, nil
}

// Bearing returns the wave generator bearing cross section, outer ring
// and bore. Informational; the bearing is a purchased part.
func Bearing(p hdrive.Parameters, opts Options) (hdrive.PartGeometry, error) {
	opts, err := setup(p, opts)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	rim, err := form2.Circle(p.BearingOD, opts.PointsPerConic)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	bore, err := form2.Circle(p.BearingID, opts.PointsPerConic)
	if err != nil {
		return hdrive.PartGeometry{}, err
	}
	g := hdrive.NewPartGeometry(NameBearing)
	g.Add(hdrive.RoleOuterRim, rim)
	g.Add(hdrive.RoleBore, bore)
	return g, nil
}

// Assembly holds the three generated drive parts.
type Assembly struct {
	FlexSpline     hdrive.PartGeometry
	CircularSpline hdrive.PartGeometry
	WaveGenerator  hdrive.PartGeometry
}

// Parts returns the parts in drawing order.
func (a Assembly) Parts() []hdrive.PartGeometry {
	return []hdrive.PartGeometry{a.FlexSpline, a.CircularSpline, a.WaveGenerator}
}

// Assemble generates all three drive parts from one parameter set. The
// parts are mutually independent; a failure in any aborts the run.
func Assemble(p hdrive.Parameters, opts Options) (Assembly, error) {
	var a Assembly
	var err error
	if a.FlexSpline, err = FlexSpline(p, opts); err != nil {
		return Assembly{}, err
	}
	if a.CircularSpline, err = CircularSpline(p, opts); err != nil {
		return Assembly{}, err
	}
	if a.WaveGenerator, err = WaveGenerator(p, opts); err != nil {
		return Assembly{}, err
	}
	return a, nil
}
