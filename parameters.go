package hdrive

import (
	"fmt"
	"math"
	"strings"
)

// GearConfig holds the primary design inputs of a harmonic drive.
// The zero value is not usable; fill in at least GearRatio,
// ToothDifference and Module and call Parameters. Secondary dimensions
// left zero are given the defaults of the reference 100:1 drive, except
// NumBolts where zero means no bolt pattern.
type GearConfig struct {
	// GearRatio is the reduction ratio, i.e. 100 for a 100:1 drive.
	GearRatio int
	// ToothDifference is the tooth count difference between circular
	// spline and flex spline. Almost always 2.
	ToothDifference int
	// Module is the tooth size parameter [mm]. Pitch diameter is
	// teeth count times module.
	Module float64
	// OutputTorque is the rated output torque [Nm]. Informational.
	OutputTorque float64

	// ProfileShiftFlex and ProfileShiftCirc offset the addendum and
	// dedendum split of each gear [mm] without changing tooth pitch.
	ProfileShiftFlex float64
	ProfileShiftCirc float64

	// Circular spline secondary dimensions.
	OuterDiameterCirc  float64 // default 100 mm
	BoltCircleDiameter float64 // default 94 mm
	NumBolts           int     // bolt hole count, zero for none
	BoltHoleDiameter   float64 // default 4.2 mm (M4 clearance)

	// Wave generator bearing and hub. Defaults are a 6806-2RS bearing
	// on a 10 mm motor shaft.
	BearingOD float64 // default 42 mm
	BearingID float64 // default 30 mm
	HubBore   float64 // default 10 mm
}

// withDefaults fills zero valued secondary fields.
func (c GearConfig) withDefaults() GearConfig {
	if c.OuterDiameterCirc == 0 {
		c.OuterDiameterCirc = 100.0
	}
	if c.BoltCircleDiameter == 0 {
		c.BoltCircleDiameter = 94.0
	}
	// NumBolts carries no default: the hole count is meaningful at
	// zero, so the zero value means no bolt pattern.
	if c.NumBolts < 0 {
		c.NumBolts = 0
	}
	if c.BoltHoleDiameter == 0 {
		c.BoltHoleDiameter = 4.2
	}
	if c.BearingOD == 0 {
		c.BearingOD = 42.0
	}
	if c.BearingID == 0 {
		c.BearingID = 30.0
	}
	if c.HubBore == 0 {
		c.HubBore = 10.0
	}
	return c
}

// Parameters is the fully populated parameter set of a drive, derived
// deterministically from a GearConfig. All lengths in millimetres.
type Parameters struct {
	GearConfig

	// Tooth counts. ZCirc = ZFlex + ToothDifference always.
	ZFlex int
	ZCirc int

	// Pitch diameters, teeth count times module.
	PitchDiameterFlex float64
	PitchDiameterCirc float64

	// Tooth geometry.
	Addendum      float64 // 0.8 module, above pitch circle
	Dedendum      float64 // 1.0 module, below pitch circle
	ToothHeight   float64
	PressureAngle float64 // radians
	TipRadius     float64 // 0.8 module, manufacturing label
	RootRadius    float64 // 1.2 module, manufacturing label

	// Flex spline cup.
	OuterDiameterFlex float64
	WallThickness     float64
	InnerDiameterFlex float64
	CupDepth          float64
	BaseThickness     float64
	FilletRadius      float64
	ToothZoneWidth    float64

	// Circular spline ring.
	InnerDiameterCirc float64
	RingHeight        float64

	// Wave generator cam.
	RadialDeflection float64
	EllipseMajor     float64
	EllipseMinor     float64
	BearingWidth     float64
	HubOD            float64
}

// Parameters derives every dependent dimension from the primary inputs.
// It is a pure function: no I/O, no hidden state, same output for the
// same config every call.
func (c GearConfig) Parameters() (Parameters, error) {
	switch {
	case c.GearRatio <= 0:
		return Parameters{}, fmt.Errorf("%w: gear ratio %d not positive", ErrInvalidParameter, c.GearRatio)
	case c.ToothDifference <= 0:
		return Parameters{}, fmt.Errorf("%w: tooth difference %d not positive", ErrInvalidParameter, c.ToothDifference)
	case c.Module <= 0:
		return Parameters{}, fmt.Errorf("%w: module %g not positive", ErrInvalidParameter, c.Module)
	case c.OutputTorque < 0:
		return Parameters{}, fmt.Errorf("%w: output torque %g negative", ErrInvalidParameter, c.OutputTorque)
	}
	c = c.withDefaults()

	p := Parameters{GearConfig: c}
	p.ZFlex = c.GearRatio * c.ToothDifference
	p.ZCirc = p.ZFlex + c.ToothDifference
	p.PitchDiameterFlex = float64(p.ZFlex) * c.Module
	p.PitchDiameterCirc = float64(p.ZCirc) * c.Module

	p.Addendum = 0.8 * c.Module
	p.Dedendum = 1.0 * c.Module
	p.ToothHeight = p.Addendum + p.Dedendum
	p.PressureAngle = 20 * math.Pi / 180
	p.TipRadius = 0.8 * c.Module
	p.RootRadius = 1.2 * c.Module

	p.OuterDiameterFlex = p.PitchDiameterFlex + 2*p.Addendum
	p.WallThickness = 0.01 * p.PitchDiameterFlex
	p.InnerDiameterFlex = p.OuterDiameterFlex - 2*p.WallThickness
	p.CupDepth = 0.30 * p.PitchDiameterFlex
	p.BaseThickness = 3.0 * p.WallThickness
	p.FilletRadius = 2.5 * p.WallThickness
	p.ToothZoneWidth = 0.12 * p.PitchDiameterFlex

	p.InnerDiameterCirc = p.PitchDiameterCirc - 2*p.Addendum
	p.RingHeight = p.ToothZoneWidth + 4

	p.RadialDeflection = 2.25 * c.Module
	p.EllipseMajor = p.InnerDiameterFlex + 2*p.RadialDeflection
	p.EllipseMinor = p.InnerDiameterFlex - 0.1
	p.BearingWidth = 7.0
	p.HubOD = c.BearingID - 0.02 // press fit

	// Small modules on small tooth counts can drive derived bores
	// negative. Catch here rather than emit inverted geometry.
	switch {
	case p.InnerDiameterFlex <= 0:
		return Parameters{}, fmt.Errorf("%w: flex spline inner diameter %.3f", ErrGeometryInconsistency, p.InnerDiameterFlex)
	case p.InnerDiameterCirc <= 0:
		return Parameters{}, fmt.Errorf("%w: circular spline inner diameter %.3f", ErrGeometryInconsistency, p.InnerDiameterCirc)
	case p.EllipseMinor <= 0:
		return Parameters{}, fmt.Errorf("%w: cam minor axis %.3f", ErrGeometryInconsistency, p.EllipseMinor)
	case p.OuterDiameterCirc <= p.PitchDiameterCirc:
		return Parameters{}, fmt.Errorf("%w: circular spline outer diameter %.3f inside tooth zone", ErrGeometryInconsistency, p.OuterDiameterCirc)
	}
	return p, nil
}

// derived reports whether p was produced by GearConfig.Parameters.
func (p Parameters) derived() bool {
	return p.ZFlex > 0 && p.ZCirc == p.ZFlex+p.ToothDifference && p.Module > 0
}

// Validate checks that p is a complete derived parameter set. Zero or
// hand assembled values are rejected so generation never runs on a
// partial input.
func (p Parameters) Validate() error {
	if !p.derived() {
		return fmt.Errorf("%w: parameters not derived from a GearConfig", ErrInvalidParameter)
	}
	return nil
}

// ToothSpec returns the tooth outline specification of one of the two
// gears. The internal variant is the circular spline.
func (p Parameters) ToothSpec(internal bool) ToothSpec {
	shift := p.ProfileShiftFlex
	if internal {
		shift = p.ProfileShiftCirc
	}
	return ToothSpec{
		Module:       p.Module,
		Addendum:     p.Addendum + shift,
		Dedendum:     p.Dedendum - shift,
		TipRadius:    p.TipRadius,
		RootRadius:   p.RootRadius,
		ProfileShift: shift,
		Internal:     internal,
	}
}

// String formats the parameter sheet the way it appears on the drive's
// manufacturing drawings.
func (p Parameters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gear ratio %d:1, output torque %g Nm\n", p.GearRatio, p.OutputTorque)
	fmt.Fprintf(&b, "flex spline: %d teeth, module %g mm\n", p.ZFlex, p.Module)
	fmt.Fprintf(&b, "  pitch ⌀%.2f  outer ⌀%.2f  inner ⌀%.2f mm\n", p.PitchDiameterFlex, p.OuterDiameterFlex, p.InnerDiameterFlex)
	fmt.Fprintf(&b, "  wall %.2f  cup depth %.1f  tooth zone %.1f mm\n", p.WallThickness, p.CupDepth, p.ToothZoneWidth)
	fmt.Fprintf(&b, "circular spline: %d teeth\n", p.ZCirc)
	fmt.Fprintf(&b, "  pitch ⌀%.2f  inner ⌀%.2f  outer ⌀%.1f mm\n", p.PitchDiameterCirc, p.InnerDiameterCirc, p.OuterDiameterCirc)
	fmt.Fprintf(&b, "  %d bolt holes ⌀%.1f on ⌀%.1f mm\n", p.NumBolts, p.BoltHoleDiameter, p.BoltCircleDiameter)
	fmt.Fprintf(&b, "wave generator: ellipse %.2f x %.2f mm, deflection %.2f mm\n", p.EllipseMajor, p.EllipseMinor, p.RadialDeflection)
	fmt.Fprintf(&b, "  bearing ⌀%g x ⌀%g x %g mm, hub bore ⌀%g mm", p.BearingOD, p.BearingID, p.BearingWidth, p.HubBore)
	return b.String()
}

// ToothSpec describes one tooth outline of the S-curve (double-arc)
// family. Addendum and Dedendum already include the profile shift. The
// tip and root arc radii label the curve family for manufacturing
// traceability; only the internal variant's flank term consumes
// RootRadius.
type ToothSpec struct {
	Module       float64
	Addendum     float64
	Dedendum     float64
	TipRadius    float64
	RootRadius   float64
	ProfileShift float64
	Internal     bool
}

// Validate rejects specs whose profile shift inverts the tooth height.
func (t ToothSpec) Validate() error {
	switch {
	case t.Module <= 0:
		return fmt.Errorf("%w: module %g not positive", ErrInvalidParameter, t.Module)
	case t.Addendum < 0:
		return fmt.Errorf("%w: profile shift %g inverts addendum", ErrDegenerateProfile, t.ProfileShift)
	case t.Dedendum < 0:
		return fmt.Errorf("%w: profile shift %g inverts dedendum", ErrDegenerateProfile, t.ProfileShift)
	case t.Addendum+t.Dedendum <= 0:
		return fmt.Errorf("%w: zero tooth height", ErrDegenerateProfile)
	}
	return nil
}
