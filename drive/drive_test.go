package drive_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/imnuman/hdrive"
	"github.com/imnuman/hdrive/drive"
)

func refParams(t *testing.T) hdrive.Parameters {
	t.Helper()
	p, err := hdrive.GearConfig{GearRatio: 100, ToothDifference: 2, Module: 0.4, OutputTorque: 40, NumBolts: 6}.Parameters()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFlexSpline(t *testing.T) {
	p := refParams(t)
	g, err := drive.FlexSpline(p, drive.Options{PointsPerTooth: 16, PointsPerConic: 90})
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != drive.NameFlexSpline {
		t.Errorf("part name %q", g.Name)
	}
	teeth := g.Sequences(hdrive.RoleTeeth)
	if len(teeth) != 1 {
		t.Fatalf("%d teeth loops", len(teeth))
	}
	// 16 points per tooth requested: the external variant samples n+1.
	if want := p.ZFlex * 17; teeth[0].Len() != want {
		t.Errorf("teeth outline has %d points, want %d", teeth[0].Len(), want)
	}
	bore := g.Sequences(hdrive.RoleInnerBore)
	if len(bore) != 1 || bore[0].Len() != 91 {
		t.Fatalf("inner bore loops %d", len(bore))
	}
	if r := math.Hypot(bore[0].Points[0].X, bore[0].Points[0].Y); math.Abs(r-p.InnerDiameterFlex/2) > 1e-9 {
		t.Errorf("bore radius %g", r)
	}
}

func TestCircularSpline(t *testing.T) {
	p := refParams(t)
	g, err := drive.CircularSpline(p, drive.Options{PointsPerTooth: 16, PointsPerConic: 90})
	if err != nil {
		t.Fatal(err)
	}
	// Internal teeth sample n points, not n+1.
	teeth := g.Sequences(hdrive.RoleTeeth)
	if want := p.ZCirc * 16; len(teeth) != 1 || teeth[0].Len() != want {
		t.Fatalf("teeth outline has %d points, want %d", teeth[0].Len(), want)
	}
	if rim := g.Sequences(hdrive.RoleOuterRim); len(rim) != 1 {
		t.Fatalf("%d rim loops", len(rim))
	}
	holes := g.Sequences(hdrive.RoleBoltHole)
	if len(holes) != p.NumBolts {
		t.Fatalf("%d bolt holes, want %d", len(holes), p.NumBolts)
	}
	// Every hole center sits on the bolt circle.
	for i, h := range holes {
		bb := h.Bounds()
		cx := (bb.Min.X + bb.Max.X) / 2
		cy := (bb.Min.Y + bb.Max.Y) / 2
		if math.Abs(math.Hypot(cx, cy)-p.BoltCircleDiameter/2) > 1e-6 {
			t.Errorf("hole %d center (%g, %g) off the bolt circle", i, cx, cy)
		}
	}
}

func TestCircularSplineNoBolts(t *testing.T) {
	// Zero is a real hole count, not a request for the default pattern;
	// negatives mean the same thing.
	for _, numBolts := range []int{0, -1} {
		cfg := hdrive.GearConfig{GearRatio: 100, ToothDifference: 2, Module: 0.4, NumBolts: numBolts}
		p, err := cfg.Parameters()
		if err != nil {
			t.Fatal(err)
		}
		g, err := drive.CircularSpline(p, drive.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if holes := g.Sequences(hdrive.RoleBoltHole); len(holes) != 0 {
			t.Errorf("NumBolts=%d: %d bolt holes, want none", numBolts, len(holes))
		}
	}
}

func TestWaveGenerator(t *testing.T) {
	p := refParams(t)
	g, err := drive.WaveGenerator(p, drive.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, role := range []hdrive.Role{hdrive.RoleCam, hdrive.RoleBearingSeat, hdrive.RoleHub, hdrive.RoleBore} {
		if len(g.Sequences(role)) != 1 {
			t.Errorf("role %s missing", role)
		}
	}
	cam := g.Sequences(hdrive.RoleCam)[0]
	bb := cam.Bounds()
	if math.Abs(bb.Max.X-p.EllipseMajor/2) > 1e-6 || math.Abs(bb.Max.Y-p.EllipseMinor/2) > 1e-6 {
		t.Errorf("cam bounds %+v", bb)
	}
}

func TestAssemble(t *testing.T) {
	p := refParams(t)
	a, err := drive.Assemble(p, drive.Options{})
	if err != nil {
		t.Fatal(err)
	}
	parts := a.Parts()
	if len(parts) != 3 {
		t.Fatalf("%d parts", len(parts))
	}
	names := []string{drive.NameFlexSpline, drive.NameCircularSpline, drive.NameWaveGenerator}
	for i, part := range parts {
		if part.Name != names[i] {
			t.Errorf("part %d named %q, want %q", i, part.Name, names[i])
		}
		if len(part.Loops) == 0 {
			t.Errorf("part %q has no geometry", part.Name)
		}
	}

	b, err := drive.Assemble(p, drive.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("assembly not deterministic")
	}
}

func TestRejectsBadInput(t *testing.T) {
	p := refParams(t)
	// Underived zero parameters must not generate.
	if _, err := drive.FlexSpline(hdrive.Parameters{}, drive.Options{}); !errors.Is(err, hdrive.ErrInvalidParameter) {
		t.Errorf("zero parameters: %v", err)
	}
	if _, err := drive.FlexSpline(p, drive.Options{PointsPerTooth: 1}); !errors.Is(err, hdrive.ErrDegenerateProfile) {
		t.Errorf("1 point per tooth: %v", err)
	}
	if _, err := drive.WaveGenerator(p, drive.Options{PointsPerConic: 2}); !errors.Is(err, hdrive.ErrDegenerateProfile) {
		t.Errorf("2 points per conic: %v", err)
	}
	// A profile shift past the dedendum is caught before projection.
	shifted, err := hdrive.GearConfig{GearRatio: 100, ToothDifference: 2, Module: 0.4, ProfileShiftFlex: 0.5}.Parameters()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := drive.FlexSpline(shifted, drive.Options{}); !errors.Is(err, hdrive.ErrDegenerateProfile) {
		t.Errorf("inverting shift: %v", err)
	}
}
