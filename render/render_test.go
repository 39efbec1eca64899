package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/imnuman/hdrive"
	"github.com/imnuman/hdrive/drive"
	"github.com/imnuman/hdrive/form2"
	"github.com/imnuman/hdrive/render"
)

func v3(x, y, z float64) sdf.V3 { return sdf.V3{X: x, Y: y, Z: z} }

func refParams(t *testing.T) hdrive.Parameters {
	t.Helper()
	p, err := hdrive.GearConfig{GearRatio: 100, ToothDifference: 2, Module: 0.4, NumBolts: 6}.Parameters()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// coarse keeps test artifacts small.
var coarse = drive.Options{PointsPerTooth: 4, PointsPerConic: 36}

func TestWriteCoordinates(t *testing.T) {
	s, err := form2.Circle(10, 8)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := render.WriteCoordinates(&buf, s, "test circle"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 3 comment lines + 9 records.
	if len(lines) != 3+s.Len() {
		t.Fatalf("%d lines, want %d", len(lines), 3+s.Len())
	}
	if lines[0] != "# test circle" {
		t.Errorf("header %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "5.000000,") {
		t.Errorf("first record %q", lines[3])
	}
	if lines[3] != lines[len(lines)-1] {
		t.Error("closing record does not repeat the first")
	}
}

func TestWriteSVG(t *testing.T) {
	p := refParams(t)
	g, err := drive.WaveGenerator(p, coarse)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("output is not an svg document")
	}
	// cam plus three circles
	if n := strings.Count(out, "<polygon"); n != 4 {
		t.Errorf("%d polygons, want 4", n)
	}
	if err := render.WriteSVG(&buf, hdrive.PartGeometry{}); err == nil {
		t.Error("empty part accepted")
	}
}

func TestCreateDXF(t *testing.T) {
	p := refParams(t)
	g, err := drive.CircularSpline(p, coarse)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "circular_spline.dxf")
	if err := render.CreateDXF(path, g); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(b)
	for _, layer := range []string{"TEETH", "OUTER", "HOLES"} {
		if !strings.Contains(content, layer) {
			t.Errorf("layer %s missing from drawing", layer)
		}
	}
}

func TestSolids(t *testing.T) {
	p := refParams(t)
	flex, err := render.FlexSplineSolid(p, coarse)
	if err != nil {
		t.Fatal(err)
	}
	// Inside the cup wall at mid height.
	wallR := (p.InnerDiameterFlex/2 + p.OuterDiameterFlex/2) / 2
	if d := flex.Evaluate(v3(wallR, 0, p.CupDepth/2)); d >= 0 {
		t.Errorf("point in cup wall evaluates outside: %g", d)
	}
	// The hollow above the base.
	if d := flex.Evaluate(v3(0, 0, p.CupDepth/2)); d <= 0 {
		t.Errorf("cup cavity evaluates inside: %g", d)
	}

	circ, err := render.CircularSplineSolid(p, coarse)
	if err != nil {
		t.Fatal(err)
	}
	// Halfway between two bolt holes so the probe is in solid material.
	ringR := (p.PitchDiameterCirc/2 + p.OuterDiameterCirc/2) / 2
	probe := v3(ringR*math.Cos(math.Pi/6), ringR*math.Sin(math.Pi/6), p.RingHeight/2)
	if d := circ.Evaluate(probe); d >= 0 {
		t.Errorf("point in ring evaluates outside: %g", d)
	}
	if d := circ.Evaluate(v3(0, 0, p.RingHeight/2)); d <= 0 {
		t.Errorf("ring center evaluates inside: %g", d)
	}

	wave, err := render.WaveGeneratorSolid(p, coarse)
	if err != nil {
		t.Fatal(err)
	}
	// Between bore and bearing seat, below the seat recess.
	if d := wave.Evaluate(v3(p.BearingOD/2+2, 0, 1)); d >= 0 {
		t.Errorf("cam plate evaluates outside: %g", d)
	}
	if d := wave.Evaluate(v3(0, 0, 1)); d <= 0 {
		t.Errorf("shaft bore evaluates inside: %g", d)
	}
}
