package render

import (
	"errors"

	"github.com/imnuman/hdrive"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// CreateDXF writes a part to path as a DXF drawing with one layer per
// role. Sequences are emitted as line segments in point order; closed
// sequences whose endpoints do not already coincide get a closing
// segment back to the start.
func CreateDXF(path string, g hdrive.PartGeometry) error {
	if len(g.Loops) == 0 {
		return errors.New("no geometry to write")
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	for _, role := range layerOrder {
		loops := g.Sequences(role)
		if len(loops) == 0 {
			continue
		}
		_, err := d.AddLayer(layerName[role], dxf.DefaultColor, dxf.DefaultLineType, true)
		if err != nil {
			return err
		}
		for _, s := range loops {
			if err := polyline(d, s); err != nil {
				return err
			}
		}
	}
	return d.SaveAs(path)
}

func polyline(d *drawing.Drawing, s hdrive.PointSequence) error {
	pts := s.Points
	for i := 0; i < len(pts)-1; i++ {
		_, err := d.Line(pts[i].X, pts[i].Y, 0, pts[i+1].X, pts[i+1].Y, 0)
		if err != nil {
			return err
		}
	}
	if s.Closed && !s.EndsCoincide() && len(pts) > 2 {
		last := pts[len(pts)-1]
		if _, err := d.Line(last.X, last.Y, 0, pts[0].X, pts[0].Y, 0); err != nil {
			return err
		}
	}
	return nil
}
