package render

import (
	"bufio"
	"errors"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/imnuman/hdrive"
	"gonum.org/v1/gonum/spatial/r2"
)

// svgScale is pixels per millimetre. Profiles of interest span tens of
// millimetres; 10 px/mm keeps tooth detail visible without huge files.
const svgScale = 10.0

const svgMarginMM = 2.0

var svgStyle = map[hdrive.Role]string{
	hdrive.RoleTeeth:       "fill:none;stroke:black",
	hdrive.RoleInnerBore:   "fill:none;stroke:blue",
	hdrive.RoleOuterRim:    "fill:none;stroke:black",
	hdrive.RoleBoltHole:    "fill:none;stroke:red",
	hdrive.RoleCam:         "fill:none;stroke:black",
	hdrive.RoleBearingSeat: "fill:none;stroke:blue",
	hdrive.RoleHub:         "fill:none;stroke:blue",
	hdrive.RoleBore:        "fill:none;stroke:red",
}

// WriteSVG writes a part as an SVG image for visual inspection. The
// drawing is scaled to svgScale pixels per millimetre and flipped so +y
// points up as on the drawings.
func WriteSVG(w io.Writer, g hdrive.PartGeometry) error {
	if len(g.Loops) == 0 {
		return errors.New("no geometry to write")
	}
	bb := g.Bounds()
	min := r2.Vec{X: bb.Min.X - svgMarginMM, Y: bb.Min.Y - svgMarginMM}
	max := r2.Vec{X: bb.Max.X + svgMarginMM, Y: bb.Max.Y + svgMarginMM}
	width := int((max.X - min.X) * svgScale)
	height := int((max.Y - min.Y) * svgScale)

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)
	for _, role := range layerOrder {
		for _, s := range g.Sequences(role) {
			xs := make([]int, s.Len())
			ys := make([]int, s.Len())
			for i, p := range s.Points {
				xs[i] = int((p.X - min.X) * svgScale)
				ys[i] = height - int((p.Y-min.Y)*svgScale)
			}
			if s.Closed {
				canvas.Polygon(xs, ys, svgStyle[role])
			} else {
				canvas.Polyline(xs, ys, svgStyle[role])
			}
		}
	}
	canvas.End()
	return bw.Flush()
}

// CreateSVG writes a part SVG to path.
func CreateSVG(path string, g hdrive.PartGeometry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
