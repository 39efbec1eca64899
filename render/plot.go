package render

import (
	"errors"

	"github.com/imnuman/hdrive"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSequences saves a line plot of the sequences to path, format
// chosen by extension (png, svg, pdf). Intended for eyeballing tooth
// curves during parameter tuning, not for manufacturing output.
func PlotSequences(path, title string, seqs ...hdrive.PointSequence) error {
	if len(seqs) == 0 {
		return errors.New("nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x [mm]"
	p.Y.Label.Text = "y [mm]"
	for _, s := range seqs {
		xys := make(plotter.XYs, s.Len())
		for i, pt := range s.Points {
			xys[i].X = pt.X
			xys[i].Y = pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, path)
}
