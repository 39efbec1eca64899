package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// BoundsOf returns the bounding box of a set of points.
func BoundsOf(points []r2.Vec) Box {
	if len(points) == 0 {
		return Box{}
	}
	vmin := points[0]
	vmax := points[0]
	for _, p := range points[1:] {
		vmin = MinElem(vmin, p)
		vmax = MaxElem(vmax, p)
	}
	return Box{Min: vmin, Max: vmax}
}

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}
