package hdrive

import (
	"github.com/imnuman/hdrive/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Role tags a point sequence with its function on a part. Exporters key
// layers and machining operations off the role.
type Role string

const (
	RoleTeeth       Role = "teeth"
	RoleInnerBore   Role = "innerBore"
	RoleOuterRim    Role = "outerRim"
	RoleBoltHole    Role = "boltHole"
	RoleCam         Role = "cam"
	RoleBearingSeat Role = "bearingSeat"
	RoleHub         Role = "hub"
	RoleBore        Role = "bore"
)

// PointSequence is an ordered run of 2D points in millimetres. Order is
// significant: it defines the traversal direction downstream consumers
// rely on for face winding. When Closed is set the last point connects
// back to the first.
type PointSequence struct {
	Points []r2.Vec
	Closed bool
}

// Len returns the number of points in the sequence.
func (s PointSequence) Len() int { return len(s.Points) }

// Translated returns a copy of the sequence displaced by v.
func (s PointSequence) Translated(v r2.Vec) PointSequence {
	pts := make([]r2.Vec, len(s.Points))
	for i, p := range s.Points {
		pts[i] = r2.Add(p, v)
	}
	return PointSequence{Points: pts, Closed: s.Closed}
}

// Bounds returns the axis aligned bounding box of the sequence.
func (s PointSequence) Bounds() r2.Box {
	return r2.Box(d2.BoundsOf(s.Points))
}

// EndsCoincide reports whether the first and last points of the
// sequence coincide. Conic generators duplicate their first point, so
// consumers that close loops themselves drop the endpoint when this is
// true.
func (s PointSequence) EndsCoincide() bool {
	if len(s.Points) < 2 {
		return false
	}
	return d2.EqualWithin(s.Points[0], s.Points[len(s.Points)-1], tolerance)
}

// PartGeometry is a named bag of tagged point sequences describing one
// manufacturable part. A role may carry several loops (bolt holes).
// Values are constructed once per generation run and never mutated.
type PartGeometry struct {
	Name  string
	Loops map[Role][]PointSequence
}

// NewPartGeometry returns an empty part with the given name.
func NewPartGeometry(name string) PartGeometry {
	return PartGeometry{Name: name, Loops: make(map[Role][]PointSequence)}
}

// Add appends a loop under the given role. The zero value of
// PartGeometry is usable; the loop map is allocated on first use.
func (g *PartGeometry) Add(role Role, s PointSequence) {
	if g.Loops == nil {
		g.Loops = make(map[Role][]PointSequence)
	}
	g.Loops[role] = append(g.Loops[role], s)
}

// Sequences returns the loops tagged with role, or nil if absent.
func (g PartGeometry) Sequences(role Role) []PointSequence {
	return g.Loops[role]
}

// Bounds returns the bounding box enclosing every loop of the part.
func (g PartGeometry) Bounds() r2.Box {
	var bb d2.Box
	first := true
	for _, loops := range g.Loops {
		for _, s := range loops {
			b := d2.BoundsOf(s.Points)
			if first {
				bb = b
				first = false
				continue
			}
			bb = bb.Extend(b)
		}
	}
	return r2.Box(bb)
}
