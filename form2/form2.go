// Package form2 is the error returning facade over the must2 profile
// generators. Use it when bad parameters are an expected runtime
// condition rather than a programming error.
package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/imnuman/hdrive"
	"github.com/imnuman/hdrive/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// recovered converts a recover() value to an error, keeping the error
// kind intact when the panic carried one.
func recovered(a interface{}) error {
	if e, ok := a.(error); ok {
		return e
	}
	return &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

// Tooth returns the outline of a single tooth sampled over n steps.
func Tooth(spec hdrive.ToothSpec, n int) (s hdrive.PointSequence, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must2.Tooth(spec, n), err
}

// GearArray replicates a tooth outline z times around a pitch circle.
func GearArray(tooth hdrive.PointSequence, z int, pitchDiameter float64, internal bool) (s hdrive.PointSequence, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must2.GearArray(tooth, z, pitchDiameter, internal), err
}

// Ellipse returns a closed ellipse outline sampled at n angles.
func Ellipse(majorAxis, minorAxis float64, n int) (s hdrive.PointSequence, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must2.Ellipse(majorAxis, minorAxis, n), err
}

// Circle returns a closed circle outline sampled at n angles.
func Circle(diameter float64, n int) (s hdrive.PointSequence, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must2.Circle(diameter, n), err
}

// BoltCircle returns n hole centers equally spaced on a bolt circle.
func BoltCircle(diameter float64, n int) (centers []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must2.BoltCircle(diameter, n), err
}
