package hdrive

import "errors"

// Error kinds reported by profile generation. All are detected
// synchronously at input validation; no partial geometry is ever
// returned alongside one of these.
var (
	// ErrInvalidParameter reports a primary input that makes the gear
	// degenerate: a non-positive ratio, tooth difference, module or
	// point count.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateProfile reports a tooth or conic that cannot be
	// represented: a profile shift inverting tooth height, or a point
	// density below the minimum for the curve.
	ErrDegenerateProfile = errors.New("degenerate profile")

	// ErrGeometryInconsistency reports a derived dimension that is
	// physically impossible, such as a negative inner diameter from an
	// inconsistent wall thickness.
	ErrGeometryInconsistency = errors.New("geometry inconsistency")
)
