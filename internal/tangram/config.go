package tangram

import "math"

// Config carries the geometry parameters threaded through shape generation
// and every tolerance-sensitive operation. The kernel never reads a hidden
// global, so callers can run with distinct tolerances side by side.
type Config struct {
	// Unit is the base scale factor all shape dimensions derive from.
	Unit float64
	// VertexTolerance bounds the coordinate difference treated as equal
	// when matching vertices and comparing shapes.
	VertexTolerance float64
	// MinVertexSeparation is the segment length below which distance
	// queries treat the segment as a single point.
	MinVertexSeparation float64
	// RotationSnap is the angle grid, in radians, that piece rotations
	// snap to.
	RotationSnap float64
}

// DefaultConfig returns the parameters used when no settings override them.
func DefaultConfig() Config {
	return Config{
		Unit:                50,
		VertexTolerance:     1e-3,
		MinVertexSeparation: 1e-6,
		RotationSnap:        math.Pi / 4,
	}
}
