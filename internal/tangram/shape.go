// Package tangram models the classic seven-piece tangram set on top of the
// geom kernel: the shape catalog, colored pieces with pose transforms,
// built-in layouts, and the record codec shared by storage and export.
// Pieces are value types and every transform returns a new value, so piece
// collections can be read concurrently without locking.
package tangram

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"tangram-kit/internal/geom"
)

// ErrInvalidShape is wrapped by Validate and ValidateSet when a shape
// definition produces unusable geometry.
var ErrInvalidShape = errors.New("invalid shape")

// ShapeKind identifies one of the seven tangram piece shapes. The two large
// triangles and the two small triangles are geometrically identical twins;
// they carry distinct kinds so a full set can tell its pieces apart.
type ShapeKind uint8

const (
	LargeTriangleA ShapeKind = iota
	LargeTriangleB
	MediumTriangle
	SmallTriangleA
	SmallTriangleB
	Square
	Parallelogram
	KindCount // Sentinel value for iteration
)

// String returns the symbolic name of the kind, stable across releases
// since stored layouts depend on it.
func (k ShapeKind) String() string {
	switch k {
	case LargeTriangleA:
		return "large_triangle_a"
	case LargeTriangleB:
		return "large_triangle_b"
	case MediumTriangle:
		return "medium_triangle"
	case SmallTriangleA:
		return "small_triangle_a"
	case SmallTriangleB:
		return "small_triangle_b"
	case Square:
		return "square"
	case Parallelogram:
		return "parallelogram"
	default:
		return "unknown"
	}
}

// ParseKind converts a symbolic name to a ShapeKind.
// Returns LargeTriangleA and false if the name is not recognized.
func ParseKind(s string) (ShapeKind, bool) {
	switch strings.ToLower(s) {
	case "large_triangle_a":
		return LargeTriangleA, true
	case "large_triangle_b":
		return LargeTriangleB, true
	case "medium_triangle":
		return MediumTriangle, true
	case "small_triangle_a":
		return SmallTriangleA, true
	case "small_triangle_b":
		return SmallTriangleB, true
	case "square":
		return Square, true
	case "parallelogram":
		return Parallelogram, true
	default:
		return LargeTriangleA, false
	}
}

// AllKinds returns the seven kinds in catalog order.
func AllKinds() []ShapeKind {
	return []ShapeKind{
		LargeTriangleA,
		LargeTriangleB,
		MediumTriangle,
		SmallTriangleA,
		SmallTriangleB,
		Square,
		Parallelogram,
	}
}

// LocalVertices returns the canonical local-space vertex loop of a shape,
// counter-clockwise, scaled by unit. The first vertex is the shape's anchor
// and rotation pivot: the right-angle corner for triangles, the bottom tip
// of the diamond-oriented square, the lower-left corner of the
// parallelogram. Unknown kinds yield nil.
func LocalVertices(kind ShapeKind, unit float64) []geom.Point {
	switch kind {
	case LargeTriangleA, LargeTriangleB:
		return []geom.Point{
			geom.Pt(0, 0),
			geom.Pt(2*unit, 0),
			geom.Pt(0, 2*unit),
		}
	case MediumTriangle:
		leg := unit * math.Sqrt2
		return []geom.Point{
			geom.Pt(0, 0),
			geom.Pt(leg, 0),
			geom.Pt(0, leg),
		}
	case SmallTriangleA, SmallTriangleB:
		return []geom.Point{
			geom.Pt(0, 0),
			geom.Pt(unit, 0),
			geom.Pt(0, unit),
		}
	case Square:
		h := unit * math.Sqrt2 / 2
		return []geom.Point{
			geom.Pt(0, -h),
			geom.Pt(h, 0),
			geom.Pt(0, h),
			geom.Pt(-h, 0),
		}
	case Parallelogram:
		long := unit * math.Sqrt2
		short := unit / math.Sqrt2
		return []geom.Point{
			geom.Pt(0, 0),
			geom.Pt(long, 0),
			geom.Pt(long+short, short),
			geom.Pt(short, short),
		}
	default:
		return nil
	}
}

// ShapeArea returns the area of a shape at the given unit, computed from its
// vertex loop.
func ShapeArea(kind ShapeKind, unit float64) float64 {
	return geom.Area(LocalVertices(kind, unit))
}

// VertexCount returns the number of vertices of a shape's polygon.
func VertexCount(kind ShapeKind) int {
	return len(LocalVertices(kind, 1))
}

// shapeAreaEpsilon rejects shapes whose area collapses to nothing, before
// the relative sanity bounds apply.
const shapeAreaEpsilon = 1e-9

// Validate checks that a shape definition produces usable geometry at the
// given unit: at least three vertices and an area within [0.1u², 10u²].
// Failures wrap ErrInvalidShape.
func Validate(kind ShapeKind, unit float64) error {
	verts := LocalVertices(kind, unit)
	if len(verts) < 3 {
		return fmt.Errorf("tangram: %s has %d vertices: %w", kind, len(verts), ErrInvalidShape)
	}
	area := geom.Area(verts)
	if area <= shapeAreaEpsilon {
		return fmt.Errorf("tangram: %s has no area at unit %g: %w", kind, unit, ErrInvalidShape)
	}
	if area < 0.1*unit*unit || area > 10*unit*unit {
		return fmt.Errorf("tangram: %s area %g out of bounds at unit %g: %w", kind, area, unit, ErrInvalidShape)
	}
	return nil
}

// TotalArea returns the summed area of all seven shapes at the given unit.
// The canonical set tiles a square of side 2√2·unit, so the total is 8·unit².
func TotalArea(unit float64) float64 {
	kinds := AllKinds()
	areas := make([]float64, len(kinds))
	for i, kind := range kinds {
		areas[i] = ShapeArea(kind, unit)
	}
	return floats.Sum(areas)
}

// ValidateSet validates every shape in the catalog and the cross-shape
// consistency of the set's total area.
func ValidateSet(unit float64) error {
	for _, kind := range AllKinds() {
		if err := Validate(kind, unit); err != nil {
			return err
		}
	}
	total := TotalArea(unit)
	expected := 8 * unit * unit
	if math.Abs(total-expected) > 0.01*unit*unit {
		return fmt.Errorf("tangram: set area %g differs from expected %g: %w", total, expected, ErrInvalidShape)
	}
	return nil
}
