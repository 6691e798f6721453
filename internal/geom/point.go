// Package geom implements the 2D geometry kernel for tangram puzzles:
// points, rectangles, polygon math, collision queries and shape comparison.
// Everything is a plain value with pure methods, so results depend only on
// inputs and values can be shared read-only across goroutines without locks.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a 2D point or vector with floating-point coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt creates a new Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor about the origin.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Translated returns the point moved by (dx, dy).
func (p Point) Translated(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// RotatedAround returns the point rotated by angle radians around pivot.
// Positive angles rotate counter-clockwise.
func (p Point) RotatedAround(pivot Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// SquaredDistanceTo returns the squared Euclidean distance to another point.
// Cheaper than DistanceTo when only ordering matters.
func (p Point) SquaredDistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// MidpointWith returns the point halfway between p and other.
func (p Point) MidpointWith(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Matches reports whether both coordinates of p and other agree within tol.
func (p Point) Matches(other Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, other.X, tol) &&
		scalar.EqualWithinAbs(p.Y, other.Y, tol)
}

// GridKey is a comparable key derived from a Point, suitable for use in maps.
type GridKey struct {
	X, Y int64
}

// GridKey rounds the coordinates to the tolerance grid and returns the cell
// index, so that points rounding to the same cell share a key. Keying and
// Matches use the same tolerance but are not identical: points within tol of
// each other can straddle a cell boundary. Non-positive tolerances are
// clamped to a minimal grid.
func (p Point) GridKey(tol float64) GridKey {
	if tol <= 0 {
		tol = 1e-12
	}
	return GridKey{
		X: int64(math.Round(p.X / tol)),
		Y: int64(math.Round(p.Y / tol)),
	}
}
