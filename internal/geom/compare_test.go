package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestShapesSimilar(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	square := unitSquare()

	tests := []struct {
		name     string
		a, b     []Point
		expected bool
	}{
		{
			name:     "identical triangles",
			a:        tri,
			b:        tri,
			expected: true,
		},
		{
			name:     "rotated translated and scaled copy",
			a:        tri,
			b:        Transform(tri, Pt(13, -8), 0.7, 2.5),
			expected: true,
		},
		{
			name:     "same square from a different start vertex",
			a:        square,
			b:        []Point{Pt(1, 0), Pt(1, 1), Pt(0, 1), Pt(0, 0)},
			expected: true,
		},
		{
			name:     "vertex counts differ",
			a:        tri,
			b:        square,
			expected: false,
		},
		{
			name:     "square versus long rectangle",
			a:        square,
			b:        []Point{Pt(0, 0), Pt(4, 0), Pt(4, 1), Pt(0, 1)},
			expected: false,
		},
		{
			name:     "degenerate area rejected",
			a:        []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
			b:        tri,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ShapesSimilar(tc.a, tc.b, 1e-3)
			if result != tc.expected {
				t.Errorf("ShapesSimilar() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestShapesSimilarSymmetric(t *testing.T) {
	a := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	b := Transform(a, Pt(-2, 9), 1.9, 0.5)

	if !ShapesSimilar(a, b, 1e-3) || !ShapesSimilar(b, a, 1e-3) {
		t.Error("ShapesSimilar() should hold in both directions")
	}
}

func TestShapeOverlapSelf(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(5, 0), Pt(0, 5)}

	if got := ShapeOverlap(tri, tri, 100); got != 1.0 {
		t.Errorf("ShapeOverlap(self) = %v, expected 1.0", got)
	}
}

func TestShapeOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []Point
		density  int
		expected float64
		tol      float64
	}{
		{
			name:     "disjoint squares",
			a:        square2x2(),
			b:        TranslateAll(square2x2(), Pt(10, 0)),
			density:  100,
			expected: 0,
			tol:      0,
		},
		{
			name:     "half covered square",
			a:        square2x2(),
			b:        TranslateAll(square2x2(), Pt(1, 0)),
			density:  400,
			expected: 0.5,
			tol:      0.1,
		},
		{
			name:     "empty first shape",
			a:        nil,
			b:        square2x2(),
			density:  100,
			expected: 0,
			tol:      0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ShapeOverlap(tc.a, tc.b, tc.density)
			if math.Abs(result-tc.expected) > tc.tol {
				t.Errorf("ShapeOverlap() = %v, expected %v within %v", result, tc.expected, tc.tol)
			}
		})
	}
}

func TestFindOptimalAlignment(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)}

	// Rotating the copy a quarter of the way around means the best
	// counter-rotation sits exactly on the 8-step angle grid.
	rotated := RotateAll(tri, Centroid(tri), math.Pi/4)

	best := FindOptimalAlignment(tri, rotated, 8)
	if !scalar.EqualWithinAbs(best, 7*math.Pi/4, 1e-9) {
		t.Errorf("FindOptimalAlignment() = %v, expected %v", best, 7*math.Pi/4)
	}
}

func TestFindOptimalAlignmentAlreadyAligned(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	moved := TranslateAll(tri, Pt(100, 50))

	if best := FindOptimalAlignment(tri, moved, 16); best != 0 {
		t.Errorf("FindOptimalAlignment() = %v, expected 0", best)
	}
	if best := FindOptimalAlignment(tri, tri, 0); best != 0 {
		t.Errorf("FindOptimalAlignment() with no steps = %v, expected 0", best)
	}
}
