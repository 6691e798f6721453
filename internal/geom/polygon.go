package geom

import "math"

// areaEpsilon is the signed-area magnitude below which a polygon is treated
// as degenerate (collinear or empty) by centroid and validity checks.
const areaEpsilon = 1e-12

// SignedArea returns the shoelace area of the polygon described by vertices.
// Counter-clockwise winding yields a positive value. Fewer than three
// vertices describe no polygon and yield 0.
func SignedArea(vertices []Point) float64 {
	if len(vertices) < 3 {
		return 0
	}
	sum := 0.0
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return sum / 2
}

// Area returns the absolute area of the polygon described by vertices,
// regardless of winding. Fewer than three vertices yield 0.
func Area(vertices []Point) float64 {
	return math.Abs(SignedArea(vertices))
}

// Centroid returns the area-weighted centroid of the polygon.
//
// Degenerate inputs produce defaults instead of errors: an empty list yields
// the origin, a single vertex yields that vertex, two vertices yield their
// midpoint, and a near-zero-area polygon (collinear vertices) yields the
// arithmetic mean of the vertices.
func Centroid(vertices []Point) Point {
	switch len(vertices) {
	case 0:
		return Point{}
	case 1:
		return vertices[0]
	case 2:
		return vertices[0].MidpointWith(vertices[1])
	}

	signed := SignedArea(vertices)
	if math.Abs(signed) <= areaEpsilon {
		logger().Debug("degenerate polygon, centroid falls back to vertex mean",
			"vertices", len(vertices))
		return vertexMean(vertices)
	}

	var cx, cy float64
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		cross := v.X*next.Y - next.X*v.Y
		cx += (v.X + next.X) * cross
		cy += (v.Y + next.Y) * cross
	}
	factor := 1 / (6 * signed)
	return Point{X: cx * factor, Y: cy * factor}
}

func vertexMean(vertices []Point) Point {
	var sum Point
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vertices)))
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
// An empty list yields a zero rectangle at the origin.
func BoundingBox(vertices []Point) Rect {
	if len(vertices) == 0 {
		return Rect{}
	}
	minX, maxX := vertices[0].X, vertices[0].X
	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// TranslateAll returns a copy of vertices moved by offset.
func TranslateAll(vertices []Point, offset Point) []Point {
	out := make([]Point, len(vertices))
	for i, v := range vertices {
		out[i] = v.Add(offset)
	}
	return out
}

// RotateAll returns a copy of vertices rotated by angle radians around pivot.
func RotateAll(vertices []Point, pivot Point, angle float64) []Point {
	out := make([]Point, len(vertices))
	for i, v := range vertices {
		out[i] = v.RotatedAround(pivot, angle)
	}
	return out
}

// ScaleAll returns a copy of vertices scaled by factor about origin.
func ScaleAll(vertices []Point, origin Point, factor float64) []Point {
	out := make([]Point, len(vertices))
	for i, v := range vertices {
		out[i] = origin.Add(v.Sub(origin).Scale(factor))
	}
	return out
}

// Transform applies translation, then rotation, then scaling to vertices.
// Rotation is performed about the centroid of the translated shape and is
// skipped when rotation == 0; scaling is performed about the centroid
// recomputed after rotation and is skipped when scale == 1.
func Transform(vertices []Point, translation Point, rotation, scale float64) []Point {
	out := TranslateAll(vertices, translation)
	if rotation != 0 {
		out = RotateAll(out, Centroid(out), rotation)
	}
	if scale != 1 {
		out = ScaleAll(out, Centroid(out), scale)
	}
	return out
}
