package geom

import "math"

// alignmentDensity is the sample density FindOptimalAlignment feeds into
// ShapeOverlap for each candidate angle.
const alignmentDensity = 200

// ShapesSimilar reports whether two polygons have the same shape regardless
// of position, rotation and scale. Both shapes are recentered on their
// centroids and scaled to unit area, then compared vertex-by-vertex for
// every cyclic start offset, rotating the candidate so the offset vertex's
// bearing lines up before the comparison. Winding order is not normalized,
// so a shape and its mirror image are not similar.
//
// Returns false when the vertex counts differ or either area is no larger
// than tol.
func ShapesSimilar(shape1, shape2 []Point, tol float64) bool {
	if len(shape1) != len(shape2) {
		logger().Debug("similarity rejected on vertex count",
			"shape1", len(shape1), "shape2", len(shape2))
		return false
	}
	if len(shape1) < 3 {
		return false
	}
	area1 := Area(shape1)
	area2 := Area(shape2)
	if area1 <= tol || area2 <= tol {
		logger().Debug("similarity rejected on degenerate area",
			"area1", area1, "area2", area2)
		return false
	}
	a := normalized(shape1, area1)
	b := normalized(shape2, area2)
	for offset := range a {
		if matchesAtOffset(a, b, offset, tol) {
			return true
		}
	}
	return false
}

// normalized recenters vertices on their centroid and scales them to unit
// area, cancelling position and scale before comparison.
func normalized(vertices []Point, area float64) []Point {
	c := Centroid(vertices)
	factor := 1 / math.Sqrt(area)
	out := make([]Point, len(vertices))
	for i, v := range vertices {
		out[i] = v.Sub(c).Scale(factor)
	}
	return out
}

// matchesAtOffset compares a to b read from a cyclic start offset, after
// rotating b so the bearing of b[offset] matches the bearing of a[0].
// A reference vertex within tol of the centroid has no usable bearing; the
// comparison then proceeds unrotated.
func matchesAtOffset(a, b []Point, offset int, tol float64) bool {
	var origin Point
	rotation := 0.0
	ref := a[0]
	cand := b[offset]
	if ref.DistanceTo(origin) > tol && cand.DistanceTo(origin) > tol {
		rotation = math.Atan2(ref.Y, ref.X) - math.Atan2(cand.Y, cand.X)
	}
	n := len(a)
	for i := 0; i < n; i++ {
		v := b[(offset+i)%n].RotatedAround(origin, rotation)
		if a[i].DistanceTo(v) > tol {
			return false
		}
	}
	return true
}

// ShapeOverlap estimates the fraction of shape1's area also covered by
// shape2, by sampling a uniform grid over the union of the two bounding
// boxes. The grid resolution is derived from sampleDensity and the box's
// aspect ratio, with a floor of 10x10 cells, and samples are taken at cell
// centers, so the estimate is deterministic. Returns 0 when no sample lands
// inside shape1.
func ShapeOverlap(shape1, shape2 []Point, sampleDensity int) float64 {
	box := BoundingBox(shape1).Union(BoundingBox(shape2))
	if box.IsEmpty() {
		return 0
	}
	if sampleDensity < 1 {
		sampleDensity = 1
	}
	aspect := box.W / box.H
	cols := int(math.Round(math.Sqrt(float64(sampleDensity) * aspect)))
	rows := int(math.Round(math.Sqrt(float64(sampleDensity) / aspect)))
	if cols < 10 {
		cols = 10
	}
	if rows < 10 {
		rows = 10
	}

	cellW := box.W / float64(cols)
	cellH := box.H / float64(rows)
	inFirst, inBoth := 0, 0
	for row := 0; row < rows; row++ {
		y := box.Y + (float64(row)+0.5)*cellH
		for col := 0; col < cols; col++ {
			p := Point{X: box.X + (float64(col)+0.5)*cellW, Y: y}
			if !PointInPolygon(p, shape1) {
				continue
			}
			inFirst++
			if PointInPolygon(p, shape2) {
				inBoth++
			}
		}
	}
	if inFirst == 0 {
		logger().Debug("overlap grid caught no samples in first shape",
			"cols", cols, "rows", rows)
		return 0
	}
	return float64(inBoth) / float64(inFirst)
}

// FindOptimalAlignment returns the rotation angle in [0, 2π) that maximizes
// the overlap of shape2 with shape1, trying angleSteps evenly spaced angles.
// For each candidate, shape2 is rotated about its own centroid and then
// translated so the centroids coincide. Ties keep the earliest angle, so the
// result is deterministic. angleSteps below 1 is treated as a single trial
// at angle 0.
func FindOptimalAlignment(shape1, shape2 []Point, angleSteps int) float64 {
	if angleSteps < 1 {
		angleSteps = 1
	}
	c1 := Centroid(shape1)
	c2 := Centroid(shape2)
	offset := c1.Sub(c2)

	bestAngle := 0.0
	bestOverlap := -1.0
	for i := 0; i < angleSteps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(angleSteps)
		candidate := TranslateAll(RotateAll(shape2, c2, angle), offset)
		overlap := ShapeOverlap(shape1, candidate, alignmentDensity)
		if overlap > bestOverlap {
			bestOverlap = overlap
			bestAngle = angle
		}
	}
	return bestAngle
}
