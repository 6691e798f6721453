package geom

// PointInPolygon returns true if the point lies inside the polygon described
// by vertices, using a horizontal ray-casting parity test. Points exactly on
// an edge may land on either side. Fewer than three vertices describe no
// polygon and always yield false.
func PointInPolygon(p Point, vertices []Point) bool {
	if len(vertices) < 3 {
		return false
	}
	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		pi, pj := vertices[i], vertices[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// SegmentDistance returns the shortest distance from p to the segment
// [start, end]. The projection onto the segment is clamped to its endpoints.
// Segments no longer than minSeparation are treated as the single point
// start, which keeps the division by the squared length well-conditioned.
func SegmentDistance(p, start, end Point, minSeparation float64) float64 {
	seg := end.Sub(start)
	if start.DistanceTo(end) <= minSeparation {
		return p.DistanceTo(start)
	}
	t := p.Sub(start).Dot(seg) / seg.Dot(seg)
	t = ClampF(t, 0, 1)
	return p.DistanceTo(start.Add(seg.Scale(t)))
}

// CircleIntersectsPolygon returns true if a circle at center with the given
// radius touches the polygon: either the center lies inside it, or some edge
// passes within radius of the center. Touching exactly at radius counts.
// minSeparation is forwarded to the per-edge distance checks.
func CircleIntersectsPolygon(center Point, radius float64, vertices []Point, minSeparation float64) bool {
	if len(vertices) < 3 {
		return false
	}
	if PointInPolygon(center, vertices) {
		return true
	}
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if SegmentDistance(center, v, next, minSeparation) <= radius {
			return true
		}
	}
	return false
}
