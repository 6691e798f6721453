package tangram

import (
	"strings"

	"tangram-kit/internal/geom"
)

// Rasterize renders pieces onto a width x height character grid by sampling
// each cell center against the piece polygons. This is used for debugging
// and simple visualization, not as an interactive view.
//
// Format: empty cells are '.', covered cells show the color char of the
// topmost piece (later pieces draw over earlier ones). The grid spans the
// union of the piece bounding boxes; rows run top to bottom. Returns ""
// when there is nothing to draw.
func Rasterize(pieces []Piece, unit float64, width, height int) string {
	if len(pieces) == 0 || width < 1 || height < 1 {
		return ""
	}

	box := pieces[0].BoundingBox(unit)
	for _, p := range pieces[1:] {
		box = box.Union(p.BoundingBox(unit))
	}
	if box.IsEmpty() {
		return ""
	}

	// World vertices are derived once per piece, not per cell.
	polys := make([][]geom.Point, len(pieces))
	for i, p := range pieces {
		polys[i] = p.WorldVertices(unit)
	}

	cellW := box.W / float64(width)
	cellH := box.H / float64(height)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		// Screen rows grow downward while world y grows upward.
		y := box.Bottom() - (float64(row)+0.5)*cellH
		for col := 0; col < width; col++ {
			x := box.X + (float64(col)+0.5)*cellW
			ch := '.'
			for i := len(polys) - 1; i >= 0; i-- {
				if geom.PointInPolygon(geom.Pt(x, y), polys[i]) {
					ch = pieces[i].Color.Char()
					break
				}
			}
			sb.WriteRune(ch)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
