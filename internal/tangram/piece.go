package tangram

import (
	"math"

	"github.com/google/uuid"

	"tangram-kit/internal/geom"
)

// snapEpsilon is the fixed correction threshold below which SnappedRotation
// returns the receiver unchanged. It is deliberately independent of the
// configurable tolerances.
const snapEpsilon = 0.001

// Piece is a single tangram piece: an identity, a shape, a pose and a
// display color. ID and Kind never change for the lifetime of the value;
// everything else is replaced by returning a new Piece, never mutated in
// place.
type Piece struct {
	ID       uuid.UUID
	Kind     ShapeKind
	Position geom.Point
	Rotation float64 // radians, counter-clockwise
	Color    ColorTag
}

// NewPiece creates a piece with a fresh identity at the given position and
// zero rotation.
func NewPiece(kind ShapeKind, position geom.Point, color ColorTag) Piece {
	return Piece{
		ID:       uuid.New(),
		Kind:     kind,
		Position: position,
		Color:    color,
	}
}

// Translated returns a copy of the piece moved by (dx, dy).
func (p Piece) Translated(dx, dy float64) Piece {
	p.Position = p.Position.Translated(dx, dy)
	return p
}

// MovedTo returns a copy of the piece at the given position.
func (p Piece) MovedTo(position geom.Point) Piece {
	p.Position = position
	return p
}

// RotatedBy returns a copy of the piece rotated by delta radians.
func (p Piece) RotatedBy(delta float64) Piece {
	p.Rotation += delta
	return p
}

// RotatedTo returns a copy of the piece with the given absolute rotation.
func (p Piece) RotatedTo(angle float64) Piece {
	p.Rotation = angle
	return p
}

// Reset returns a copy of the piece with its rotation cleared, position
// unchanged.
func (p Piece) Reset() Piece {
	p.Rotation = 0
	return p
}

// ResetTo returns a copy of the piece with its rotation cleared, moved to
// the given position.
func (p Piece) ResetTo(position geom.Point) Piece {
	p.Rotation = 0
	p.Position = position
	return p
}

// SnappedRotation returns a copy of the piece with its rotation rounded to
// the nearest multiple of snap. If the correction is within snapEpsilon the
// receiver is returned as is, so repeated snapping settles immediately.
// Non-positive snap angles leave the piece untouched.
func (p Piece) SnappedRotation(snap float64) Piece {
	if snap <= 0 {
		return p
	}
	snapped := math.Round(p.Rotation/snap) * snap
	if math.Abs(p.Rotation-snapped) <= snapEpsilon {
		return p
	}
	p.Rotation = snapped
	return p
}

// WorldVertices derives the piece's polygon in world space: the local loop
// is rotated about the local origin (the shape anchor doubles as the
// rotation pivot), then translated to Position. The result is computed
// fresh on every call and never cached, so it cannot go stale.
func (p Piece) WorldVertices(unit float64) []geom.Point {
	local := LocalVertices(p.Kind, unit)
	out := make([]geom.Point, len(local))
	var origin geom.Point
	for i, v := range local {
		out[i] = v.RotatedAround(origin, p.Rotation).Translated(p.Position.X, p.Position.Y)
	}
	return out
}

// BoundingBox returns the axis-aligned box around the piece's world
// vertices. A kind with no vertices yields a zero-size box at the piece
// position.
func (p Piece) BoundingBox(unit float64) geom.Rect {
	verts := p.WorldVertices(unit)
	if len(verts) == 0 {
		return geom.RectAt(p.Position)
	}
	return geom.BoundingBox(verts)
}

// PiecesNearPoint returns the pieces whose position lies within maxDistance
// of point. Distance is measured to the piece anchor, not to the shape
// boundary, which is what drag-target picking wants. The result holds
// copies of the matching pieces.
func PiecesNearPoint(pieces []Piece, point geom.Point, maxDistance float64) []Piece {
	var near []Piece
	for _, piece := range pieces {
		if piece.Position.DistanceTo(point) <= maxDistance {
			near = append(near, piece)
		}
	}
	return near
}
