package tangram

import (
	"math"
	"testing"

	"tangram-kit/internal/geom"
)

func TestNewPieceIdentity(t *testing.T) {
	a := NewPiece(Square, geom.Pt(1, 2), ColorOrange)
	b := NewPiece(Square, geom.Pt(1, 2), ColorOrange)

	if a.ID == b.ID {
		t.Error("NewPiece() should mint distinct ids")
	}
	if a.Rotation != 0 {
		t.Errorf("NewPiece() rotation = %v, expected 0", a.Rotation)
	}
}

func TestWorldVertices(t *testing.T) {
	p := NewPiece(SmallTriangleA, geom.Pt(10, 5), ColorYellow).RotatedTo(math.Pi / 2)

	expected := []geom.Point{geom.Pt(10, 5), geom.Pt(10, 6), geom.Pt(9, 5)}
	verts := p.WorldVertices(1)
	if len(verts) != len(expected) {
		t.Fatalf("WorldVertices() returned %d vertices, expected %d", len(verts), len(expected))
	}
	for i := range expected {
		if !verts[i].Matches(expected[i], 1e-9) {
			t.Errorf("WorldVertices()[%d] = %v, expected %v", i, verts[i], expected[i])
		}
	}
}

func TestWorldVerticesAnchorIsPivot(t *testing.T) {
	// The triangle anchor sits at the local origin, so it maps to the piece
	// position no matter the rotation.
	for _, rotation := range []float64{0, 0.3, math.Pi / 2, 4.9} {
		p := NewPiece(MediumTriangle, geom.Pt(-3, 7), ColorGreen).RotatedTo(rotation)
		if v := p.WorldVertices(1)[0]; !v.Matches(geom.Pt(-3, 7), 1e-9) {
			t.Errorf("anchor at rotation %v = %v, expected (-3, 7)", rotation, v)
		}
	}
}

func TestPieceTransformsPreserveFields(t *testing.T) {
	p := NewPiece(Parallelogram, geom.Pt(0, 0), ColorBrown)

	tests := []struct {
		name  string
		moved Piece
	}{
		{"Translated", p.Translated(3, 4)},
		{"MovedTo", p.MovedTo(geom.Pt(9, 9))},
		{"RotatedBy", p.RotatedBy(1.5)},
		{"RotatedTo", p.RotatedTo(2.5)},
		{"Reset", p.RotatedBy(1).Reset()},
		{"ResetTo", p.ResetTo(geom.Pt(1, 1))},
		{"SnappedRotation", p.RotatedTo(0.8).SnappedRotation(math.Pi / 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.moved.ID != p.ID {
				t.Error("transform changed the piece id")
			}
			if tc.moved.Kind != p.Kind {
				t.Error("transform changed the piece kind")
			}
			if tc.moved.Color != p.Color {
				t.Error("transform changed the piece color")
			}
		})
	}

	// The original is untouched by any of the above.
	if p.Position != geom.Pt(0, 0) || p.Rotation != 0 {
		t.Errorf("source piece mutated: position %v rotation %v", p.Position, p.Rotation)
	}
}

func TestRotatedByComposes(t *testing.T) {
	p := NewPiece(LargeTriangleA, geom.Pt(0, 0), ColorRed)

	chained := p.RotatedBy(0.3).RotatedBy(0.4)
	direct := p.RotatedBy(0.7)
	if math.Abs(chained.Rotation-direct.Rotation) > 1e-12 {
		t.Errorf("RotatedBy chain = %v, direct = %v", chained.Rotation, direct.Rotation)
	}
}

func TestResetAndResetTo(t *testing.T) {
	p := NewPiece(Square, geom.Pt(5, 5), ColorOrange).RotatedTo(1.2)

	r := p.Reset()
	if r.Rotation != 0 || r.Position != geom.Pt(5, 5) {
		t.Errorf("Reset() = rotation %v at %v, expected 0 at (5, 5)", r.Rotation, r.Position)
	}

	rt := p.ResetTo(geom.Pt(-1, 2))
	if rt.Rotation != 0 || rt.Position != geom.Pt(-1, 2) {
		t.Errorf("ResetTo() = rotation %v at %v, expected 0 at (-1, 2)", rt.Rotation, rt.Position)
	}
}

func TestSnappedRotation(t *testing.T) {
	snap := math.Pi / 4
	p := NewPiece(Square, geom.Pt(0, 0), ColorOrange)

	tests := []struct {
		name     string
		rotation float64
		expected float64
	}{
		{"snaps up", 0.8, snap},
		{"snaps down", 0.4, snap},
		{"snaps to zero", 0.1, 0},
		{"negative rotation", -0.7, -snap},
		{"already on grid", snap * 3, snap * 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.RotatedTo(tc.rotation).SnappedRotation(snap)
			if math.Abs(got.Rotation-tc.expected) > 1e-12 {
				t.Errorf("SnappedRotation() = %v, expected %v", got.Rotation, tc.expected)
			}
		})
	}
}

func TestSnappedRotationIdempotent(t *testing.T) {
	snap := math.Pi / 4
	p := NewPiece(Square, geom.Pt(0, 0), ColorOrange).RotatedTo(1.9)

	once := p.SnappedRotation(snap)
	twice := once.SnappedRotation(snap)
	if once != twice {
		t.Errorf("SnappedRotation applied twice = %v, expected %v", twice.Rotation, once.Rotation)
	}
}

func TestSnappedRotationSkipsTinyCorrections(t *testing.T) {
	snap := math.Pi / 4
	rotation := snap + 0.0005
	p := NewPiece(Square, geom.Pt(0, 0), ColorOrange).RotatedTo(rotation)

	got := p.SnappedRotation(snap)
	if got.Rotation != rotation {
		t.Errorf("SnappedRotation() = %v, expected untouched %v", got.Rotation, rotation)
	}

	if got := p.SnappedRotation(0); got.Rotation != rotation {
		t.Errorf("SnappedRotation(0) = %v, expected untouched %v", got.Rotation, rotation)
	}
}

func TestPieceBoundingBox(t *testing.T) {
	p := NewPiece(SmallTriangleA, geom.Pt(1, 1), ColorYellow)
	box := p.BoundingBox(2)
	if box != geom.NewRect(1, 1, 2, 2) {
		t.Errorf("BoundingBox() = %+v, expected {1 1 2 2}", box)
	}

	// A kind without geometry collapses to a zero-size box at the position.
	ghost := Piece{Kind: ShapeKind(99), Position: geom.Pt(3, 4)}
	if got := ghost.BoundingBox(1); got != geom.RectAt(geom.Pt(3, 4)) {
		t.Errorf("BoundingBox() for unknown kind = %+v, expected zero rect at (3, 4)", got)
	}
}

func TestPiecesNearPoint(t *testing.T) {
	pieces := []Piece{
		NewPiece(SmallTriangleA, geom.Pt(0, 0), ColorYellow),
		NewPiece(SmallTriangleB, geom.Pt(10, 0), ColorPurple),
		NewPiece(Square, geom.Pt(3, 4), ColorOrange),
	}

	near := PiecesNearPoint(pieces, geom.Pt(0, 0), 5)
	if len(near) != 2 {
		t.Fatalf("PiecesNearPoint() returned %d pieces, expected 2", len(near))
	}
	// Distance exactly equal to the limit is included.
	if near[1].Kind != Square {
		t.Errorf("PiecesNearPoint()[1].Kind = %v, expected square on the boundary", near[1].Kind)
	}

	if got := PiecesNearPoint(pieces, geom.Pt(100, 100), 1); got != nil {
		t.Errorf("PiecesNearPoint() far away = %v, expected nil", got)
	}
}
